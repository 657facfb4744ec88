package domain

import "context"

// TemplateSource loads an immutable Template from wherever the surrounding
// system keeps it.
type TemplateSource interface {
	LoadTemplate(path string) (Template, error)
}

// RecordStore persists scored records and supplies them back for
// aggregation. The engine itself never touches a store; stores live behind
// this port in the adapters.
type RecordStore interface {
	Save(ctx context.Context, record ScoredRecord) error
	List(ctx context.Context) ([]ScoredRecord, error)
}

// TemplateProvenance resolves version information for a template source,
// used to stamp saved records with the template revision they were scored
// against.
type TemplateProvenance interface {
	CommitHash(path string) (string, error)
}
