package cli

import (
	"context"

	"github.com/agds-alt/inspekta/internal/adapters/outbound/config"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/history"
	"github.com/agds-alt/inspekta/internal/adapters/outbound/store"
	"github.com/agds-alt/inspekta/internal/domain"
)

// openRecordStore picks the record store for this deployment: Postgres when
// a DSN is configured, the JSON file store otherwise.
func openRecordStore(ctx context.Context, cfg config.AppConfig) (domain.RecordStore, func(), error) {
	if cfg.DSN != "" {
		pg, err := store.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() { _ = pg.Close() }, nil
	}

	dir := cfg.RecordsDir
	if dir == "" {
		dir = "."
	}
	return history.New(dir), func() {}, nil
}
