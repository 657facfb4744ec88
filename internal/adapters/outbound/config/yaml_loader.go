package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agds-alt/inspekta/internal/domain"
	"github.com/agds-alt/inspekta/internal/domain/scoring"
	"gopkg.in/yaml.v3"
)

const fileName = ".inspekta.yaml"

// AppConfig holds deployment-level settings loaded from .inspekta.yaml.
// The core engine never reads it; the CLI and MCP adapters do.
type AppConfig struct {
	// TemplatePath is the default template when --template is not given.
	TemplatePath string `yaml:"template"`

	// RecordsDir is where the file record store keeps its JSON history.
	// Defaults to the working directory.
	RecordsDir string `yaml:"records_dir"`

	// DSN selects the Postgres record store when set; empty keeps the
	// file store.
	DSN string `yaml:"dsn"`

	// Thresholds overrides the status band boundaries. Nil keeps defaults.
	Thresholds *scoring.Thresholds `yaml:"thresholds"`
}

// EffectiveThresholds returns the configured bands, or the defaults.
func (c AppConfig) EffectiveThresholds() scoring.Thresholds {
	if c.Thresholds != nil {
		return *c.Thresholds
	}
	return scoring.DefaultThresholds()
}

// Loader reads app config, templates and response sets from YAML files.
// It implements domain.TemplateSource.
type Loader struct{}

func New() *Loader { return &Loader{} }

// LoadConfig reads .inspekta.yaml from dir. A missing file yields defaults.
func (l *Loader) LoadConfig(dir string) (AppConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, nil
		}
		return AppConfig{}, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if cfg.Thresholds != nil {
		if err := cfg.Thresholds.Validate(); err != nil {
			return AppConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
		}
	}

	return cfg, nil
}

// templateFile is the on-disk shape of a template definition.
type templateFile struct {
	Name     string                       `yaml:"name"`
	Mode     domain.ClassificationMode    `yaml:"classification_mode"`
	Criteria []domain.CriterionDefinition `yaml:"criteria"`
}

// LoadTemplate reads and validates a template definition. Construction is
// delegated to the domain so every invariant lives in one place.
func (l *Loader) LoadTemplate(path string) (domain.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Template{}, fmt.Errorf("reading template: %w", err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return domain.Template{}, fmt.Errorf("parsing template %s: %w", path, err)
	}

	if tf.Name == "" {
		tf.Name = trimExt(filepath.Base(path))
	}

	t, err := domain.NewTemplate(tf.Name, tf.Mode, tf.Criteria)
	if err != nil {
		return domain.Template{}, fmt.Errorf("template %s: %w", path, err)
	}
	return t, nil
}

// LoadResponseSet reads one submitted response set.
func (l *Loader) LoadResponseSet(path string) (domain.ResponseSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ResponseSet{}, fmt.Errorf("reading responses: %w", err)
	}

	var rs domain.ResponseSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return domain.ResponseSet{}, fmt.Errorf("parsing responses %s: %w", path, err)
	}
	return rs, nil
}

func trimExt(base string) string {
	return base[:len(base)-len(filepath.Ext(base))]
}
