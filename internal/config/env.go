package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides are read after config.toml. Unset variables leave the file
// values alone.
type envOverrides struct {
	Columns   int   `env:"GRIDSEL_COLUMNS"`
	Rows      int   `env:"GRIDSEL_ROWS"`
	CellWidth int   `env:"GRIDSEL_CELL_WIDTH"`
	Debug     *bool `env:"GRIDSEL_DEBUG"`
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Columns > 0 {
		cfg.Grid.Columns = o.Columns
	}
	if o.Rows > 0 {
		cfg.Grid.Rows = o.Rows
	}
	if o.CellWidth > 0 {
		cfg.Grid.CellWidth = o.CellWidth
	}
	if o.Debug != nil {
		cfg.Debug = *o.Debug
	}
	return nil
}
