package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type GridOptions struct {
	Columns     int  `toml:"columns"`
	Rows        int  `toml:"rows"`
	CellWidth   int  `toml:"cell-width"`
	ShowHeaders bool `toml:"show-headers"`
}

type Theme struct {
	Theme                string `toml:"theme"`
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	HeaderForeground     string `toml:"header-foreground"`
	HeaderBackground     string `toml:"header-background"`
	SelectionForeground  string `toml:"selection-foreground"`
	SelectionBackground  string `toml:"selection-background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	ModifierIndicator    string `toml:"modifier-indicator"`
}

type Config struct {
	Grid   GridOptions       `toml:"grid"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
	Debug  bool              `toml:"debug"`
}

func Default() Config {
	return Config{
		Grid: GridOptions{
			Columns:     8,
			Rows:        12,
			CellWidth:   7,
			ShowHeaders: true,
		},
		Theme: Theme{
			Theme:                "",
			Foreground:           "#B3B1AD",
			Background:           "#0A0E14",
			HeaderForeground:     "#3E4B59",
			HeaderBackground:     "#0F1419",
			SelectionForeground:  "#0A0E14",
			SelectionBackground:  "#E6B450",
			StatuslineForeground: "#B3B1AD",
			StatuslineBackground: "#0F1419",
			ModifierIndicator:    "#59C2FF",
		},
		Keymap: map[string]string{
			"q":      "quit",
			"ctrl+c": "quit",
			"esc":    "clear_selection",
			"c":      "clear_selection",
			"a":      "toggle_modifier",
			"space":  "toggle_modifier",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, applyEnv(&cfg)
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Grid.Columns > 0 {
		cfg.Grid.Columns = userCfg.Grid.Columns
	}
	if userCfg.Grid.Rows > 0 {
		cfg.Grid.Rows = userCfg.Grid.Rows
	}
	if userCfg.Grid.CellWidth > 0 {
		cfg.Grid.CellWidth = userCfg.Grid.CellWidth
	}
	if hasKey(data, "grid", "show-headers") {
		cfg.Grid.ShowHeaders = userCfg.Grid.ShowHeaders
	}
	if userCfg.Debug {
		cfg.Debug = true
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	return cfg, applyEnv(&cfg)
}

// hasKey reports whether the document sets section.key explicitly, so a
// false boolean can override a true default.
func hasKey(data []byte, section, key string) bool {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return false
	}
	return md.IsDefined(section, key)
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.HeaderForeground != "" {
		dst.HeaderForeground = src.HeaderForeground
	}
	if src.HeaderBackground != "" {
		dst.HeaderBackground = src.HeaderBackground
	}
	if src.SelectionForeground != "" {
		dst.SelectionForeground = src.SelectionForeground
	}
	if src.SelectionBackground != "" {
		dst.SelectionBackground = src.SelectionBackground
	}
	if src.StatuslineForeground != "" {
		dst.StatuslineForeground = src.StatuslineForeground
	}
	if src.StatuslineBackground != "" {
		dst.StatuslineBackground = src.StatuslineBackground
	}
	if src.ModifierIndicator != "" {
		dst.ModifierIndicator = src.ModifierIndicator
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. The file may hold the keys at top level
// or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	md, err := toml.Decode(string(data), &wrap)
	if err != nil {
		return Theme{}, err
	}
	if md.IsDefined("theme") {
		return wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("GRIDSEL_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "gridsel"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridsel"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
