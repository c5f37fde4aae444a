package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tabwrap/tabwrap/pkg/errors"
)

// config holds the user defaults read from the TOML config file.
// Every field is optional; flags given on the command line win.
type config struct {
	// Layout is the default renderer name.
	Layout string `toml:"layout"`

	// Delimiter is the default field delimiter.
	Delimiter string `toml:"delimiter"`

	// TableWidth is the default total table width. Negative or absent
	// means the terminal width.
	TableWidth *int `toml:"table_width"`

	// BreakWords hard-breaks overlong words by default.
	BreakWords *bool `toml:"break_words"`
}

// loadConfig reads the config file if it exists. A missing file yields
// an empty config; a malformed one is an error.
func loadConfig() (config, error) {
	var cfg config
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}
