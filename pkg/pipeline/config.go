package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

// ConfigFilename is the config file looked for in the scan root when no
// explicit --config path is given.
const ConfigFilename = "sourcebook.toml"

// LoadConfig reads pipeline options from a TOML file.
// Only fields present in the file are set; zero values in the returned
// Options mean "not configured".
func LoadConfig(path string) (Options, error) {
	var opts Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}

	return opts, nil
}

// Merge fills unset fields of o from defaults. Explicitly set fields win, so
// command-line flags override config-file values.
func (o *Options) Merge(defaults Options) {
	if o.Output == "" {
		o.Output = defaults.Output
	}
	if len(o.Extensions) == 0 {
		o.Extensions = defaults.Extensions
	}
	if len(o.Excludes) == 0 {
		o.Excludes = defaults.Excludes
	}
	if o.Font == "" {
		o.Font = defaults.Font
	}
	if o.FontSize == 0 {
		o.FontSize = defaults.FontSize
	}
	if o.Theme == "" {
		o.Theme = defaults.Theme
	}
}
