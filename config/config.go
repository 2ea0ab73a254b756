// Package config loads jbind.yaml and merges it with command line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dhamidi/jbind/maven"
)

// FileName is the base name of the configuration file, without extension.
const FileName = "jbind"

type Config struct {
	// Module is the import path generated packages live under.
	Module string `mapstructure:"module"`
	// Runtime is the import path of the runtime package.
	Runtime string `mapstructure:"runtime"`
	// Output is the directory generated files are written to.
	Output string `mapstructure:"output"`
	// Facts lists fact files, class files, jars, directories and Maven
	// coordinates prefixed with "maven:".
	Facts []string `mapstructure:"facts"`

	Log   LogConfig   `mapstructure:"log"`
	Maven MavenConfig `mapstructure:"maven"`
}

type LogConfig struct {
	// Verbosity is the commonlog verbosity; 0 logs errors only.
	Verbosity int `mapstructure:"verbosity"`
	// File is the log file; empty means stderr.
	File string `mapstructure:"file"`
}

type MavenConfig struct {
	// Repository is the base URL maven: fact sources are downloaded from.
	Repository string `mapstructure:"repository"`
	// Cache is the directory downloaded jars are kept in; empty means the
	// user cache directory.
	Cache string `mapstructure:"cache"`
}

// Error reports an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Flags defines the flags that override configuration keys.
func Flags(flags *pflag.FlagSet) {
	flags.String("config", "", "configuration file (default ./jbind.yaml)")
	flags.String("module", "", "import path of the generated packages")
	flags.String("runtime", "", "import path of the runtime package")
	flags.StringP("output", "o", "", "output directory")
	flags.StringSlice("facts", nil, "fact files, class files, jars or directories")
	flags.CountP("verbose", "v", "increase log verbosity")
	flags.String("log-file", "", "write logs to this file")
}

// Load reads the configuration file named by the "config" flag, or
// jbind.yaml in dir when the flag is empty, and applies flags on top. A
// missing default file is not an error.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("output", ".")
	v.SetDefault("log.verbosity", 0)

	explicit := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.resolve(v.ConfigFileUsed(), flags)
	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := map[string]string{
		"module":   "module",
		"runtime":  "runtime",
		"output":   "output",
		"facts":    "facts",
		"verbose":  "log.verbosity",
		"log-file": "log.file",
	}
	for flag, key := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// resolve makes paths read from the configuration file relative to the
// directory holding it. Paths given as flags stay relative to the working
// directory.
func (c *Config) resolve(file string, flags *pflag.FlagSet) {
	if file == "" {
		return
	}
	changed := func(name string) bool {
		return flags != nil && flags.Changed(name)
	}
	base := filepath.Dir(file)
	if !changed("facts") {
		for i, p := range c.Facts {
			c.Facts[i] = rebase(base, p)
		}
	}
	if !changed("output") {
		c.Output = rebase(base, c.Output)
	}
	c.Maven.Cache = rebase(base, c.Maven.Cache)
}

func rebase(base, path string) string {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, maven.Scheme) {
		return path
	}
	return filepath.Join(base, path)
}

// Validate checks the settings generation needs.
func (c *Config) Validate() error {
	if c.Module == "" {
		return &Error{Field: "module", Message: "import path is required"}
	}
	if len(c.Facts) == 0 {
		return &Error{Field: "facts", Message: "at least one fact source is required"}
	}
	return nil
}
