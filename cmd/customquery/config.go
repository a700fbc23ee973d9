package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theplant/customquery"
)

const envPrefix = "CUSTOMQUERY"

// Config is read from flags, CUSTOMQUERY_* variables and customquery.yaml,
// in that order of precedence.
type Config struct {
	Driver        string   `mapstructure:"driver"`
	DSN           string   `mapstructure:"dsn"`
	Catalog       string   `mapstructure:"catalog"`
	Verbose       bool     `mapstructure:"verbose"`
	Filter        string   `mapstructure:"filter"`
	Fields        []int64  `mapstructure:"fields"`
	ContactSearch bool     `mapstructure:"contact-search"`
	Locations     []string `mapstructure:"location"`
	HostTable     string   `mapstructure:"host-table"`
	HostAlias     string   `mapstructure:"host-alias"`
	Limits        string   `mapstructure:"limits"`
	SQL           bool     `mapstructure:"sql"`
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("customquery")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// locations parses "<field id>=<location type>:<location type id>" entries.
func (c *Config) locations() (map[int64]customquery.Location, error) {
	out := make(map[int64]customquery.Location, len(c.Locations))
	for _, entry := range c.Locations {
		id, rest, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.Errorf("location %q: expect <field id>=<type>:<type id>", entry)
		}
		typ, typeID, ok := strings.Cut(rest, ":")
		if !ok || typ == "" {
			return nil, errors.Errorf("location %q: expect <field id>=<type>:<type id>", entry)
		}
		fieldID, err := cast.ToInt64E(strings.TrimSpace(id))
		if err != nil {
			return nil, errors.Wrapf(err, "location %q", entry)
		}
		locationTypeID, err := cast.ToInt64E(strings.TrimSpace(typeID))
		if err != nil {
			return nil, errors.Wrapf(err, "location %q", entry)
		}
		out[fieldID] = customquery.Location{Type: typ, TypeID: locationTypeID}
	}
	return out, nil
}

func (c *Config) complexityLimits() (*customquery.ComplexityLimits, error) {
	switch strings.ToLower(c.Limits) {
	case "", "none":
		return nil, nil
	case "default":
		return customquery.DefaultLimits, nil
	case "strict":
		return customquery.StrictLimits, nil
	case "relaxed":
		return customquery.RelaxedLimits, nil
	}
	return nil, errors.Errorf("unknown limits %q, want default, strict, relaxed or none", c.Limits)
}
