// Package config loads service settings from defaults, an optional YAML
// file, INVIS_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vimldn/invis"
	"github.com/vimldn/invis/leads"
	"github.com/vimldn/invis/storage"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "INVIS"

// epochLayout is the date format of schedule.epoch
const epochLayout = "2006-01-02"

// Config is the full service configuration
type Config struct {
	Addr        string         `mapstructure:"addr"`
	LogLevel    string         `mapstructure:"log_level"`
	CORSEnabled bool           `mapstructure:"cors_enabled"`
	HTTPTimeout time.Duration  `mapstructure:"http_timeout"`
	Articles    ArticlesConfig `mapstructure:"articles"`
	Schedule    ScheduleConfig `mapstructure:"schedule"`
	Leads       LeadsConfig    `mapstructure:"leads"`
	Tracing     TracingConfig  `mapstructure:"tracing"`
}

// ArticlesConfig selects where the articles CSV comes from
type ArticlesConfig struct {
	Source string   `mapstructure:"source"`
	Path   string   `mapstructure:"path"`
	URL    string   `mapstructure:"url"`
	S3     S3Config `mapstructure:"s3"`
}

// S3Config holds bucket settings for the s3 source
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	Key             string `mapstructure:"key"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
}

// ScheduleConfig sets the publish-date cadence
type ScheduleConfig struct {
	Epoch    string `mapstructure:"epoch"`
	PerDay   int    `mapstructure:"per_day"`
	Timezone string `mapstructure:"timezone"`
}

// LeadsConfig points at the lead intake script
type LeadsConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Source   string        `mapstructure:"source"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// TracingConfig enables OTLP trace export when Endpoint is set
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"addr":            "addr",
	"log-level":       "log_level",
	"cors":            "cors_enabled",
	"articles-source": "articles.source",
	"articles-path":   "articles.path",
	"articles-url":    "articles.url",
	"leads-endpoint":  "leads.endpoint",
}

func setDefaults(v *viper.Viper) {
	store := storage.DefaultConfig()
	lead := leads.DefaultConfig()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_enabled", true)
	v.SetDefault("http_timeout", store.HTTPTimeout)

	v.SetDefault("articles.source", store.Kind)
	v.SetDefault("articles.path", store.Path)
	v.SetDefault("articles.url", "")
	v.SetDefault("articles.s3.endpoint", "")
	v.SetDefault("articles.s3.region", "")
	v.SetDefault("articles.s3.bucket", "")
	v.SetDefault("articles.s3.key", "articles.csv")
	v.SetDefault("articles.s3.access_key_id", "")
	v.SetDefault("articles.s3.secret_access_key", "")
	v.SetDefault("articles.s3.use_path_style", false)

	v.SetDefault("schedule.epoch", invis.DefaultEpoch.Format(epochLayout))
	v.SetDefault("schedule.per_day", invis.DefaultPerDay)
	v.SetDefault("schedule.timezone", "UTC")

	v.SetDefault("leads.endpoint", lead.Endpoint)
	v.SetDefault("leads.source", lead.Source)
	v.SetDefault("leads.timeout", lead.Timeout)

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "invis")
}

// Load builds the configuration. file may be empty, in which case
// ./invis.yaml is used if present. flags may be nil; only flags the user
// actually set override other sources.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("invis")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || file != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at start-up
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Articles.Source {
	case storage.KindFile, storage.KindHTTP, storage.KindS3:
	default:
		return fmt.Errorf("articles.source must be file, http or s3, got %q", c.Articles.Source)
	}
	if c.Schedule.PerDay <= 0 {
		return fmt.Errorf("schedule.per_day must be positive, got %d", c.Schedule.PerDay)
	}
	if _, err := c.PublishSchedule(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// PublishSchedule returns the schedule with its epoch at midnight in the
// configured timezone
func (c *Config) PublishSchedule() (invis.Schedule, error) {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return invis.Schedule{}, fmt.Errorf("invalid schedule.timezone: %w", err)
	}
	epoch, err := time.ParseInLocation(epochLayout, c.Schedule.Epoch, loc)
	if err != nil {
		return invis.Schedule{}, fmt.Errorf("invalid schedule.epoch: %w", err)
	}
	return invis.Schedule{Epoch: epoch, PerDay: c.Schedule.PerDay}, nil
}

// StorageConfig returns the article source settings
func (c *Config) StorageConfig() storage.Config {
	return storage.Config{
		Kind:        c.Articles.Source,
		Path:        c.Articles.Path,
		URL:         c.Articles.URL,
		HTTPTimeout: c.HTTPTimeout,
		S3: storage.S3Config{
			Endpoint:        c.Articles.S3.Endpoint,
			Region:          c.Articles.S3.Region,
			Bucket:          c.Articles.S3.Bucket,
			Key:             c.Articles.S3.Key,
			AccessKeyID:     c.Articles.S3.AccessKeyID,
			SecretAccessKey: c.Articles.S3.SecretAccessKey,
			UsePathStyle:    c.Articles.S3.UsePathStyle,
		},
	}
}

// LeadClientConfig returns the lead client settings
func (c *Config) LeadClientConfig() leads.Config {
	return leads.Config{
		Endpoint: c.Leads.Endpoint,
		Source:   c.Leads.Source,
		Timeout:  c.Leads.Timeout,
	}
}
