package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FeedProvider describes one news feed source.
type FeedProvider struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Kind selects the fetch path: "json" for rss2json-style endpoints,
	// "rss" for direct RSS/Atom feeds.
	Kind string `yaml:"kind"`
	// Exchange marks exchange announcement feeds as opposed to media
	// aggregators. Relative-value idea gating depends on this.
	Exchange bool `yaml:"exchange"`
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Feeds  []FeedProvider `yaml:"feeds"`
	Prices struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"prices"`
	Macro struct {
		// Exactly two reference assets: the base-layer coin first, then
		// the smart-contract platform coin.
		ReferenceAssets []string `yaml:"reference_assets"`
	} `yaml:"macro"`
	// Assets overrides the static category -> asset id table.
	Assets   map[string]string `yaml:"assets"`
	Pipeline struct {
		NewsSchedule  string        `yaml:"news_schedule"`
		PriceSchedule string        `yaml:"price_schedule"`
		FetchTimeout  time.Duration `yaml:"fetch_timeout"`
		MaxItems      int           `yaml:"max_items"`
	} `yaml:"pipeline"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Telegram struct {
		Enabled bool   `yaml:"enabled"`
		Token   string `yaml:"token"`
		ChatID  int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PRICES_BASE_URL"); v != "" {
		c.Prices.BaseURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Redis.Host = host
		if ok {
			fmt.Sscanf(port, "%d", &c.Redis.Port)
		}
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.Telegram.Token = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Prices.BaseURL == "" {
		c.Prices.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.Prices.Timeout == 0 {
		c.Prices.Timeout = 10 * time.Second
	}
	if c.Prices.CacheTTL == 0 {
		c.Prices.CacheTTL = 45 * time.Second
	}
	if len(c.Macro.ReferenceAssets) == 0 {
		c.Macro.ReferenceAssets = []string{"bitcoin", "ethereum"}
	}
	if c.Pipeline.NewsSchedule == "" {
		c.Pipeline.NewsSchedule = "@every 2m"
	}
	if c.Pipeline.PriceSchedule == "" {
		c.Pipeline.PriceSchedule = "@every 1m"
	}
	if c.Pipeline.FetchTimeout == 0 {
		c.Pipeline.FetchTimeout = 15 * time.Second
	}
	if c.Pipeline.MaxItems == 0 {
		c.Pipeline.MaxItems = 60
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Feeds) == 0 {
		return fmt.Errorf("feeds cannot be empty")
	}
	for i, f := range c.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feeds[%d].name is required", i)
		}
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
		if f.Kind != "json" && f.Kind != "rss" {
			return fmt.Errorf("feeds[%d].kind must be 'json' or 'rss', got '%s'", i, f.Kind)
		}
	}
	if len(c.Macro.ReferenceAssets) != 2 {
		return fmt.Errorf("macro.reference_assets must list exactly two assets")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers required when kafka is enabled")
	}
	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token required when telegram is enabled")
	}
	return nil
}
