package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings for the web server
type Config struct {
	Port int `env:"SET_PORT,default=8000"`
	// AllowedOrigins is a comma separated list, or * for any origin
	AllowedOrigins string `env:"SET_ALLOWED_ORIGINS,default=*"`
	// TableSlots is the most cards the web front end can show
	TableSlots  int    `env:"SET_TABLE_SLOTS,default=24"`
	InitialDeal int    `env:"SET_INITIAL_DEAL,default=12"`
	StaticDir   string `env:"SET_STATIC_DIR"`
}

// Load reads the config from the environment
func Load() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.TableSlots < 1 {
		return fmt.Errorf("%w: table slots %d", ErrInvalidConfig, c.TableSlots)
	}
	if c.InitialDeal < 1 || c.InitialDeal > c.TableSlots {
		return fmt.Errorf("%w: initial deal %d must be between 1 and %d", ErrInvalidConfig, c.InitialDeal, c.TableSlots)
	}
	return nil
}

// Addr returns the address to listen on
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Origins splits AllowedOrigins
func (c Config) Origins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
