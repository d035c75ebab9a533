package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DBUrl          string
	MPAccessToken  string
	ServerPort     string
	AllowedOrigins []string
}

// Orígenes fijos: frontend desplegado + desarrollo local.
var defaultOrigins = []string{
	"https://inmobiliaria-uufh.vercel.app",
	"http://localhost:5173",
}

// Load lee la configuración del entorno. Las tres variables obligatorias
// no tienen fallback: sin ellas el proceso no debe arrancar.
func Load() (*Config, error) {
	cfg := &Config{
		DBUrl:          os.Getenv("DATABASE_URL"),
		MPAccessToken:  os.Getenv("MP_ACCESS_TOKEN"),
		ServerPort:     os.Getenv("PORT"),
		AllowedOrigins: defaultOrigins,
	}

	var missing []string
	if cfg.DBUrl == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.MPAccessToken == "" {
		missing = append(missing, "MP_ACCESS_TOKEN")
	}
	if cfg.ServerPort == "" {
		missing = append(missing, "PORT")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) OriginAllowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}
