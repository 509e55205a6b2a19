package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "es")

	v.SetDefault("api.base_url", "http://127.0.0.1:8000")
	v.SetDefault("api.timeout", "0s")

	v.SetDefault("console.addr", ":8090")
	v.SetDefault("console.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})
	v.SetDefault("console.trust_proxy", false)

	v.SetDefault("storage.driver", DriverBolt)
	v.SetDefault("storage.path", ".farmareach")
	v.SetDefault("storage.redis_addr", "")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.postgres_dsn", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.exchange", "farmareach.activity")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")

	v.SetDefault("campaign.sender_name", "Equipo Comercial")
	v.SetDefault("campaign.sender_email", "")
	v.SetDefault("campaign.value_pitch", "colaboracion comercial para farmacia")
	v.SetDefault("campaign.send_delay_seconds", 30)
	v.SetDefault("campaign.max_items", 20)
}

// Load reads .env (if any), an optional farmareach.yaml and the environment.
// API_BASE_URL overrides api.base_url and so on.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("farmareach")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.Locale = strings.ToLower(strings.TrimSpace(cfg.Locale))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
