package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration in layers: defaults, optional config.yaml,
// optional .env file, then environment variables (PROBE_SERVICE_BASE_URL
// overrides service.base_url and so on).
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("probe")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("service.base_url", "http://localhost:8000")
	v.SetDefault("service.timeout", 30000)

	v.SetDefault("probe.user_id", "probe_user")
	v.SetDefault("probe.note_text", "Remember that the garage code is 4417")
	v.SetDefault("probe.reminder_text_with_time", "Remind me to call the dentist tomorrow at 14:30")
	v.SetDefault("probe.reminder_text_without_time", "Remind me to call the dentist")
	v.SetDefault("probe.check_health", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
