// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		DefaultTimezone      string `mapstructure:"default_timezone"`
		RecentAdherenceLimit int    `mapstructure:"recent_adherence_limit"`
	} `mapstructure:"app"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Cron struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"cron"`
	RateLimit struct {
		Requests      int `mapstructure:"requests"`
		WindowSeconds int `mapstructure:"window_seconds"`
	} `mapstructure:"rate_limit"`
	Notifier struct {
		Type string `mapstructure:"type"` // "log" | "smtp" | "ses"
	} `mapstructure:"notifier"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" | "default"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("cron.secret", "CRON_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.App.DefaultTimezone == "" {
		// タイムゾーン未指定のリクエストはシステム全体でUTC扱い
		Cfg.App.DefaultTimezone = "UTC"
	}
	if Cfg.App.RecentAdherenceLimit <= 0 {
		log.Println("Recent adherence limit not set or invalid, using default '30'")
		Cfg.App.RecentAdherenceLimit = 30
	}
	if Cfg.RateLimit.Requests <= 0 {
		Cfg.RateLimit.Requests = 60
	}
	if Cfg.RateLimit.WindowSeconds <= 0 {
		Cfg.RateLimit.WindowSeconds = 60
	}
	if Cfg.Notifier.Type == "" {
		Cfg.Notifier.Type = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.Cron.Secret == "" {
		log.Println("Warning: Cron secret is not set; batch endpoints will reject all requests.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Default Timezone: %s", Cfg.App.DefaultTimezone)
	log.Printf("Notifier Type: %s", Cfg.Notifier.Type)

	return nil
}
