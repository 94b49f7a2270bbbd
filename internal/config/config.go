package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	Port           string `mapstructure:"PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	FeedPageSize     int   `mapstructure:"FEED_PAGE_SIZE"`
	OwnPageSize      int   `mapstructure:"OWN_PAGE_SIZE"`
	MaxSessionImages int   `mapstructure:"MAX_SESSION_IMAGES"`
	MaxImageBytes    int64 `mapstructure:"MAX_IMAGE_BYTES"`

	S3Bucket       string `mapstructure:"S3_BUCKET"`
	S3Region       string `mapstructure:"S3_REGION"`
	PublicAssetURL string `mapstructure:"PUBLIC_ASSET_URL"`
}

var AppConfig *Config

// Origins splits ALLOWED_ORIGINS into the list handed to the CORS middleware.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FEED_PAGE_SIZE", 10)
	v.SetDefault("OWN_PAGE_SIZE", 5)
	v.SetDefault("MAX_SESSION_IMAGES", 10)
	v.SetDefault("MAX_IMAGE_BYTES", 10*1024*1024)
	v.SetDefault("PUBLIC_ASSET_URL", "http://localhost:8080/assets")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() *Config {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "S3_BUCKET", "S3_REGION"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		logrus.Warn("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logrus.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = &cfg
	return AppConfig
}
