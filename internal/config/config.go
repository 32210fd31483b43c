// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	App struct {
		Name        string `mapstructure:"name"`
		FrontendURL string `mapstructure:"frontend_url"`
		// 1セッションで出題する単語数の上限
		ReviewLimit int `mapstructure:"review_limit"`
		// 期限到来判定に加える猶予（分）。0なら厳密に now 以前のみ。
		ReviewBufferMinutes int `mapstructure:"review_buffer_minutes"`
		// 選択式問題の誤答選択肢数
		DistractorCount int `mapstructure:"distractor_count"`
	} `mapstructure:"app"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	Mailer struct {
		Type string `mapstructure:"type"` // log | smtp | ses
	} `mapstructure:"mailer"`
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
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

var Cfg Config

// ReviewBuffer は期限判定バッファを time.Duration で返します
func (c *Config) ReviewBuffer() time.Duration {
	return time.Duration(c.App.ReviewBufferMinutes) * time.Minute
}

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

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
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Log.Format == "" {
		Cfg.Log.Format = DefaultLogFormat
	}
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.App.ReviewLimit <= 0 {
		log.Printf("App review limit not set or invalid, using default '%d'\n", DefaultReviewLimit)
		Cfg.App.ReviewLimit = DefaultReviewLimit
	}
	// バッファは0（厳密判定）が正しいデフォルトなので、未設定と0を区別しない
	if Cfg.App.ReviewBufferMinutes < 0 {
		log.Println("Negative review buffer is not allowed, resetting to 0")
		Cfg.App.ReviewBufferMinutes = 0
	}
	if Cfg.App.DistractorCount <= 0 {
		Cfg.App.DistractorCount = DefaultDistractorCount
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if Cfg.Mailer.Type == "" {
		Cfg.Mailer.Type = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)
	log.Printf("Review Buffer Minutes: %d", Cfg.App.ReviewBufferMinutes)

	return nil
}
