package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Upload     UploadConfig
	Redis      RedisConfig
	OpenRouter OpenRouterConfig
	OCR        OCRConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Env   string
	Level string
}

type UploadConfig struct {
	// MaxFileMB caps each uploaded document; exceeding it is a 413.
	MaxFileMB int
	// MinTextChars is the minimum cleaned-text length for quiz
	// generation.
	MinTextChars int
	// OCRTriggerChars: PDFs whose extracted text is shorter than this
	// fall back to OCR on the LLM endpoint.
	OCRTriggerChars int
}

type RedisConfig struct {
	Address       string
	Password      string
	DB            int
	ExtractionTTL time.Duration
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type OCRConfig struct {
	Enabled         bool
	CredentialsFile string
	Language        string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("server.body_limit_mb", 12)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("upload.max_file_mb", 10)
	viper.SetDefault("upload.min_text_chars", 30)
	viper.SetDefault("upload.ocr_trigger_chars", 50)
	viper.SetDefault("redis.extraction_ttl", 3600)
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "gpt-4o")
	viper.SetDefault("ocr.language", "spa+eng")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine: defaults plus env cover everything.
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
			BodyLimitMB:  viper.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Upload: UploadConfig{
			MaxFileMB:       viper.GetInt("upload.max_file_mb"),
			MinTextChars:    viper.GetInt("upload.min_text_chars"),
			OCRTriggerChars: viper.GetInt("upload.ocr_trigger_chars"),
		},
		Redis: RedisConfig{
			Address:       viper.GetString("redis.address"),
			Password:      viper.GetString("redis.password"),
			DB:            viper.GetInt("redis.db"),
			ExtractionTTL: viper.GetDuration("redis.extraction_ttl") * time.Second,
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  viper.GetString("openrouter.api_key"),
			BaseURL: viper.GetString("openrouter.base_url"),
			Model:   viper.GetString("openrouter.model"),
		},
		OCR: OCRConfig{
			Enabled:         viper.GetBool("ocr.enabled"),
			CredentialsFile: viper.GetString("ocr.credentials_file"),
			Language:        viper.GetString("ocr.language"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		config.OpenRouter.APIKey = apiKey
	}
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" {
		config.OCR.CredentialsFile = creds
	}

	return config, nil
}

// MaxFileBytes returns the upload cap in bytes.
func (c *Config) MaxFileBytes() int {
	return c.Upload.MaxFileMB * 1024 * 1024
}
