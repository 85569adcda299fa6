// Package config loads and holds the application configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Conf is the global configuration loaded from the YAML file.
var Conf Config

// Config mirrors the structure of configs/config.yaml.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Log       LogConfig       `mapstructure:"log"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Vision    VisionConfig    `mapstructure:"vision"`
	WebSearch WebSearchConfig `mapstructure:"web_search"`
	Chat      ChatConfig      `mapstructure:"chat"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig groups all datastore connections.
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig holds the MySQL connection settings.
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds token settings for the admin analytics surface.
type JWTConfig struct {
	Secret                 string `mapstructure:"secret"`
	AccessTokenExpireHours int    `mapstructure:"access_token_expire_hours"`
}

// AdminConfig holds the single admin credential (bcrypt hash, never plaintext).
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// KafkaConfig holds the analytics event stream settings.
// Leaving Brokers empty disables event publishing.
type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

// MinIOConfig holds the media archive settings.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
}

// LLMConfig holds the text-generation collaborator settings.
type LLMConfig struct {
	APIKey         string              `mapstructure:"api_key"`
	BaseURL        string              `mapstructure:"base_url"`
	Model          string              `mapstructure:"model"`
	TimeoutSeconds int                 `mapstructure:"timeout_seconds"`
	Generation     LLMGenerationConfig `mapstructure:"generation"`
}

// LLMGenerationConfig holds the fixed sampling parameters for generation.
type LLMGenerationConfig struct {
	Temperature       float64 `mapstructure:"temperature"`
	TopP              float64 `mapstructure:"top_p"`
	MaxTokens         int     `mapstructure:"max_tokens"`
	RepetitionPenalty float64 `mapstructure:"repetition_penalty"`
}

// VisionConfig holds the indicator-detection collaborator settings.
type VisionConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	MinConfidence  float64 `mapstructure:"min_confidence"`
}

// WebSearchConfig holds the external search settings.
type WebSearchConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	CacheTTLHours  int `mapstructure:"cache_ttl_hours"`
}

// ChatConfig holds orchestration knobs.
type ChatConfig struct {
	MemoryLimit   int     `mapstructure:"memory_limit"`
	ContextTurns  int     `mapstructure:"context_turns"`
	LearnMinChars int     `mapstructure:"learn_min_chars"`
	DefaultRating float64 `mapstructure:"default_rating"`
}

// Init reads the YAML file at configPath and unmarshals it into Conf.
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("failed to read config file: %w", err))
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("failed to unmarshal config: %w", err))
	}

	applyDefaults()
}

func applyDefaults() {
	if Conf.Chat.MemoryLimit == 0 {
		Conf.Chat.MemoryLimit = 10
	}
	if Conf.Chat.ContextTurns == 0 {
		Conf.Chat.ContextTurns = 4
	}
	if Conf.Chat.LearnMinChars == 0 {
		Conf.Chat.LearnMinChars = 50
	}
	if Conf.Chat.DefaultRating == 0 {
		Conf.Chat.DefaultRating = 5.0
	}
	if Conf.LLM.TimeoutSeconds == 0 {
		Conf.LLM.TimeoutSeconds = 120
	}
	if Conf.Vision.TimeoutSeconds == 0 {
		Conf.Vision.TimeoutSeconds = 30
	}
	if Conf.Vision.MinConfidence == 0 {
		Conf.Vision.MinConfidence = 0.3
	}
	if Conf.WebSearch.TimeoutSeconds == 0 {
		Conf.WebSearch.TimeoutSeconds = 10
	}
	if Conf.WebSearch.CacheTTLHours == 0 {
		Conf.WebSearch.CacheTTLHours = 24
	}
}
