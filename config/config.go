package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Game      GameConfig      `mapstructure:"game"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type AppConfig struct {
	Name  string `mapstructure:"name"`
	Debug bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	AllowOrigins string `mapstructure:"allow_origins"`
	TrustHeaders bool   `mapstructure:"trust_headers"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	Brokers    []string `mapstructure:"brokers"`
	GroupID    string   `mapstructure:"group_id"`
	UserTopic  string   `mapstructure:"user_topic"`
	GameTopic  string   `mapstructure:"game_topic"`
	RetryTopic string   `mapstructure:"retry_topic"`
	DLQTopic   string   `mapstructure:"dlq_topic"`
	MaxRetries int      `mapstructure:"max_retries"`
}

type GameConfig struct {
	// TimeUnit scales a room's time limit into a deadline.
	TimeUnit time.Duration `mapstructure:"time_unit"`
}

type RateLimitConfig struct {
	RequestsPerMinute     int `mapstructure:"requests_per_minute"`
	Burst                 int `mapstructure:"burst"`
	UserRequestsPerMinute int `mapstructure:"user_requests_per_minute"`
	UserBurst             int `mapstructure:"user_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "riddle-service")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.port", "8083")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.allow_origins", "http://localhost:5173")
	v.SetDefault("server.trust_headers", true)

	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "myuser")
	v.SetDefault("postgres.password", "mypassword")
	v.SetDefault("postgres.db", "riddledb")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", "riddle-service")
	v.SetDefault("kafka.user_topic", "user.created")
	v.SetDefault("kafka.game_topic", "game.ended")
	v.SetDefault("kafka.retry_topic", "riddle-service.retry")
	v.SetDefault("kafka.dlq_topic", "riddle-service.dlq")
	v.SetDefault("kafka.max_retries", 3)

	v.SetDefault("game.time_unit", time.Minute)

	v.SetDefault("ratelimit.requests_per_minute", 600)
	v.SetDefault("ratelimit.burst", 50)
	v.SetDefault("ratelimit.user_requests_per_minute", 120)
	v.SetDefault("ratelimit.user_burst", 10)
}

func Read() Config {
	return read(viper.New())
}

func read(v *viper.Viper) Config {
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")
	v.AddConfigPath("/")

	setDefaults(v)

	// ENV overrides with prefix RIDDLE_ and dot-to-underscore replacement
	v.SetEnvPrefix("RIDDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}
	if config.Game.TimeUnit <= 0 {
		config.Game.TimeUnit = time.Minute
	}

	return config
}
