package messaging

import "time"

type KafkaConfig struct {
	Brokers           []string
	GroupID           string
	ClientID          string
	EnableRetry       bool
	MaxRetries        int
	RetryTopic        string
	DLQTopic          string
	ConnectionTimeout time.Duration
}

func NewDefaultConfig(kafkaBrokers []string) KafkaConfig {
	if len(kafkaBrokers) == 0 {
		kafkaBrokers = []string{"localhost:9092"}
	}

	return KafkaConfig{
		Brokers:           kafkaBrokers,
		GroupID:           "riddle-service",
		ClientID:          "riddle-service",
		EnableRetry:       true,
		MaxRetries:        3,
		RetryTopic:        "riddle-service.retry",
		DLQTopic:          "riddle-service.dlq",
		ConnectionTimeout: 10 * time.Second,
	}
}
