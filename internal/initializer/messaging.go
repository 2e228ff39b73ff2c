package initializer

import (
	"riddle-service/config"
	"riddle-service/pkg/messaging"

	"go.uber.org/zap"
)

// InitMessaging returns nil when Kafka is disabled.
func InitMessaging(appConfig config.Config) *messaging.KafkaClient {
	if !appConfig.Kafka.Enabled {
		zap.L().Info("Kafka disabled, skipping messaging setup")
		return nil
	}

	cfg := messaging.NewDefaultConfig(appConfig.Kafka.Brokers)
	cfg.GroupID = appConfig.Kafka.GroupID
	cfg.ClientID = appConfig.App.Name
	cfg.RetryTopic = appConfig.Kafka.RetryTopic
	cfg.DLQTopic = appConfig.Kafka.DLQTopic
	cfg.MaxRetries = appConfig.Kafka.MaxRetries

	kafkaClient, err := messaging.NewKafkaClient(cfg)
	if err != nil {
		zap.L().Fatal("Failed to connect to kafka", zap.Error(err))
	}
	zap.L().Info("Kafka client initialized", zap.Strings("brokers", cfg.Brokers), zap.String("group_id", cfg.GroupID))
	return kafkaClient
}
