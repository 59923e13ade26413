package config

import "os"

type Config struct {
	ServiceName      string
	MigrationDir     string
	DatabaseDSN      string
	KafkaHost        string
	OrderPlacedTopic string
	OutboxBatchSize  int
}

var DefaultConfig = Config{
	ServiceName:      "storefront",
	MigrationDir:     "migration/storefront",
	DatabaseDSN:      "root:1@tcp(localhost:3306)/pizzeria?parseTime=true",
	KafkaHost:        "localhost:29092",
	OrderPlacedTopic: "ORDER_PLACED_TOPIC",
	OutboxBatchSize:  100,
}

// Load returns DefaultConfig with environment overrides applied.
func Load() Config {
	conf := DefaultConfig
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		conf.DatabaseDSN = dsn
	}
	if host := os.Getenv("KAFKA_HOST"); host != "" {
		conf.KafkaHost = host
	}
	if topic := os.Getenv("ORDER_PLACED_TOPIC"); topic != "" {
		conf.OrderPlacedTopic = topic
	}
	return conf
}
