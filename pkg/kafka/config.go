// Package kafka wraps segmentio/kafka-go with the small producer surface the
// Finora services need.
package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string
}
