package kafka

import "time"

// ProducerConfig covers the single publishing path this service has.
// Consumers live in downstream services.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	MaxAttempts  int
	BatchTimeout time.Duration
	RequireAcks  int // -1 = all, 0 = none, 1 = leader only
	Async        bool
}

func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:      brokers,
		Topic:        topic,
		MaxAttempts:  3,
		BatchTimeout: 100 * time.Millisecond,
		RequireAcks:  -1,
		Async:        false,
	}
}
