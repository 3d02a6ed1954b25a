package events

// Config holds configuration for event publication.
type Config struct {
	// NATSURL is the NATS server URL. Empty disables publication.
	NATSURL string `mapstructure:"nats_url" default:""`
	// Subject is the subject prefix for published events.
	Subject string `mapstructure:"subject" default:"cardtimers"`
	// TimeoutSeconds bounds the connection attempt and each flush.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
