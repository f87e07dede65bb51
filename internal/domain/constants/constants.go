// Package constants contains string constants shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Email transport providers
const (
	EmailProviderSMTP = "smtp"
	EmailProviderSES  = "ses"
)
