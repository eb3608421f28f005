// Package constants holds shared identifier constants.
package constants

// Pub/Sub provider identifiers selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
