// Package constants contains string constants shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Database drivers
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverMySQL    = "mysql"
)

// Mail providers
const (
	MailProviderSMTP = "smtp"
	MailProviderNoop = "noop"
)

// Delivery note event types
const (
	EventDeliveryNoteSigned            = "delivery_note.signed"
	EventDeliveryNoteArtifactRequested = "delivery_note.artifact_requested"
)
