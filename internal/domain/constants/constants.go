// Package constants holds configuration values shared across layers.
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
	PubSubProviderMemory = "memory"
)

// Task kinds used as queue keys and metric labels
const (
	TaskKindBuyerRefresh  = "buyer_refresh"
	TaskKindFarmerRefresh = "farmer_refresh"
	TaskKindNotify        = "notify"
)

// TaskKey scopes a task kind to one id, e.g. buyer_refresh:<uid>
func TaskKey(kind, id string) string {
	return kind + ":" + id
}
