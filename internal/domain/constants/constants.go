// Package constants holds configuration values shared across layers.
package constants

// Runtime environments. Push authentication is skipped in both.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Product catalog providers.
const (
	CatalogProviderLocal  = "local"
	CatalogProviderRemote = "remote"
)

// ContentTypePNG is returned for QR code images.
const ContentTypePNG = "image/png"
