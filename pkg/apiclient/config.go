package apiclient

import "time"

// Config holds API client configuration.
type Config struct {
	// BaseURL is the backend origin; the /api/v1 prefix is appended by the
	// client.
	BaseURL string `env:"CASTKIT_API_BASE_URL" envDefault:"http://localhost:8000"`

	// MediaBaseURL is the origin media paths are resolved against. Empty
	// means BaseURL.
	MediaBaseURL string `env:"CASTKIT_MEDIA_BASE_URL"`

	// RequestTimeout bounds every API round-trip.
	RequestTimeout time.Duration `env:"CASTKIT_API_TIMEOUT" envDefault:"10s"`
}
