package session

import (
	"os"
	"path/filepath"
)

// Config holds session persistence configuration.
type Config struct {
	// FilePath overrides where FileRecordStore keeps the session record.
	// Empty means the platform default config directory.
	FilePath string `env:"CASTKIT_SESSION_FILE"`

	// KeyPrefix namespaces the Redis-backed record keys.
	KeyPrefix string `env:"CASTKIT_SESSION_PREFIX" envDefault:"castkit:session"`
}

// Path resolves the session file location, falling back to
// <user config dir>/castkit/session.json.
func (c Config) Path() string {
	if c.FilePath != "" {
		return c.FilePath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".castkit-session.json"
	}
	return filepath.Join(dir, "castkit", "session.json")
}
