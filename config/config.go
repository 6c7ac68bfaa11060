package config

import (
	"fmt"
	"os"
)

const DEFAULT_SNAPSHOT_DIR string = "./data"
const DEFAULT_LISTEN_ADDR string = ":8080"

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

// GetSetting returns the env value for key, or fallback when unset.
func GetSetting(key, fallback string) string {
	if val, exist := os.LookupEnv(key); exist {
		return val
	}
	return fallback
}

// SnapshotDir is the directory holding the three local snapshot files.
func SnapshotDir() string {
	return GetSetting("SNAPSHOT_DIR", DEFAULT_SNAPSHOT_DIR)
}

// ListenAddr is the address the HTTP layer binds to.
func ListenAddr() string {
	return GetSetting("LISTEN_ADDR", DEFAULT_LISTEN_ADDR)
}

// AdminCredentials returns the configured admin login pair. The admin is not
// part of the attendee directory; it exists only for the presentation layer.
func AdminCredentials() (string, string) {
	email := GetSetting("ADMIN_EMAIL", "admin@greenwave.io")
	password := GetSetting("ADMIN_PASSWORD", "admin123")
	return email, password
}
