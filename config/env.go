// Package config loads application settings from a .env file and the
// process environment, with sane local defaults.
//
// Usage:
//
//	if err := config.Load(); err != nil { ... }
//	uri := config.MongoURI()
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDB       = "ProductAssignment"
	defaultAppEnv        = "local"
	defaultLogCollection = "activity_log"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load reads .env (if present) into the process environment.
// Safe to call multiple times; only the first call does work.
func Load() error {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			loadErr = err
		}
	})
	return loadErr
}

// MongoURI returns the MongoDB connection string.
func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

// MongoDB returns the database name holding the inventory collections.
func MongoDB() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

// AppEnv returns the runtime environment ("local", "production", …).
func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// LogToMongo reports whether operation logs should also be persisted
// to the activity-log collection.
func LogToMongo() bool {
	_ = Load()
	switch strings.ToLower(get("LOG_TO_MONGO", "false")) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// LogCollection returns the collection name for the activity log.
func LogCollection() string {
	_ = Load()
	return get("LOG_COLLECTION", defaultLogCollection)
}

func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// Get reads any environment key by name with an optional fallback.
// Values from .env are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
