package envvars

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	ProjectID          = "GOOGLE_CLOUD_PROJECT"
	FirebaseProjectID  = "FIREBASE_PROJECT_ID"
	Environment        = "ENVIRONMENT"
	Port               = "PORT"
	CatalogBucket      = "CATALOG_BUCKET"
	CatalogObject      = "CATALOG_OBJECT"
	CatalogPath        = "CATALOG_PATH"
	FavoritesCacheSize = "FAVORITES_CACHE_SIZE"
	EnableH2C          = "ENABLE_H2C"
	LogLevel           = "LOG_LEVEL"
)

const (
	ProductionEnv = "production"
	DevEnv        = "dev"
)

const (
	defaultPort          = "8080"
	defaultCatalogBucket = "sportlink-catalog"
	defaultCatalogObject = "infrastructures.json"
	defaultCacheSize     = 1024
)

type Env struct {
	ProjectID          string
	FirebaseProjectID  string
	Environment        string
	Port               string
	CatalogBucket      string
	CatalogObject      string
	CatalogPath        string
	FavoritesCacheSize int
	EnableH2C          bool
	LogLevel           string
}

func GetEnv() Env {
	projectID, ok := os.LookupEnv(ProjectID)
	if !ok {
		log.Fatal().Msgf("%s required", ProjectID)
	}
	env := Env{
		ProjectID:          projectID,
		FirebaseProjectID:  lookupOr(FirebaseProjectID, projectID),
		Environment:        lookupOr(Environment, DevEnv),
		Port:               lookupOr(Port, defaultPort),
		CatalogBucket:      lookupOr(CatalogBucket, defaultCatalogBucket),
		CatalogObject:      lookupOr(CatalogObject, defaultCatalogObject),
		CatalogPath:        os.Getenv(CatalogPath),
		FavoritesCacheSize: defaultCacheSize,
		LogLevel:           lookupOr(LogLevel, "info"),
	}

	if raw, ok := os.LookupEnv(FavoritesCacheSize); ok {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			log.Warn().Str("value", raw).Msgf("invalid %s, using default", FavoritesCacheSize)
		} else {
			env.FavoritesCacheSize = size
		}
	}
	if raw, ok := os.LookupEnv(EnableH2C); ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn().Str("value", raw).Msgf("invalid %s, h2c disabled", EnableH2C)
		}
		env.EnableH2C = enabled
	}
	return env
}

func lookupOr(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func IsProd(env Env) bool {
	return env.Environment == ProductionEnv
}

func IsDev(env Env) bool {
	return env.Environment == DevEnv
}
