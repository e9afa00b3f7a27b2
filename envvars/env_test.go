package envvars

import (
	"os"
	"reflect"
	"testing"
)

func TestGetEnv(t *testing.T) {
	// Backup and defer restore of environment variables
	backup := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range backup {
			pair := splitEnv(env)
			os.Setenv(pair[0], pair[1])
		}
	}()

	t.Run("all env vars set", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(ProjectID, "sportlink-test")
		os.Setenv(FirebaseProjectID, "sportlink-auth")
		os.Setenv(Environment, "production")
		os.Setenv(Port, "9090")
		os.Setenv(CatalogBucket, "bucket")
		os.Setenv(CatalogObject, "catalog.json")
		os.Setenv(CatalogPath, "/tmp/catalog.json")
		os.Setenv(FavoritesCacheSize, "16")
		os.Setenv(EnableH2C, "true")
		os.Setenv(LogLevel, "debug")

		expected := Env{
			ProjectID:          "sportlink-test",
			FirebaseProjectID:  "sportlink-auth",
			Environment:        ProductionEnv,
			Port:               "9090",
			CatalogBucket:      "bucket",
			CatalogObject:      "catalog.json",
			CatalogPath:        "/tmp/catalog.json",
			FavoritesCacheSize: 16,
			EnableH2C:          true,
			LogLevel:           "debug",
		}

		if got := GetEnv(); !reflect.DeepEqual(got, expected) {
			t.Errorf("GetEnv() = %v, want %v", got, expected)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(ProjectID, "sportlink-test")

		got := GetEnv()
		if got.Environment != DevEnv {
			t.Errorf("Expected environment to default to dev, got %s", got.Environment)
		}
		if got.FirebaseProjectID != "sportlink-test" {
			t.Errorf("Expected firebase project to default to project id, got %s", got.FirebaseProjectID)
		}
		if got.Port != "8080" {
			t.Errorf("Expected port 8080, got %s", got.Port)
		}
		if got.FavoritesCacheSize != 1024 {
			t.Errorf("Expected cache size 1024, got %d", got.FavoritesCacheSize)
		}
	})

	t.Run("invalid cache size falls back", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(ProjectID, "sportlink-test")
		os.Setenv(FavoritesCacheSize, "-3")

		if got := GetEnv(); got.FavoritesCacheSize != 1024 {
			t.Errorf("Expected cache size 1024, got %d", got.FavoritesCacheSize)
		}
	})
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitEnv(env string) []string {
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			return []string{env[:i], env[i+1:]}
		}
	}
	return []string{"", ""}
}
