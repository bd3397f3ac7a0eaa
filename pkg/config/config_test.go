package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "5000")
	os.Setenv("MONGO_URI", "mongodb://testhost:27017")
	os.Setenv("MONGO_DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("S3_BUCKET_NAME", "test-bucket")
	os.Setenv("POPULAR_LIKE_THRESHOLD", "10")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions
	assert.NotNil(t, cfg)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "mongodb://testhost:27017", cfg.MongoURI)
	assert.Equal(t, "testdb", cfg.MongoDBName)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "test-bucket", cfg.S3BucketName)
	assert.Equal(t, 10, cfg.PopularLikeThreshold)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("MONGO_DB_NAME")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("REDIS_PORT")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("S3_BUCKET_NAME")
	os.Unsetenv("POPULAR_LIKE_THRESHOLD")
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear environment variables
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("POPULAR_LIKE_THRESHOLD")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions - check that defaults are used
	assert.NotNil(t, cfg)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 1, cfg.PopularLikeThreshold)
}

func TestLoadConfig_InvalidThreshold(t *testing.T) {
	os.Setenv("POPULAR_LIKE_THRESHOLD", "not-a-number")
	defer os.Unsetenv("POPULAR_LIKE_THRESHOLD")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Falls back to the default on unparseable values
	assert.Equal(t, 1, cfg.PopularLikeThreshold)
}
