package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string // BREWDEX_DATABASE_URL (required)
	HTTPAddr    string // BREWDEX_HTTP_ADDR (default ":8080")
	NATSURL     string // BREWDEX_NATS_URL (optional, empty = no events)
	AuthToken   string // BREWDEX_AUTH_TOKEN (optional, empty = auth disabled)

	// Snapshot sync settings
	SyncInterval   time.Duration // BREWDEX_SYNC_INTERVAL (default 15m; 0 = disabled)
	SyncFile       string        // BREWDEX_SYNC_FILE (enables file snapshots when set)
	SyncS3Bucket   string        // BREWDEX_SYNC_S3_BUCKET (enables S3 when set)
	SyncS3Endpoint string        // BREWDEX_SYNC_S3_ENDPOINT (custom endpoint for MinIO)
	SyncS3Region   string        // BREWDEX_SYNC_S3_REGION (default "us-east-1")
	SyncS3Key      string        // BREWDEX_SYNC_S3_KEY (default "brewdex/snapshot.json")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:    os.Getenv("BREWDEX_DATABASE_URL"),
		HTTPAddr:       envOrDefault("BREWDEX_HTTP_ADDR", ":8080"),
		NATSURL:        os.Getenv("BREWDEX_NATS_URL"),
		AuthToken:      os.Getenv("BREWDEX_AUTH_TOKEN"),
		SyncFile:       os.Getenv("BREWDEX_SYNC_FILE"),
		SyncS3Bucket:   os.Getenv("BREWDEX_SYNC_S3_BUCKET"),
		SyncS3Endpoint: os.Getenv("BREWDEX_SYNC_S3_ENDPOINT"),
		SyncS3Region:   envOrDefault("BREWDEX_SYNC_S3_REGION", "us-east-1"),
		SyncS3Key:      envOrDefault("BREWDEX_SYNC_S3_KEY", "brewdex/snapshot.json"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("BREWDEX_DATABASE_URL is required")
	}

	intervalStr := envOrDefault("BREWDEX_SYNC_INTERVAL", "15m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("BREWDEX_SYNC_INTERVAL: %w", err)
		}
		c.SyncInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
