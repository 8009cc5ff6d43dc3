package main

import (
	"os"
	"time"
)

// Config holds all environment variables for the product-service.
type Config struct {
	Port string // Service port (default: 8082)

	// ProductStore selects the persistence adapter: "dynamo" or "mongo".
	ProductStore string
	MongoURL     string
	MongoDB      string

	DDBTableProducts string
	DDBTableSchemas  string

	S3Bucket string
	S3Prefix string

	SchemaRefreshInterval time.Duration
}

// LoadConfig loads environment variables into a Config struct, with defaults
// for everything that has a sensible one.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8082"),
		ProductStore:     getEnv("PRODUCT_STORE", "dynamo"),
		MongoURL:         getEnv("MONGO_URL", "mongodb://mongo:27017"),
		MongoDB:          getEnv("MONGO_DB", "products"),
		DDBTableProducts: getEnv("DDB_TABLE_PRODUCTS", "Products"),
		DDBTableSchemas:  getEnv("DDB_TABLE_SCHEMAS", "SubcategorySchemas"),
		S3Bucket:         getEnv("AWS_S3_BUCKET", "shopswift"),
		S3Prefix:         getEnv("AWS_S3_PREFIX", "products/"),
	}

	interval := getEnv("SCHEMA_REFRESH_INTERVAL", "5m")
	d, err := time.ParseDuration(interval)
	if err != nil {
		d = 5 * time.Minute
	}
	cfg.SchemaRefreshInterval = d

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
