package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading an
// optional .env file first. The SCYLLA_* names match what the original
// deployment used for cluster credentials.
//
// Recognized variables:
//
//	ENDPOINT_ADDR_HTTP       bind address
//	SCYLLA_HOSTS             comma-separated contact points
//	SCYLLA_KEYSPACE          keyspace name
//	SCYLLA_LOCAL_DC          local datacenter
//	SCYLLA_USERNAME          cluster user
//	SCYLLA_PASSWORD          cluster password
//	MESSAGE_TTL              duration, e.g. "60s"
//	DEFAULT_SEARCH_RADIUS_KM float, e.g. "0.5"
func parseEnv(config *Config) {
	// missing .env is fine, the environment itself still applies
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ENDPOINT_ADDR_HTTP"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("SCYLLA_HOSTS"); ok {
		hosts := strings.Split(v, ",")
		for i := range hosts {
			hosts[i] = strings.TrimSpace(hosts[i])
		}
		config.StorageHosts = hosts
	}
	if v, ok := os.LookupEnv("SCYLLA_KEYSPACE"); ok {
		config.StorageKeyspace = v
	}
	if v, ok := os.LookupEnv("SCYLLA_LOCAL_DC"); ok {
		config.StorageLocalDC = v
	}
	if v, ok := os.LookupEnv("SCYLLA_USERNAME"); ok {
		config.StorageUsername = v
	}
	if v, ok := os.LookupEnv("SCYLLA_PASSWORD"); ok {
		config.StoragePassword = v
	}
	if v, ok := os.LookupEnv("MESSAGE_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.MessageTTL = d
		}
	}
	if v, ok := os.LookupEnv("DEFAULT_SEARCH_RADIUS_KM"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.DefaultSearchRadiusKm = f
		}
	}
}
