// Package config handles configuration for the server,
// including defaults, environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the blackmessages server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - StorageHosts: Cassandra/Scylla contact points.
//   - StorageKeyspace: keyspace holding the four tables.
//   - StorageLocalDC: local datacenter for DC-aware routing (optional).
//   - StorageUsername / StoragePassword: cluster credentials.
//   - MessageTTL: time-to-live applied to every posted message.
//   - DefaultSearchRadiusKm: radius used by the fetch-nearby flow.
type Config struct {
	EndpointAddrHTTP      string
	StorageHosts          []string
	StorageKeyspace       string
	StorageLocalDC        string
	StorageUsername       string
	StoragePassword       string
	MessageTTL            time.Duration
	DefaultSearchRadiusKm float64
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.StorageHosts = []string{"127.0.0.1:9042"}
	c.StorageKeyspace = "blackmessages"
	c.StorageLocalDC = ""
	c.StorageUsername = ""
	c.StoragePassword = ""
	c.MessageTTL = 60 * time.Second
	c.DefaultSearchRadiusKm = 0.5
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
