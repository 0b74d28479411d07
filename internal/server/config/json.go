package config

import (
	"encoding/json"
	"os"

	"github.com/blackmessages/backend/internal/flagx"
	"github.com/blackmessages/backend/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which parses both
// string values such as "60s" and integer nanoseconds. After unmarshalling,
// non-zero fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	StorageHosts          []string       `json:"storage_hosts"`
	StorageKeyspace       string         `json:"storage_keyspace"`
	StorageLocalDC        string         `json:"storage_local_dc"`
	StorageUsername       string         `json:"storage_username"`
	StoragePassword       string         `json:"storage_password"`
	MessageTTL            timex.Duration `json:"message_ttl"`
	DefaultSearchRadiusKm float64        `json:"default_search_radius_km"`
}

// parseJson loads configuration values from the JSON file given via the
// -c or -config command-line flags. If no flag is set, nothing is loaded.
// An unreadable or malformed file panics: a config file that was explicitly
// requested must not be half-applied.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if len(c.StorageHosts) > 0 {
		config.StorageHosts = c.StorageHosts
	}
	if c.StorageKeyspace != "" {
		config.StorageKeyspace = c.StorageKeyspace
	}
	if c.StorageLocalDC != "" {
		config.StorageLocalDC = c.StorageLocalDC
	}
	if c.StorageUsername != "" {
		config.StorageUsername = c.StorageUsername
	}
	if c.StoragePassword != "" {
		config.StoragePassword = c.StoragePassword
	}
	if c.MessageTTL.Duration != 0 {
		config.MessageTTL = c.MessageTTL.Duration
	}
	if c.DefaultSearchRadiusKm != 0 {
		config.DefaultSearchRadiusKm = c.DefaultSearchRadiusKm
	}
}
