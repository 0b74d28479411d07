package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR_HTTP", ":8080")
	t.Setenv("SCYLLA_HOSTS", "node-0.example:9042, node-1.example:9042")
	t.Setenv("SCYLLA_KEYSPACE", "blackmessagesDS")
	t.Setenv("SCYLLA_LOCAL_DC", "GCE_EUROPE_CENTRAL_2")
	t.Setenv("SCYLLA_USERNAME", "scylla")
	t.Setenv("SCYLLA_PASSWORD", "secret")
	t.Setenv("MESSAGE_TTL", "45s")
	t.Setenv("DEFAULT_SEARCH_RADIUS_KM", "1.5")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, []string{"node-0.example:9042", "node-1.example:9042"}, c.StorageHosts)
	assert.Equal(t, "blackmessagesDS", c.StorageKeyspace)
	assert.Equal(t, "GCE_EUROPE_CENTRAL_2", c.StorageLocalDC)
	assert.Equal(t, "scylla", c.StorageUsername)
	assert.Equal(t, "secret", c.StoragePassword)
	assert.Equal(t, 45*time.Second, c.MessageTTL)
	assert.Equal(t, 1.5, c.DefaultSearchRadiusKm)
}

func TestParseEnv_KeepsDefaultsWhenUnset(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, 60*time.Second, c.MessageTTL)
}

func TestParseEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("MESSAGE_TTL", "not-a-duration")
	t.Setenv("DEFAULT_SEARCH_RADIUS_KM", "wide")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 60*time.Second, c.MessageTTL)
	assert.Equal(t, 0.5, c.DefaultSearchRadiusKm)
}
