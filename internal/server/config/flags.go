package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/blackmessages/backend/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-n string   comma-separated storage contact points
//	-k string   keyspace name
//	-l string   local datacenter
//	-u string   storage username
//	-p string   storage password
//	-t int      message TTL, seconds
//	-r float    default search radius, km
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-k", "-l", "-u", "-p", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	hosts := fs.String("n", strings.Join(config.StorageHosts, ","), "storage contact points (comma-separated)")
	fs.StringVar(&config.StorageKeyspace, "k", config.StorageKeyspace, "storage keyspace")
	fs.StringVar(&config.StorageLocalDC, "l", config.StorageLocalDC, "storage local datacenter")
	fs.StringVar(&config.StorageUsername, "u", config.StorageUsername, "storage username")
	fs.StringVar(&config.StoragePassword, "p", config.StoragePassword, "storage password")
	messageTTL := fs.Int("t", int(config.MessageTTL.Seconds()), "message TTL (in seconds)")
	fs.Float64Var(&config.DefaultSearchRadiusKm, "r", config.DefaultSearchRadiusKm, "default search radius (km)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	parts := strings.Split(*hosts, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	config.StorageHosts = parts

	config.MessageTTL = time.Duration(*messageTTL) * time.Second
}
