package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is the flag.Value behind -a.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-identifier-getter accessor used to read identifiers of deleted objects
//	-ignore-properties ignored-property rules ("Class.Property,...")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mapping-cache-size number of cached sync mappings
//	-mapping-cache-ttl time-to-live of cached sync mappings
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var identifierGetter string
	var ignoreProperties IgnoreProperties
	var requestTimeout time.Duration
	var cacheSize int
	var cacheTTL time.Duration

	fs := flag.NewFlagSet("sync-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&identifierGetter, "identifier-getter", "", "Identifier accessor of deleted objects")
	fs.Var(&ignoreProperties, "ignore-properties", "Ignored properties as Class.Property,...")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cacheSize, "mapping-cache-size", 0, "Number of cached sync mappings")
	fs.DurationVar(&cacheTTL, "mapping-cache-ttl", 0, "Sync mapping cache TTL")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Sync: Sync{
			Deletes:       Deletes{IdentifierGetter: identifierGetter},
			LastTimestamp: LastTimestamp{IgnoreProperties: ignoreProperties},
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			MappingCache: MappingCache{
				Size: cacheSize,
				TTL:  cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
