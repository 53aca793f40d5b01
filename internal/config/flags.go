package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote data service address in format [host]:[port]
//	-d local cache database path
//	-debug-address diagnostics endpoint address in format [host]:[port]
//	-token bearer token for the remote data service
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-sync-interval queue replay interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var remoteAddress, debugAddress NetAddress
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration

	flag.Var(&remoteAddress, "a", "Remote data service address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.Var(&debugAddress, "debug-address", "Diagnostics endpoint address host:port")
	flag.StringVar(&token, "token", "", "Bearer token for the remote data service")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Queue replay interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Remote: Remote{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Debug: Debug{
			HTTPAddress: debugAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
