package main

import (
	"flag"
	"time"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	defaultChainID = 31337
)

// Config holds the benchmark parameters
type Config struct {
	APIURL          string
	ContractAddress string
	ChainID         uint64
	Items           int           // Number of items to register
	ScansPerItem    int           // Signed scans submitted per item
	Concurrency     int           // Number of concurrent workers
	RequestTimeout  time.Duration // Per-request HTTP timeout
	Debug           bool
}

func parseFlags() Config {
	var cfg Config

	flag.StringVar(&cfg.APIURL, "api", defaultAPIURL, "Base URL of the custody API")
	flag.StringVar(&cfg.ContractAddress, "contract", "", "AuditLog contract address (required)")
	flag.Uint64Var(&cfg.ChainID, "chain-id", defaultChainID, "Chain id of the ledger network")
	flag.IntVar(&cfg.Items, "items", 10, "Number of items to register")
	flag.IntVar(&cfg.ScansPerItem, "scans", 5, "Signed scans submitted per item")
	flag.IntVar(&cfg.Concurrency, "concurrency", 4, "Number of concurrent workers")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", 3*time.Minute, "Per-request timeout; must cover write confirmation")
	flag.BoolVar(&cfg.Debug, "debug", false, "Verbose output")
	flag.Parse()

	return cfg
}
