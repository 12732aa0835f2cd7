package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
)

// ReporterConfig configures the failed-item reporter process.
type ReporterConfig struct {
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`
}

// Adapter holds the address of the sync server read API.
type Adapter struct {
	// HTTPAddress is the base address of the sync server (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout bounds a single request to the server.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Workers configures the reporting worker.
type Workers struct {
	// ReportInterval is the polling period.
	// Env: WORKERS_REPORT_INTERVAL
	ReportInterval time.Duration `env:"REPORT_INTERVAL" validate:"gt=0"`

	// Mappings are the mapping names whose failed items are reported.
	// Env: WORKERS_MAPPINGS ("orders,invoices")
	Mappings []string `env:"MAPPINGS" envSeparator:"," validate:"min=1,dive,required"`
}

// GetReporterConfig loads the reporter configuration from the environment
// and os.Args, flags overriding env.
func GetReporterConfig() (*ReporterConfig, error) {
	return loadReporterConfig(os.Args[1:])
}

func loadReporterConfig(args []string) (*ReporterConfig, error) {
	envCfg := &ReporterConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseReporterFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ReporterConfig)
	if err = errors.Join(
		mergo.Merge(cfg, envCfg, mergo.WithOverride),
		mergo.Merge(cfg, flagCfg, mergo.WithOverride),
	); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.ReportInterval == 0 {
		cfg.Workers.ReportInterval = DefaultReportingInterval
	}

	return cfg, cfg.validate()
}

func parseReporterFlags(args []string) (*ReporterConfig, error) {
	var address string
	var requestTimeout time.Duration
	var interval time.Duration
	var mappings string

	fs := flag.NewFlagSet("sync-reporter", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Sync server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&interval, "i", 0, "Report interval (e.g., 1m)")
	fs.StringVar(&mappings, "m", "", "Comma-separated mapping names")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &ReporterConfig{
		Adapter: Adapter{HTTPAddress: address, RequestTimeout: requestTimeout},
		Workers: Workers{ReportInterval: interval},
	}
	for _, name := range strings.Split(mappings, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Workers.Mappings = append(cfg.Workers.Mappings, name)
		}
	}

	return cfg, nil
}
