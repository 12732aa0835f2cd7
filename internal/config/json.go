package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig]. The
// "sync" subtree follows the nti_sync configuration tree.
type StructuredJSONConfig struct {
	Sync struct {
		Deletes struct {
			IdentifierGetter string `json:"identifier_getter"`
		} `json:"deletes"`

		LastTimestamp struct {
			IgnoreProperties IgnoreProperties `json:"ignore_properties"`
		} `json:"last_timestamp"`
	} `json:"sync"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		MappingCache struct {
			Size int      `json:"size"`
			TTL  Duration `json:"ttl"`
		} `json:"mapping_cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Sync: Sync{
			Deletes: Deletes{
				IdentifierGetter: jsonCfg.Sync.Deletes.IdentifierGetter,
			},
			LastTimestamp: LastTimestamp{
				IgnoreProperties: jsonCfg.Sync.LastTimestamp.IgnoreProperties,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			MappingCache: MappingCache{
				Size: jsonCfg.Storage.MappingCache.Size,
				TTL:  time.Duration(jsonCfg.Storage.MappingCache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration decodes "30s"-style strings as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	return json.Unmarshal(b, (*time.Duration)(d))
}
