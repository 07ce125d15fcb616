package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Instance struct {
		URL            string   `json:"url"`
		AccessToken    string   `json:"access_token"`
		StreamingURL   string   `json:"streaming_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"instance,omitempty"`

	Timeline struct {
		PageSize  int    `json:"page_size"`
		Lookahead int    `json:"lookahead"`
		Default   string `json:"default"`
	} `json:"timeline,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SnapshotInterval Duration `json:"snapshot_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
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
		Instance: Instance{
			URL:            jsonCfg.Instance.URL,
			AccessToken:    jsonCfg.Instance.AccessToken,
			StreamingURL:   jsonCfg.Instance.StreamingURL,
			RequestTimeout: time.Duration(jsonCfg.Instance.RequestTimeout),
		},
		Timeline: Timeline{
			PageSize:  jsonCfg.Timeline.PageSize,
			Lookahead: jsonCfg.Timeline.Lookahead,
			Default:   jsonCfg.Timeline.Default,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{SnapshotInterval: time.Duration(jsonCfg.Workers.SnapshotInterval)},
		Log:     Log{File: jsonCfg.Log.File},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
