package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		SendDelay   Duration `json:"send_delay"`
		WrapWidth   int      `json:"wrap_width"`
		CopyLimit   int      `json:"copy_limit"`
		Clipboard   bool     `json:"clipboard"`
		HistoryFile string   `json:"history_file"`
	} `json:"app,omitempty"`

	Storage struct {
		ConfigPath  string `json:"config_path"`
		SessionPath string `json:"session_path"`
	} `json:"storage,omitempty"`

	Log struct {
		Path string `json:"path"`
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
		App: App{
			SendDelay:   time.Duration(jsonCfg.App.SendDelay),
			WrapWidth:   jsonCfg.App.WrapWidth,
			CopyLimit:   jsonCfg.App.CopyLimit,
			Clipboard:   jsonCfg.App.Clipboard,
			HistoryFile: jsonCfg.App.HistoryFile,
		},
		Storage: Storage{
			ConfigPath:  jsonCfg.Storage.ConfigPath,
			SessionPath: jsonCfg.Storage.SessionPath,
		},
		Log: Log{
			Path: jsonCfg.Log.Path,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
