package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hackorsnooze/snooze/internal/flagx"
)

// duration lets JSON specify intervals either as strings like "15s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return json.Unmarshal(data, &d.Duration)
	}
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type jsonConfig struct {
	APIBaseURL     string   `json:"api_base_url"`
	RequestTimeout duration `json:"request_timeout"`
	SessionDBPath  string   `json:"session_db_path"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. When no config flag is given, nothing happens. Only fields
// present in the file override existing values.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
