package types

import (
	"errors"
	"os"
	"strings"
)

const (
	EnvProjectID    = "PROJECT_ID"
	EnvZone         = "ZONE"
	EnvInstanceName = "INSTANCE_NAME"
)

var ErrMissingConfig = errors.New("missing required environment variables")

// Config identifies the single instance the scheduler manages.
type Config struct {
	ProjectID    string `json:"project_id"`
	Zone         string `json:"zone"`
	InstanceName string `json:"instance_name"`
}

type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return ErrMissingConfig.Error() + ": " + strings.Join(e.Keys, ", ")
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// LoadConfig reads the instance coordinates through lookup. Either every value
// is present or a *MissingConfigError listing the absent keys is returned.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	var missing []string
	get := func(key string) string {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			missing = append(missing, key)
		}
		return value
	}

	conf := Config{
		ProjectID:    get(EnvProjectID),
		Zone:         get(EnvZone),
		InstanceName: get(EnvInstanceName),
	}
	if len(missing) > 0 {
		return Config{}, &MissingConfigError{Keys: missing}
	}
	return conf, nil
}

func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}
