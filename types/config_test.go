package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func fullEnv() map[string]string {
	return map[string]string{
		EnvProjectID:    "vpn-project",
		EnvZone:         "europe-west1-b",
		EnvInstanceName: "vpn-gateway",
	}
}

func TestLoadConfig(t *testing.T) {
	conf, err := LoadConfig(lookupFrom(fullEnv()))
	require.NoError(t, err)
	assert.Equal(t, Config{ProjectID: "vpn-project", Zone: "europe-west1-b", InstanceName: "vpn-gateway"}, conf)
}

func TestLoadConfig_MissingSingleKey(t *testing.T) {
	for _, key := range []string{EnvProjectID, EnvZone, EnvInstanceName} {
		t.Run(key, func(t *testing.T) {
			env := fullEnv()
			delete(env, key)

			conf, err := LoadConfig(lookupFrom(env))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingConfig))
			assert.Equal(t, Config{}, conf)

			var missing *MissingConfigError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, []string{key}, missing.Keys)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadConfig_BlankValuesAreMissing(t *testing.T) {
	env := fullEnv()
	env[EnvZone] = "   "
	env[EnvInstanceName] = ""

	_, err := LoadConfig(lookupFrom(env))

	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{EnvZone, EnvInstanceName}, missing.Keys)
	assert.Equal(t, "missing required environment variables: ZONE, INSTANCE_NAME", err.Error())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvProjectID, "p")
	t.Setenv(EnvZone, "z")
	t.Setenv(EnvInstanceName, "i")

	conf, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "i", conf.InstanceName)

	t.Setenv(EnvZone, "")
	_, err = LoadConfigFromEnv()
	assert.ErrorIs(t, err, ErrMissingConfig)
}
