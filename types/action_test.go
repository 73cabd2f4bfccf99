package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	a, err := ParseAction("stop")
	require.NoError(t, err)
	assert.Equal(t, ActionStop, a)

	a, err = ParseAction("start")
	require.NoError(t, err)
	assert.Equal(t, ActionStart, a)

	_, err = ParseAction("reboot")
	assert.Error(t, err)
}

func TestActionWords(t *testing.T) {
	assert.Equal(t, "stopping", ActionStop.Gerund())
	assert.Equal(t, "starting", ActionStart.Gerund())
	assert.Equal(t, "stopped", ActionStop.PastTense())
	assert.Equal(t, "started", ActionStart.PastTense())
	assert.Equal(t, "stopped", ActionStop.TargetState())
	assert.Equal(t, "running", ActionStart.TargetState())
}
