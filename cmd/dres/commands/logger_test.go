package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	resetViper(t)

	var out bytes.Buffer

	logger := NewLogger(&out)
	logger.Debug("hidden", nil)
	logger.Warn("rate limited", map[string]interface{}{"route": "GetMessage", "attempt": 2})

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "rate limited")
	assert.Contains(t, out.String(), "attempt=2 route=GetMessage")

	viper.Set("verbose", true)
	out.Reset()

	NewLogger(&out).Debug("shown", nil)
	assert.Contains(t, out.String(), "shown")
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	args := flatten(map[string]interface{}{"b": 2, "a": 1})
	assert.Equal(t, []interface{}{"a", 1, "b", 2}, args)
}
