package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", false)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("demo", "wrapping").Msg("starting")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event), "exactly one JSON event: %s", buf.String())
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "wrapping", event["demo"])
	assert.Equal(t, "starting", event["message"])
	assert.Contains(t, event, "time")
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", true)
	require.NoError(t, err)

	log.Debug().Str("mode", "clamp-to-border").Msg("wrap mode changed")
	out := buf.String()
	assert.Contains(t, out, "wrap mode changed")
	assert.Contains(t, out, "clamp-to-border")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "", false)
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String(), "empty level defaults to info")

	_, err = New(&buf, "loud", false)
	assert.Error(t, err)
}
