package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLinesCarryServiceAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", &buf)

	l.WithRequestID("req-1").Infof("quote %s", "q1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "quote q1", line["message"])
	assert.Equal(t, "swapproxy", line["service"])
	assert.Equal(t, "prod", line["env"])
	assert.Equal(t, "req-1", line["request_id"])
}

func TestProdDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("prod", &buf).Debugf("noise")
	assert.Zero(t, buf.Len())

	NewWithWriter("dev", &buf).Debugf("detail")
	assert.Contains(t, buf.String(), "detail")
}

func TestEmptyRequestIDIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", &buf)
	assert.Same(t, l, l.WithRequestID(""))
}
