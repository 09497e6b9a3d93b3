package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	t.Cleanup(func() {
		SetDebug(false)
		Logger.SetOutput(os.Stderr)
	})

	Debug("hidden", "key", "value")
	assert.Empty(t, buf.String())

	SetDebug(true)
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	Debug("listed formulae", "count", 3)
	assert.Contains(t, buf.String(), "listed formulae")
	assert.Contains(t, buf.String(), "count=3")

	SetDebug(false)
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
}
