// internal/cli/log_test.go
package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, true)

	logger.Debug("probe finished")

	assert.Contains(t, buf.String(), "probe finished")
}

func TestNewLoggerQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	logger.Debug("probe finished")
	logger.Info("still quiet")

	assert.Empty(t, buf.String(), "without --verbose only warnings and errors should surface")
}
