package matvcol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_LevelsAndPrefix(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo("matvcol", false, &out, &errOut)

	logger.Debugf("hidden %d", 1)
	logger.Infof("hello %s", "world")
	logger.Warnf("careful")
	logger.Errorf("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[matvcol] INFO: hello world")
	assert.Contains(t, errOut.String(), "[matvcol] WARN: careful")
	assert.Contains(t, errOut.String(), "[matvcol] ERROR: broken")

	logger.SetDebug(true)
	assert.True(t, logger.DebugEnabled())
	logger.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "DEBUG: shown 2")
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app := NewApp()
	assert.False(t, app.Logger().DebugEnabled())

	app.UseModules(LoggingModule{Prefix: "test", Debug: true})
	assert.True(t, app.Logger().DebugEnabled())
}

func TestDefaultLogger_NoPrefix(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLoggerTo("", true, &out, &errOut)

	logger.Debugf("x=%d", 3)
	logger.Warnf("w")

	assert.Contains(t, out.String(), " DEBUG: x=3")
	assert.NotContains(t, out.String(), "[")
	assert.Contains(t, errOut.String(), " WARN: w")
}
