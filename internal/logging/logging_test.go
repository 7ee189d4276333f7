package logging

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Level(t *testing.T) {
	original := log.GetLevel()
	defer log.SetLevel(original)

	Setup("debug", "text")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	Setup("WARN", "json")
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	Setup("chatty", "text")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestSetup_PythonLevelNames(t *testing.T) {
	original := log.GetLevel()
	defer log.SetLevel(original)

	Setup("WARNING", "text")
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	Setup("CRITICAL", "text")
	assert.Equal(t, log.FatalLevel, log.GetLevel())

	Setup("ERROR", "text")
	assert.Equal(t, log.ErrorLevel, log.GetLevel())
}
