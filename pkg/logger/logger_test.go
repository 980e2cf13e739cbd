package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_ParsesLevel(t *testing.T) {
	log := InitLogger("debug", true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestInitLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := InitLogger("nonsense", true)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestGetLogger_ReturnsGlobal(t *testing.T) {
	log := InitLogger("info", false)
	assert.Same(t, log, GetLogger())
}

func TestWithService_AddsServiceField(t *testing.T) {
	InitLogger("info", false)

	entry := WithService("auction-engine")
	assert.Equal(t, "auction-engine", entry.Data["service"])
}
