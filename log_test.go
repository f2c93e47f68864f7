package larreco

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	assert.NoError(t, ConfigureLogging("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, ConfigureLogging("loud"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
