package larreco

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets up the standard logrus logger used by the commands.
// level is one of panic, fatal, error, warn, info, debug or trace.
func ConfigureLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	logrus.SetLevel(lvl)
	return nil
}
