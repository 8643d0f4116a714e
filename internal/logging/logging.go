package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It discards output until Setup
// points it at a file, because the TUI owns the terminal.
var Log = logrus.New()

func init() {
	Log.SetOutput(io.Discard)
}

// Setup directs the logger to the given file at debug level. An empty
// path leaves logging disabled.
func Setup(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	Log.SetOutput(f)
	Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
