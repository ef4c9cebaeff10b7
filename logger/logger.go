package logger

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// BracketFormatter renders every entry as a single "[LEVEL] message" line.
type BracketFormatter struct{}

func (f *BracketFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", strings.ToUpper(entry.Level.String()), entry.Message)), nil
}

// Configure points the shared logger at stderr with the bracket format.
func Configure(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&BracketFormatter{})

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
