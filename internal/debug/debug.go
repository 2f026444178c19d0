// Package debug provides optional file-based trace logging.
//
// When the TKVIEW_DEBUG environment variable is set to a file path, trace
// messages are appended to that file. Otherwise logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	once    sync.Once
	mu      sync.Mutex
	logFile *os.File
)

// setup opens the trace file named by TKVIEW_DEBUG. Called lazily on the
// first Log so importing the package costs nothing when tracing is off.
func setup() {
	path := os.Getenv("TKVIEW_DEBUG")
	if path == "" {
		return
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	logFile = f
}

// Log writes a timestamped message to the trace file. It is a no-op when
// TKVIEW_DEBUG is unset.
func Log(format string, args ...any) {
	once.Do(setup)

	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Close closes the trace file if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
