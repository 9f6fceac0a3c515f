package bootstrap

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/tof-flappy/constant"
)

// SetupLogging routes the standard logger to a rotated file under the log
// directory when debug is set, and discards it otherwise so the terminal
// frame is never disturbed. The returned file is nil when logging is off.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(constant.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(constant.LogDir, constant.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > constant.MaxLogSize {
		rotated := filepath.Join(constant.LogDir,
			fmt.Sprintf("flappy_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
