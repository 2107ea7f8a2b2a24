package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"go.uber.org/zap"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", "json", &buf)
	logger.Info("command executed", zap.String("command", "edit"))
	logger.Debug("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	be.Equal(t, len(lines), 1)

	var entry map[string]any
	be.Err(t, json.Unmarshal([]byte(lines[0]), &entry), nil)
	be.Equal(t, entry["level"], any("INFO"))
	be.Equal(t, entry["msg"], any("command executed"))
	be.Equal(t, entry["command"], any("edit"))
	_, ok := entry["timestamp"]
	be.True(t, ok)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("DEBUG", "console", &buf)
	logger.Debug("visible")
	be.True(t, strings.Contains(buf.String(), "visible"))

	buf.Reset()
	logger = NewWithWriter("error", "console", &buf)
	logger.Info("hidden")
	be.Equal(t, buf.Len(), 0)

	buf.Reset()
	logger = NewWithWriter("bogus", "console", &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	be.True(t, !strings.Contains(buf.String(), "hidden"))
	be.True(t, strings.Contains(buf.String(), "shown"))
}
