package cliconfig

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, "warn")

	l.Info("quiet")
	l.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"chatty", ""} {
		var buf bytes.Buffer
		l := Logger(&buf, level)

		l.Debug("hidden")
		l.Info("shown")

		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Errorf("level %q: unexpected output: %q", level, buf.String())
		}
	}
}
