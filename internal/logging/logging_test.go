package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"studyplan/internal/logging"
)

func TestNew_DisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, false)
	log.Warn("should not appear", zap.String("k", "v"))
	_ = log.Sync()

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNew_DebugWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, true)
	log.Debug("loaded tasks", zap.Int("count", 3))
	_ = log.Sync()

	out := buf.String()
	for _, want := range []string{"DEBUG", "studyplan", "loaded tasks", `"count": 3`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
}
