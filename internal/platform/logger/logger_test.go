package logger_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/package_pricing/internal/platform/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(log.New(&buf, "", 0))

	l.LogInfo("quote for %s", "pkg-1")
	l.LogWarn("cache miss")
	l.LogErrorf("save failed: %v", "boom")

	assert.Equal(t, "[Info]: quote for pkg-1\n[Warn]: cache miss\n[Error]: save failed: boom\n", buf.String())
}
