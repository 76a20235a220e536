package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cdr.dev/slog"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/colorschemes/lib/log"
)

func TestWithTB(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	log.Info(ctx, "loaded catalog", slog.F("palettes", 78))
	ctx = log.Named(ctx, "export")
	log.Debug(ctx, "writing", slog.F("format", "json"))
	log.Warn(ctx, "nothing matched")
}

func TestStderr(t *testing.T) {
	t.Parallel()

	b := &bytes.Buffer{}
	ctx := log.Stderr(context.Background(), b, true)
	log.Debug(ctx, "showing palette", slog.F("id", "Office6"))
	assert.True(t, strings.Contains(b.String(), "showing palette"))
	assert.True(t, strings.Contains(b.String(), "Office6"))

	b.Reset()
	ctx = log.Leveled(ctx, slog.LevelInfo)
	log.Debug(ctx, "hidden")
	assert.String(t, "", b.String())
}
