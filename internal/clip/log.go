package clip

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

const previewLen = 120

// logText logs a completed transfer at DEBUG with its size and a preview of
// up to 120 bytes.
func logText(l *slog.Logger, event, text string) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	preview := text
	if len(text) > previewLen {
		n := previewLen
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		preview = text[:n] + "…"
	}
	l.Debug(event, "size_bytes", len(text), "preview", preview)
}
