package main

import (
	"io"
	"log/slog"
	"strings"

	"go.klb.dev/winclip/internal/clip"
)

// textClipboard is the part of *clip.Accessor the commands use.
type textClipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// openClipboard is replaced in tests.
var openClipboard = func() (textClipboard, error) {
	return clip.Open(clip.WithLogger(slog.Default()))
}

// readInput returns args joined by spaces, or all of stdin when there are
// no args. With trimNewline a single trailing "\n" or "\r\n" is dropped.
func readInput(args []string, stdin io.Reader, trimNewline bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	s := string(data)
	if trimNewline {
		if t, ok := strings.CutSuffix(s, "\n"); ok {
			s = strings.TrimSuffix(t, "\r")
		}
	}
	return s, nil
}
