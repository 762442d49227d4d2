package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/winclip/internal/clip"
	"go.klb.dev/winclip/internal/codepage"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the clipboard text to stdout (like pbpaste)",
		Long: `Reads the CF_TEXT content of the clipboard and writes it to stdout.

If the clipboard holds no text, nothing is printed (exit 0). The bytes are
printed unchanged unless --codepage names the code page to decode from:

  winclip paste --codepage windows-1252`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runPaste(cmd.OutOrStdout(), v) },
	}

	f := cmd.Flags()
	f.String("codepage", codepage.Raw, "code page of the clipboard bytes (raw = no conversion)")
	f.BoolP("newline", "n", false, "append a trailing newline")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runPaste(w io.Writer, v *viper.Viper) error {
	setupLogging(v)

	cb, err := openClipboard()
	if err != nil {
		return err
	}

	text, err := cb.ReadText()
	if errors.Is(err, clip.ErrNoClipboardData) {
		// pbpaste behaviour: nothing to print is not an error.
		slog.Info("clipboard holds no text")
		return nil
	}
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}

	out, err := codepage.Decode(v.GetString("codepage"), []byte(text))
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if v.GetBool("newline") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
