package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/winclip/internal/clip"
)

func newDemoCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the clipboard text, then optionally replace it",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runDemo(cmd.OutOrStdout(), v) },
	}

	f := cmd.Flags()
	f.String("write", "", "text to place on the clipboard after reading it")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDemo(w io.Writer, v *viper.Viper) error {
	setupLogging(v)

	cb, err := openClipboard()
	if err != nil {
		return err
	}

	text, err := cb.ReadText()
	switch {
	case errors.Is(err, clip.ErrNoClipboardData):
		fmt.Fprintln(w, "Clipboard holds no text")
	case err != nil:
		return fmt.Errorf("read: %w", err)
	default:
		fmt.Fprintf(w, "Clipboard text: %s\n", text)
	}

	next := v.GetString("write")
	if next == "" {
		return nil
	}
	if err := cb.WriteText(next); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	slog.Info("clipboard replaced", "size_bytes", len(next))
	return nil
}
