package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/winclip/internal/codepage"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy [text...]",
		Short: "Copy text to the clipboard (like pbcopy)",
		Long: `Places text on the clipboard as CF_TEXT, replacing its content.

Arguments are joined with single spaces. Without arguments stdin is read to
EOF. Text is stored as-is unless --codepage names the code page to encode to;
an embedded NUL byte ends the text for every reader.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(args, cmd.InOrStdin(), v)
		},
	}

	f := cmd.Flags()
	f.String("codepage", codepage.Raw, "code page to encode the text to (raw = no conversion)")
	f.Bool("trim-newline", false, "drop one trailing newline from stdin")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy(args []string, stdin io.Reader, v *viper.Viper) error {
	setupLogging(v)

	text, err := readInput(args, stdin, v.GetBool("trim-newline"))
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	text, err = codepage.Encode(v.GetString("codepage"), text)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}

	cb, err := openClipboard()
	if err != nil {
		return err
	}
	if err := cb.WriteText(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	slog.Info("copied to clipboard", "size_bytes", len(text))
	return nil
}
