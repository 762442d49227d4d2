package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/winclip/internal/hostver"
)

// Replaced in tests.
var (
	locateHost       = hostver.Locate
	queryHostVersion = func(path string) (hostver.Version, error) {
		return hostver.Query(path, hostver.WithLogger(slog.Default()))
	}
)

func newHostVersionCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "host-version",
		Short: "Print the API version exported by a host application",
		Long: `Loads the host application module and calls its SUGetAPIVersion export.

The module is --path when given. Otherwise it is found from --support-dir:
  Windows  <support-dir>\SketchUp.exe
  macOS    <support-dir>/../../../../Contents/MacOS/SketchUp (support-dir = Tools)`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runHostVersion(cmd.OutOrStdout(), v) },
	}

	f := cmd.Flags()
	f.String("path", "", "path of the host executable module")
	f.String("support-dir", "", "host support directory used to find the module")
	f.Bool("json", false, "output JSON")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runHostVersion(w io.Writer, v *viper.Viper) error {
	setupLogging(v)

	path, err := locateHost(v.GetString("path"), v.GetString("support-dir"))
	if err != nil {
		return err
	}
	ver, err := queryHostVersion(path)
	if err != nil {
		return err
	}

	if v.GetBool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Path string `json:"path"`
			hostver.Version
		}{path, ver})
	}
	_, err = fmt.Fprintln(w, ver)
	return err
}
