package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped on release builds:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/styler
//
// go-install builds fall back to the module version recorded in the
// binary's build info.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the styler version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "styler %s\n", resolveVersion())
	},
}

// resolveVersion prefers the stamped version, then the module version
// from build info, annotated with the vcs revision when embedded.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	v := version
	if mv := info.Main.Version; mv != "" && mv != "(devel)" {
		v = mv
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 8 {
			return v + " (" + s.Value[:8] + ")"
		}
	}
	return v
}
