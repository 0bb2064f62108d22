package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quizdeck", versionLabel(version))
	},
}

// versionLabel canonicalizes release versions and leaves anything else,
// such as development builds, untouched.
func versionLabel(v string) string {
	if !semver.IsValid(v) {
		if semver.IsValid("v" + v) {
			return semver.Canonical("v" + v)
		}
		return v
	}
	return semver.Canonical(v)
}
