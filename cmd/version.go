package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X revtrain/cmd.version=...".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the revtrain version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("revtrain %s\n", version)
	},
}
