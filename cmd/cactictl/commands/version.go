package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the cactictl build version, set by the build process; it is
// left as a development placeholder otherwise.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cactictl version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
