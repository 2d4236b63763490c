package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upFrontEnd/good-mood-generator/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the goodmood version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("goodmood " + version.String())
	},
}
