package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the testlens version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the testlens binary.",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("testlens %s\n", Version)
	},
}
