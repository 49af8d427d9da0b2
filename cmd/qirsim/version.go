package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." +
		versionMinorColor.Sprint("1") + "." +
		versionPatchColor.Sprint("0")
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the qirsim version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qirsim %s\n", Version)
	},
}
