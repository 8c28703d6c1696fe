package main

import (
	"fmt"

	"github.com/spf13/cobra"

	hform "github.com/hsmyc/hform-validator"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hform version %s\n", hform.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
