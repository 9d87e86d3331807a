package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goshell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goshell v%s\n", version.Version)
		fmt.Println("Half-Cylinder Concrete Shell Sizing Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
