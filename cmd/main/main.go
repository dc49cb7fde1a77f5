package main

import (
	"github.com/spf13/cobra"
	"log"
	"phoneforward/internal/pkg/app"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "phfwd",
	Short:        "Phone number forwarding service",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(configPath)
		if err != nil {
			return err
		}
		return a.Run()
	},
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.json", "path to the config file")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
