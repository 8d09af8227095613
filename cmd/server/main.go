// Package main is the entry point for the equipment forge
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/cmd/server/client"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath string
	envFiles   []string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-equipment",
	Short: "RPG equipment forge",
	Long: `rpg-equipment rolls randomized equipment with budget-constrained enchantments.
It can forge items locally, serve them over gRPC, or talk to a running server.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (optional)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, ".env files to read")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(historyCheckCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
