package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/yosapark/yomogi_backend/cmd/http"
	systemcmd "github.com/yosapark/yomogi_backend/cmd/system"
	"github.com/yosapark/yomogi_backend/pkg/constants"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Backend for the yomogi steam salon: body-type diagnosis, bookings and contact.",
	Long: `yomogi serves the salon site's JSON API. It scores the 30-question
body-type diagnosis, publishes the blend and course catalog, takes bookings
and contact messages, and sends the matching confirmation email and SMS.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
