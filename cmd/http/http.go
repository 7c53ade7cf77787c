package http

import "github.com/spf13/cobra"

func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "http",
		Aliases: []string{"api"},
		Short:   "Run the JSON API",
		Long:    "Run the salon JSON API with its notification workers.",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
