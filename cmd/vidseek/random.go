package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vidseek/vidseek/internal/video"
)

var randomCmd = &cobra.Command{
	Use:   "random <url>...",
	Short: "Pick one video at random from the given URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := connect(ctx)
		if err != nil {
			return err
		}
		defer svc.Disconnect(ctx)

		collection, err := video.FromWebURLs(ctx, svc, args)
		if err != nil {
			return err
		}

		pick, err := collection.Random()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", pick.ID(), pick.Title())
		return nil
	},
}
