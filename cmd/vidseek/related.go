package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vidseek/vidseek/internal/video"
)

var relatedCmd = &cobra.Command{
	Use:   "related <url>",
	Short: "List videos related to the one at the given URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := connect(ctx)
		if err != nil {
			return err
		}
		defer svc.Disconnect(ctx)

		v, err := video.FromWebURL(ctx, svc, args[0])
		if err != nil {
			return err
		}

		related, err := v.Related(ctx)
		if err != nil {
			return err
		}

		for i, rv := range related.Videos() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s  %-8s  %s\n", i, rv.ID(), time.Duration(rv.Duration())*time.Second, rv.Title())
		}
		return nil
	},
}
