package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vidseek/vidseek/internal/video"
)

var infoCmd = &cobra.Command{
	Use:   "info <url>",
	Short: "Show metadata for the video at the given URL",
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

		fmt.Fprintf(cmd.OutOrStdout(), "id:          %s\n", v.ID())
		fmt.Fprintf(cmd.OutOrStdout(), "title:       %s\n", v.Title())
		fmt.Fprintf(cmd.OutOrStdout(), "duration:    %s\n", time.Duration(v.Duration())*time.Second)
		fmt.Fprintf(cmd.OutOrStdout(), "description: %s\n", v.Description())
		return nil
	},
}
