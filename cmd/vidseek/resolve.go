package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vidseek/vidseek/internal/video"
	"golang.org/x/sync/errgroup"
)

// The library itself is strictly synchronous; fanning out over many URLs is
// the caller's business, and this command is that caller.
var resolveCmd = &cobra.Command{
	Use:   "resolve <url>...",
	Short: "Resolve many URLs to videos concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := connect(ctx)
		if err != nil {
			return err
		}
		defer svc.Disconnect(ctx)

		videos := make([]video.Video, len(args))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(4)
		for i, url := range args {
			g.Go(func() error {
				v, err := video.FromWebURL(gctx, svc, url)
				if err != nil {
					return err
				}
				videos[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, v := range videos {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", v.ID(), v.Title())
		}
		return nil
	},
}
