package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/window"
)

func newWindowCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run the show in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}

			sound := openSound()
			defer sound.Cleanup()

			return window.Run(cfg, sound, !opts.noDecor, opts.width, opts.height)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", parameter.WindowWidth, "window width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", parameter.WindowHeight, "window height in pixels")
	return cmd
}
