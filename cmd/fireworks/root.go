package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
)

// options holds command line flags shared by every frontend
type options struct {
	seed           uint64
	maxFireworks   int
	eviction       string
	launchInterval time.Duration
	mute           bool
	debug          bool
	noDecor        bool

	scale         float64
	width, height int

	logFile *os.File
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&options{})
}

// buildRootCmd binds every flag to opts
func buildRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "fireworks",
		Short: "A particle fireworks show for the terminal",
		Long: "Fireworks rise and burst into fading sparks over balloons and stars.\n" +
			"Click to catch a volley, s toggles sound, space launches, c catches at the center, q quits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logFile = setupLogging(opts.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTerminal(cmd.Context(), cfg, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock")
	flags.IntVar(&opts.maxFireworks, "max-fireworks", parameter.MaxFireworks, "live firework cap, 0 is unlimited")
	flags.StringVar(&opts.eviction, "eviction", engine.EvictOldest.String(), "firework evicted at the cap: oldest or random")
	flags.DurationVar(&opts.launchInterval, "launch-interval", parameter.LaunchInterval, "periodic launch interval, 0 disables")
	flags.BoolVar(&opts.mute, "mute", false, "start with sound off")
	flags.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	flags.BoolVar(&opts.noDecor, "no-decor", false, "hide balloons, hearts, confetti and stars")

	root.Flags().Float64Var(&opts.scale, "scale", parameter.TerminalScale, "logical units per terminal pixel")

	root.AddCommand(newWindowCmd(opts))
	return root
}

// buildConfig layers flags the user set over environment and defaults
func buildConfig(cmd *cobra.Command, opts *options) (*engine.Config, error) {
	cfg := engine.LoadConfig()
	flags := cmd.Flags()

	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("max-fireworks") {
		cfg.MaxFireworks = opts.maxFireworks
	}
	if flags.Changed("eviction") {
		policy, err := engine.ParseEvictionPolicy(opts.eviction)
		if err != nil {
			return nil, err
		}
		cfg.Eviction = policy
	}
	if flags.Changed("launch-interval") {
		cfg.LaunchInterval = opts.launchInterval
	}
	if opts.mute {
		cfg.SoundEnabled = false
	}
	if flags.Changed("scale") && opts.scale <= 0 {
		return nil, fmt.Errorf("%w: scale %v must be positive", engine.ErrInvalidConfig, opts.scale)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSound starts the speaker, a failed device leaves a silent manager
func openSound() *audio.SoundManager {
	sm := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sm.Initialize(); err != nil {
		log.Printf("[AUDIO] Sound unavailable: %v", err)
	}
	return sm
}
