// Package cli wires the virtualmic commands together. It is the only
// place where configuration, device management, decoding and playback
// meet; everything else stays independently testable.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bpanahij/virtualmic/internal/config"
	"github.com/bpanahij/virtualmic/internal/logging"
)

var (
	cfgPath   string
	verbosity int
)

// NewRootCmd creates the root CLI command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "virtualmic",
		Short: "Create a virtual microphone and pipe audio files to it",
		Long: `virtualmic creates a virtual microphone on a PulseAudio or PipeWire
audio server and streams a decoded audio file into it, so that other
applications see the file as live microphone input.

Supported formats: wav, mp3, ogg, aiff, flac.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to the config file")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log detail (-v, -vv)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetVerbosity(verbosity)
	}

	cmd.AddCommand(
		newPlayCmd(),
		newRenderCmd(),
		newDevicesCmd(),
		newConfigCmd(),
		newShellCmd(),
	)

	return cmd
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command, apply func(cfg *config.Config)) (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if apply != nil {
		apply(&cfg)
	}
	return config.Normalize(cfg)
}
