package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bpanahij/virtualmic"
	"github.com/bpanahij/virtualmic/formats/wav"
	"github.com/bpanahij/virtualmic/internal/config"
	"github.com/bpanahij/virtualmic/internal/logging"
)

func newRenderCmd() *cobra.Command {
	var (
		file   string
		out    string
		volume float64
		rate   int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the microphone stream to a WAV file instead of a device",
		Long: `Render runs the exact processing pipeline play uses (mono mixdown,
resampling, volume) and writes the result to a 16-bit WAV file. Useful to
audition what the virtual microphone would carry without an audio server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("volume") {
					cfg.Volume = volume
				}
				if cmd.Flags().Changed("rate") {
					cfg.Rate = rate
				}
			})
			if err != nil {
				return err
			}

			return runRender(file, out, cfg)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "audio file to render")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output WAV path")
	cmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "volume multiplier (0.0 - 2.0)")
	cmd.Flags().IntVar(&rate, "rate", config.DefaultRate, "output sample rate")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(file, out string, cfg config.Config) error {
	src, err := virtualmic.Open(file)
	if err != nil {
		return err
	}
	stream := virtualmic.NewPipeline(src, cfg.Rate, cfg.Volume)
	defer stream.Close()

	pcm16, err := virtualmic.CollectPCM16(stream, 4096)
	if err != nil {
		return err
	}

	outFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer outFile.Close()

	if err := wav.WriteWAV16(outFile, cfg.Rate, pcm16); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logging.Infof("wrote %s (%d samples at %d Hz)", out, len(pcm16), cfg.Rate)
	return nil
}
