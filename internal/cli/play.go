package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bpanahij/virtualmic"
	"github.com/bpanahij/virtualmic/audio"
	"github.com/bpanahij/virtualmic/internal/config"
	"github.com/bpanahij/virtualmic/internal/logging"
	"github.com/bpanahij/virtualmic/internal/player"
	"github.com/bpanahij/virtualmic/internal/pulse"
)

func newPlayCmd() *cobra.Command {
	var (
		file     string
		loopFlag bool
		name     string
		volume   float64
		monitor  bool
		rate     int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Create the virtual microphone and stream a file into it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("name") {
					cfg.Name = name
				}
				if cmd.Flags().Changed("volume") {
					cfg.Volume = volume
				}
				if cmd.Flags().Changed("monitor") {
					cfg.Monitor = monitor
				}
				if cmd.Flags().Changed("loop") {
					cfg.Loop = loopFlag
				}
				if cmd.Flags().Changed("rate") {
					cfg.Rate = rate
				}
			})
			if err != nil {
				return err
			}

			return runPlay(file, cfg)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "audio file to play (wav, mp3, ogg, aiff, flac)")
	cmd.Flags().BoolVarP(&loopFlag, "loop", "l", false, "loop the audio file")
	cmd.Flags().StringVarP(&name, "name", "n", config.DefaultName, "virtual microphone name")
	cmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "volume multiplier (0.0 - 2.0)")
	cmd.Flags().BoolVarP(&monitor, "monitor", "m", false, "also play audio through the speakers")
	cmd.Flags().IntVar(&rate, "rate", config.DefaultRate, "sample rate of the virtual microphone")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runPlay(file string, cfg config.Config) error {
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("audio file not found: %s", file)
	}

	src, err := virtualmic.Open(file)
	if err != nil {
		return err
	}
	if cfg.Loop {
		src = audio.NewLooper(src, func() (audio.Source, error) {
			logging.Debugf("looping %s", file)
			return virtualmic.Open(file)
		})
	}
	stream := virtualmic.NewPipeline(src, cfg.Rate, cfg.Volume)
	defer stream.Close()

	client, err := pulse.NewClient()
	if err != nil {
		return err
	}

	mic, err := client.CreateVirtualMic(pulse.MicConfig{
		Name:      cfg.Name,
		Rate:      cfg.Rate,
		Channels:  virtualmic.MicChannels,
		Monitor:   cfg.Monitor,
		LatencyMS: cfg.LatencyMS,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mic.Teardown(); err != nil {
			logging.Warnf("device teardown incomplete: %v", err)
		}
	}()

	p, err := player.New(player.Options{
		Device:     mic.SinkName,
		Rate:       cfg.Rate,
		Channels:   virtualmic.MicChannels,
		ClientName: cfg.Name + "_player",
	})
	if err != nil {
		return err
	}
	if err := p.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Infof("virtual microphone %q is active, select it in your application", mic.SourceName)
	logging.Infof("playing %s, press Ctrl+C to stop", file)

	streamErr := p.Stream(ctx, stream)
	if streamErr != nil && ctx.Err() == nil {
		p.Kill()
		p.Close()
		return streamErr
	}

	// During shutdown pacat may already be gone; its exit status is noise.
	if err := p.Close(); err != nil && ctx.Err() == nil {
		return err
	}

	if ctx.Err() != nil {
		logging.Infof("interrupted, cleaning up")
	} else {
		logging.Infof("playback finished")
	}
	return nil
}
