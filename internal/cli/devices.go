package cli

import (
	"fmt"

	"github.com/gen2brain/malgo"
	"github.com/spf13/cobra"
)

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List playback and capture devices",
		Long: `Devices enumerates the audio devices the system exposes. After play
has started, the virtual microphone shows up in the capture list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
			if err != nil {
				return fmt.Errorf("init audio context: %w", err)
			}
			defer func() {
				_ = ctx.Uninit()
				ctx.Free()
			}()

			playback, err := ctx.Devices(malgo.Playback)
			if err != nil {
				return fmt.Errorf("list playback devices: %w", err)
			}
			capture, err := ctx.Devices(malgo.Capture)
			if err != nil {
				return fmt.Errorf("list capture devices: %w", err)
			}

			fmt.Println("Playback devices:")
			for i, info := range playback {
				fmt.Printf("  %d: %s\n", i, info.Name())
			}
			fmt.Println("Capture devices:")
			for i, info := range capture {
				fmt.Printf("  %d: %s\n", i, info.Name())
			}
			return nil
		},
	}
}
