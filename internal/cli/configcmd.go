package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bpanahij/virtualmic/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved defaults",
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var (
		name      string
		rate      int
		volume    float64
		monitor   string
		loopFlag  string
		latencyMS int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update saved defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				cfg.Name = name
			}
			if cmd.Flags().Changed("rate") {
				cfg.Rate = rate
			}
			if cmd.Flags().Changed("volume") {
				cfg.Volume = volume
			}
			if cmd.Flags().Changed("latency-ms") {
				cfg.LatencyMS = latencyMS
			}
			if err := setBool(&cfg.Monitor, "monitor", monitor, cmd.Flags()); err != nil {
				return err
			}
			if err := setBool(&cfg.Loop, "loop", loopFlag, cmd.Flags()); err != nil {
				return err
			}

			cfg, err = config.Normalize(cfg)
			if err != nil {
				return err
			}

			if err := config.Save(cfgPath, cfg); err != nil {
				return err
			}

			fmt.Printf("saved: name=%s rate=%d volume=%.2f monitor=%t loop=%t\n",
				cfg.Name, cfg.Rate, cfg.Volume, cfg.Monitor, cfg.Loop)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", config.DefaultName, "virtual microphone name")
	cmd.Flags().IntVar(&rate, "rate", config.DefaultRate, "sample rate in Hz")
	cmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "volume multiplier (0.0 - 2.0)")
	cmd.Flags().StringVar(&monitor, "monitor", "", "true/false: play through speakers by default")
	cmd.Flags().StringVar(&loopFlag, "loop", "", "true/false: loop by default")
	cmd.Flags().IntVar(&latencyMS, "latency-ms", config.DefaultLatencyMS, "monitor loopback latency")

	return cmd
}

func setBool(dst *bool, flag, value string, fs *pflag.FlagSet) error {
	if !fs.Changed(flag) {
		return nil
	}
	switch value {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		return fmt.Errorf("--%s takes true or false, got %q", flag, value)
	}
	return nil
}
