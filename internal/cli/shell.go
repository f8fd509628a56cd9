// SPDX-License-Identifier: EPL-2.0
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/bpanahij/virtualmic/internal/logging"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell",
		Long: `Starts an interactive shell where every line is a virtualmic
command without the leading program name, e.g.:

  > play -f voice.wav --loop
  > devices
  > config get
  > exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}
}

var shellCompleter = readline.NewPrefixCompleter(
	readline.PcItem("play",
		readline.PcItem("--file"),
		readline.PcItem("--loop"),
		readline.PcItem("--monitor"),
		readline.PcItem("--volume"),
	),
	readline.PcItem("render"),
	readline.PcItem("devices"),
	readline.PcItem("config",
		readline.PcItem("get"),
		readline.PcItem("set"),
	),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func runShell() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "virtualmic> ",
		HistoryFile:     "/tmp/virtualmic_history",
		AutoComplete:    shellCompleter,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}
	defer rl.Close()

	fmt.Println("virtualmic interactive shell. Type 'help' for commands, 'exit' to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			return nil
		case "help":
			line = "--help"
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}

		if err := dispatch(args); err != nil {
			logging.Errorf("%v", err)
		}
	}
}

// dispatch runs one shell line through a fresh command tree so flag
// state never leaks between lines.
func dispatch(args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}
