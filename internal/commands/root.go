package commands

import (
	"errors"
	"fmt"

	"github.com/moasq/pickmenu/internal/config"
	"github.com/moasq/pickmenu/internal/menu"
	"github.com/moasq/pickmenu/internal/terminal"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	promptFlag  string
	modeFlag    string
	fileFlag    string
	outputFlag  string
	logFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pickmenu [options...]",
	Short: "Interactive terminal selection menu",
	Long: "pickmenu shows a list of options in the terminal and prints the ones you pick.\n" +
		"Up and Down navigate, Space marks an option, Enter confirms and q exits.",
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, args, terminal.Stdio())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pickmenu %s\n", Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "prompt shown above the options (\\n for a line break)")
	rootCmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "selection mode: simple, radio or check (default check)")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "YAML menu file with prompt, mode and options")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", formatText, "result format: text, json or yaml")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(versionCmd)
}

// runMenu resolves the menu, runs it on tty and prints the result.
func runMenu(cmd *cobra.Command, args []string, tty menu.Terminal) error {
	if err := validateFormat(outputFlag); err != nil {
		return err
	}

	cfg, err := config.Resolve(config.Overrides{
		File:    fileFlag,
		Prompt:  promptFlag,
		Mode:    modeFlag,
		Options: args,
	})
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(logFileFlag)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("starting menu", "mode", cfg.Mode, "options", len(cfg.Options))
	res, err := menu.New(tty, menu.WithLogger(logger)).Run(cfg.Prompt, cfg.Options, cfg.Mode)
	if err != nil {
		logger.Error("menu aborted", "err", err)
		if errors.Is(err, terminal.ErrNotTerminal) {
			return fmt.Errorf("pickmenu needs an interactive terminal: %w", err)
		}
		return err
	}

	return writeResult(cmd.OutOrStdout(), outputFlag, res)
}
