// Package cli wires the command line to the launcher pipeline.
package cli

import (
	"fmt"
	"os"

	"github.com/dtomvan/dmenu-drun/internal/version"
	"github.com/dtomvan/dmenu-drun/pkg/config"
	"github.com/dtomvan/dmenu-drun/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options are the flag values for one run.
type options struct {
	hidePath     bool
	hideDesktop  bool
	launcherName string
}

// Run executes the root command and returns the process exit status.
func Run(args []string) int {
	status := 0

	root := newRootCmd(&status)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if status == 0 {
			status = 1
		}
	}
	return status
}

func newRootCmd(status *int) *cobra.Command {
	var (
		opts      options
		verbosity int
	)

	rootCmd := &cobra.Command{
		Use:   "dmenu-drun",
		Short: "Launch executables and desktop applications through a menu selector",
		Long: `dmenu-drun discovers executables on $PATH and desktop application
shortcuts, caches what it found, and hands the menu to an interactive
selector such as dmenu. The selection is launched directly, through
gtk-launch for desktop entries, or as a typed command line.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := run(opts)
			*status = s
			return err
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVarP(&opts.hidePath, "hide-path", "p", false, "Hide executables found on $PATH")
	rootCmd.Flags().BoolVarP(&opts.hideDesktop, "hide-desktop", "d", false, "Hide desktop application entries")
	rootCmd.Flags().StringVarP(&opts.launcherName, "launcher", "l", "", "Selector to use (dmenu, rofi, fzf, bemenu, fuzzel)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dmenu-drun version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the user config path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}
			fmt.Printf("Config initialized at: %s\n", config.UserConfigPath())
			return nil
		},
	}
}
