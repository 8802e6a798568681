// Package main provides the freshfetch command-line tool: it gathers facts
// about the running system and prints them next to a distribution logo,
// rendered through user-overridable Lua templates.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"freshfetch/ascii"
	"freshfetch/config"
	"freshfetch/errors"
	"freshfetch/layout"
	"freshfetch/logging"
	"freshfetch/render"
	"freshfetch/sysinfo"
)

// gatherFunc collects the system facts.
type gatherFunc func(opts sysinfo.Options) (*sysinfo.Facts, error)

func main() {
	os.Exit(execute(newRootCmd(os.Stdout, sysinfo.Gather), os.Stdout))
}

// execute runs cmd and is the single place errors are reported. It returns
// the process exit code.
func execute(cmd *cobra.Command, out io.Writer) int {
	if err := cmd.Execute(); err != nil {
		errors.Report(out, err)
		return 1
	}
	return 0
}

func newRootCmd(out io.Writer, gather gatherFunc) *cobra.Command {
	var (
		verbosity int
		logo      string
		configDir string
		listLogos bool
	)

	rootCmd := &cobra.Command{
		Use:   "freshfetch",
		Short: "Print system information next to a logo",
		Long: `freshfetch prints facts about the running system next to a distribution logo.

The output is produced by Lua templates. Place info.lua, art.lua or layout.lua
in the configuration directory to replace the built-in ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listLogos {
				for _, name := range ascii.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			return run(out, gather, flagOverrides(cmd))
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVar(&logo, "logo", "", "Use the named built-in logo")
	rootCmd.Flags().StringVar(&configDir, "config-dir", "", "Directory holding freshfetch.toml and template overrides")
	rootCmd.Flags().BoolVar(&listLogos, "list-logos", false, "List the built-in logos and exit")

	return rootCmd
}

// flagOverrides collects the flags the user set, keyed for config.Load.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	keys := map[string]string{
		"verbose":    "verbosity",
		"logo":       "logo",
		"config-dir": "config_dir",
	}

	overrides := make(map[string]interface{})
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if flag == "verbose" {
			v, _ := cmd.Flags().GetCount(flag)
			overrides[key] = v
			continue
		}
		overrides[key] = f.Value.String()
	}
	return overrides
}

func run(out io.Writer, gather gatherFunc, overrides map[string]interface{}) error {
	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	logging.SetupLogger(cfg.Verbosity)
	log.Debug().Str("config_dir", cfg.ConfigDir).Msg("Configuration loaded")

	facts, err := gather(sysinfo.Options{ShellVersions: cfg.Shells})
	if err != nil {
		return err
	}

	l := layout.New(facts, sysinfo.NewTerminal(os.LookupEnv), render.New(), layout.Options{
		InfoPath:   cfg.InfoPath(),
		ArtPath:    cfg.ArtPath(),
		LayoutPath: cfg.LayoutPath(),
		Logo:       cfg.Logo,
	})
	text, err := l.Run()
	if err != nil {
		return err
	}

	fmt.Fprint(out, text)
	return nil
}
