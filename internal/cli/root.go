// Package cli provides the command-line interface for huewheel.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
}

// NewRootCmd builds the huewheel command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "huewheel",
		Short: "A colour harmony palette generator",
		Long: `huewheel computes colour harmonies from a single base hue and prints them as
CSS colour strings in the OKLCH or HSL colour space.

Pick a base hue, a chroma (OKLCH) or saturation (HSL), and any of the
complementary, analogous, triadic, split-complementary and tetradic harmonies.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default: .huewheel.yaml in the working or home directory)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable coloured output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPaletteCmd(g))
	rootCmd.AddCommand(newHarmoniesCmd(g))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
