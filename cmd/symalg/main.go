// Program symalg is a command line interface to the symbolic algebra
// packages. Without a subcommand it starts an interactive session.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/terms"
)

// Version is filled in at link time.
var Version string

var rootCmd = &cobra.Command{
	Use:   "symalg",
	Short: "Explore symbolic algebra.",
	Long: `An interactive and scriptable front end to a symbolic algebra
	rewriting core. Expressions are normalized by rule tables as they
	are read.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Println("symalg", version())
			return
		}
		repl(cmd)
	},
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log rule firings and normalizer passes")
	rootCmd.PersistentFlags().String("format", "default", "output format: default, latex, parse or full")
	rootCmd.PersistentFlags().Uint("passes", terms.MaxPasses, "maximum normalizer passes per expression")
}

// GetFlag reads a boolean flag, exiting on failure.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetString reads a string flag, exiting on failure.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetUint reads an unsigned flag, exiting on failure.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// sessionFor builds a session configured by the persistent flags.
func sessionFor(cmd *cobra.Command) *session {
	f, err := factor.ParseFormat(GetString(cmd, "format"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return newSession(f, int(GetUint(cmd, "passes")), os.Stdout)
}
