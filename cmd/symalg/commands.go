package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"zappem.net/pub/io/lined"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/terms"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive session.",
	Long: `Read lines of input and print each expression normalized.
	"name := expr" assigns, "name :=" unassigns, "list" shows the
	assignments, "classify expr" shows the classes of an expression,
	"subst expr, target, replacement" substitutes and "exit" quits.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl(cmd)
	},
}

// repl runs an interactive session on stdin. A terminal gets line
// editing and a prompt, anything else is read line by line.
func repl(cmd *cobra.Command) {
	s := sessionFor(cmd)
	var r lineReader
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Printf("symalg %s\n\n", version())
		r = lined.NewReader()
	} else {
		r = newScanner(os.Stdin)
	}
	if err := s.run(r, interactive); err != nil {
		log.Fatalf("unable to recover: %v", err)
	}
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] line...",
	Short: "evaluate lines of input in order.",
	Long: `Evaluate each argument as a line of an interactive session, so
	earlier assignments are seen by later lines.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := sessionFor(cmd)
		for _, line := range args {
			if err := s.exec(line); err != nil && err != errExit {
				fmt.Fprintf(os.Stderr, "%q: %v\n", line, err)
				os.Exit(1)
			}
		}
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] expression...",
	Short: "show the classes of expressions.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := sessionFor(cmd)
		for _, text := range args {
			if err := s.classify(text); err != nil {
				fmt.Fprintf(os.Stderr, "%q: %v\n", text, err)
				os.Exit(1)
			}
		}
	},
}

var varsCmd = &cobra.Command{
	Use:   "vars [flags] expression...",
	Short: "list the symbols known after reading expressions.",
	Run: func(cmd *cobra.Command, args []string) {
		s := sessionFor(cmd)
		for _, text := range args {
			if _, err := s.parser.Parse(text); err != nil {
				fmt.Fprintf(os.Stderr, "%q: %v\n", text, err)
				os.Exit(1)
			}
		}
		for _, label := range s.scope.Labels() {
			fmt.Println("", label)
		}
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules [flags] [kind...]",
	Short: "print the rewrite rules of operation kinds.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range selectKinds(args) {
			if rs := terms.Rules(k); rs != nil {
				fmt.Println(rs)
			}
		}
	},
}

// selectKinds returns the kinds named in args, or every kind when
// args is empty.
func selectKinds(args []string) []factor.Kind {
	if len(args) == 0 {
		return factor.Kinds()
	}
	var ks []factor.Kind
	for _, k := range factor.Kinds() {
		for _, a := range args {
			if strings.EqualFold(a, k.String()) {
				ks = append(ks, k)
			}
		}
	}
	return ks
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(rulesCmd)
}
