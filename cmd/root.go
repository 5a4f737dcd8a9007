// Package cmd wires the soundbytes commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/eval"
	"github.com/petar-dambovaliev/soundbytes/internal/lexer"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
	"github.com/petar-dambovaliev/soundbytes/internal/parser"
)

var rootCmd = &cobra.Command{
	Use:   "soundbytes <file>",
	Short: "A music programming language",
	Long: `soundbytes runs programs that describe musical pieces and renders
them to the default audio output in real time.

A program is a sequence of expressions: tempo(120); play(c_4_4);`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFile,
}

// Execute runs the root command and exits with status 1 if it returns an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	lex := lexer.New(string(source))
	p := parser.New(lex)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, "parse error: "+msg)
		}
		return nil
	}

	env := object.NewEnvironment()
	builder := audio.NewSongBuilder()

	evaluated := eval.Eval(program, env, builder)
	if evaluated != nil && evaluated.Type() == object.ErrorObj {
		fmt.Fprintln(os.Stderr, evaluated.Inspect())
	}
	return nil
}
