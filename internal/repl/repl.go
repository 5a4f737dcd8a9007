// Package repl implements the interactive soundbytes session.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/eval"
	"github.com/petar-dambovaliev/soundbytes/internal/lexer"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
	"github.com/petar-dambovaliev/soundbytes/internal/parser"
)

const prompt = ">> "

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// Start runs the read-eval-play loop until the input ends. Bindings
// and tempo state persist across lines.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	builder := audio.NewSongBuilder()

	for {
		fmt.Fprint(out, promptStyle.Render(prompt))
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		lex := lexer.New(line)
		p := parser.New(lex)
		program := p.ParseProgram()

		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors())
			continue
		}

		evaluated := eval.Eval(program, env, builder)
		if evaluated == nil {
			continue
		}
		if evaluated.Type() == object.ErrorObj {
			fmt.Fprintln(out, errorStyle.Render(evaluated.Inspect()))
			continue
		}
		if evaluated.Type() != object.NullObj {
			fmt.Fprintln(out, evaluated.Inspect())
		}
	}
}

func printParserErrors(out io.Writer, errors []string) {
	for _, msg := range errors {
		fmt.Fprintln(out, errorStyle.Render("parse error: "+msg))
	}
}
