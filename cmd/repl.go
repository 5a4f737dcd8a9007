package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-dambovaliev/soundbytes/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive soundbytes session",
	Long: `Start an interactive session. Each line is evaluated as a program
against the same environment, so bindings and tempo persist:

  >> tempo(120);
  >> let a = track(c_4_4, e_4_4);
  >> play(a);`,
	Run: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	fmt.Println("soundbytes — make some noise")
	repl.Start(os.Stdin, os.Stdout)
}
