package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/petar-dambovaliev/soundbytes/internal/tui"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Play notes from the keyboard",
	Long: `Play notes interactively. The home row maps to one octave of the
synthesizer, rendered through the same engine that plays programs.`,
	Run: runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) {
	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
