// Package tui implements the live keyboard interface.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
)

const maxHistory = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// keyNotes maps the home row to one octave of pitches.
var keyNotes = map[string]audio.Note{
	"a": audio.C,
	"w": audio.CSharp,
	"s": audio.D,
	"e": audio.DSharp,
	"d": audio.E,
	"f": audio.F,
	"t": audio.FSharp,
	"g": audio.G,
	"y": audio.GSharp,
	"h": audio.A,
	"u": audio.ASharp,
	"j": audio.B,
}

// Model is the bubbletea model for the live keyboard.
type Model struct {
	octave  audio.Octave
	history []string
	err     error
}

// NewModel returns a live keyboard starting at octave four.
func NewModel() Model {
	return Model{octave: audio.Four}
}

func (m Model) Init() tea.Cmd {
	return nil
}

type playedMsg struct {
	label string
	err   error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case playedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.history = append(m.history, msg.label)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.octave < audio.Eight {
				m.octave += 12
			}
			return m, nil
		case "-", "_":
			if m.octave > audio.One {
				m.octave -= 12
			}
			return m, nil
		}
		if note, ok := keyNotes[key]; ok {
			return m, playNote(note, m.octave)
		}
	}
	return m, nil
}

// playNote schedules a single eighth note on the synthesis core.
func playNote(note audio.Note, octave audio.Octave) tea.Cmd {
	return func() tea.Msg {
		sound := audio.Sound{Note: note, Octave: octave, Duration: audio.Eight}
		synth := audio.NewSynth(audio.NewOptions(), []audio.Chord{{sound}})

		song := &audio.Song{
			StartTempo:  120,
			Instruments: []audio.Instrument{synth},
		}

		for ev := range audio.NewPlayer().Spawn(song) {
			switch ev.Kind {
			case audio.EndOfSong:
				return playedMsg{label: sound.String()}
			case audio.BuildStream:
				return playedMsg{err: ev.Err}
			}
		}
		return playedMsg{label: sound.String()}
	}
}

func (m Model) View() string {
	s := titleStyle.Render("SOUNDBYTES - Live Keyboard") + "\n\n"
	s += fmt.Sprintf("Octave: o%d (use +/- to shift)\n\n", (int(m.octave)+48)/12)

	s += "Played: "
	for _, n := range m.history {
		s += noteStyle.Render(n) + " "
	}
	s += "\n"

	if m.err != nil {
		s += "\n" + errStyle.Render(fmt.Sprintf("audio error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("a-j: white keys • w e t y u: black keys • +/-: octave • q: quit")
	return s
}
