package audio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoExplicitSound is returned when a score opens with sounds that
// carry no octave or duration of their own.
var ErrNoExplicitSound = errors.New("expected first note to have an octave and duration")

// Sound is a single note to play: a pitch class, an octave, a duration
// and an optional list of per-voice effects. Modified marks a sound
// whose octave and duration were inherited from a prior note, so it
// cannot serve as a default for later naked notes.
type Sound struct {
	Note     Note
	Octave   Octave
	Duration Duration
	Effects  []Effect
	Modified bool
}

func (s Sound) String() string {
	if s.Modified {
		return s.Note.String()
	}
	return fmt.Sprintf("%s_%d_%s", s.Note, (int(s.Octave)+48)/12, strings.TrimPrefix(s.Duration.String(), "d"))
}

// Chord is an ordered stack of sounds that begin simultaneously.
// A single note is a chord of length one.
type Chord []Sound

// Add appends a sound to the chord. A naked sound inherits its octave
// and duration from the last non-modified sound already in the chord,
// searched right to left, and stays marked as modified.
func (c Chord) Add(s Sound) Chord {
	if s.Modified {
		for i := len(c) - 1; i >= 0; i-- {
			if !c[i].Modified {
				s.Octave = c[i].Octave
				s.Duration = c[i].Duration
				break
			}
		}
	}
	out := make(Chord, len(c), len(c)+1)
	copy(out, c)
	return append(out, s)
}

func (c Chord) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// NormalizeScore resolves inherited octaves and durations across an
// instrument's score. Naked sounds default first to an explicit sound
// in their own chord (searched right to left), then to the most recent
// explicit sound in earlier chords. The first chord must contain at
// least one explicit sound.
func NormalizeScore(score []Chord) ([]Chord, error) {
	var defOctave Octave
	var defDuration Duration
	haveDefault := false

	out := make([]Chord, len(score))
	for ci, chord := range score {
		nc := make(Chord, len(chord))
		copy(nc, chord)

		for i := range nc {
			if !nc[i].Modified {
				continue
			}
			resolved := false
			for j := len(nc) - 1; j >= 0; j-- {
				if !nc[j].Modified {
					nc[i].Octave = nc[j].Octave
					nc[i].Duration = nc[j].Duration
					resolved = true
					break
				}
			}
			if !resolved {
				if !haveDefault {
					return nil, ErrNoExplicitSound
				}
				nc[i].Octave = defOctave
				nc[i].Duration = defDuration
			}
		}

		for j := len(nc) - 1; j >= 0; j-- {
			if !nc[j].Modified {
				defOctave = nc[j].Octave
				defDuration = nc[j].Duration
				haveDefault = true
				break
			}
		}
		out[ci] = nc
	}
	return out, nil
}
