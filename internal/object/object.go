// Package object defines the runtime values of the soundbytes
// language: integers, errors, builtins and the musical value types the
// synthesis core consumes.
package object

import (
	"fmt"
	"strings"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
)

// Type identifies an object's runtime type.
type Type string

const (
	IntegerObj    Type = "INTEGER"
	NullObj       Type = "NULL"
	ErrorObj      Type = "ERROR"
	BuiltinObj    Type = "BUILTIN"
	SoundObj      Type = "SOUND"
	SoundsObj     Type = "SOUNDS"
	ChordObj      Type = "CHORD"
	OctaveObj     Type = "OCTAVE"
	DurationObj   Type = "DURATION"
	InstrumentObj Type = "INSTRUMENT"
)

// Object is a runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer is a whole number.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return IntegerObj }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Null is the absence of a value.
type Null struct{}

func (n *Null) Type() Type      { return NullObj }
func (n *Null) Inspect() string { return "null" }

// Error carries a user-facing evaluation error.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ErrorObj }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// BuiltinFunction is the signature of a core-owned builtin. The song
// builder threads tempo state through calls while a program evaluates.
type BuiltinFunction func(b *audio.SongBuilder, args ...Object) Object

// Builtin wraps a core-owned function.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() Type      { return BuiltinObj }
func (b *Builtin) Inspect() string { return "builtin function" }

// Sound is a single note value.
type Sound struct {
	Value audio.Sound
}

func (s *Sound) Type() Type      { return SoundObj }
func (s *Sound) Inspect() string { return s.Value.String() }

// Sounds is an ordered sequence of notes, played one after another.
type Sounds struct {
	Value []audio.Sound
}

func (s *Sounds) Type() Type { return SoundsObj }
func (s *Sounds) Inspect() string {
	parts := make([]string, len(s.Value))
	for i, snd := range s.Value {
		parts[i] = snd.String()
	}
	return strings.Join(parts, ", ")
}

// Chord is a stack of notes that play simultaneously.
type Chord struct {
	Value audio.Chord
}

func (c *Chord) Type() Type      { return ChordObj }
func (c *Chord) Inspect() string { return c.Value.String() }

// Octave is a bare octave literal such as o4.
type Octave struct {
	Value audio.Octave
}

func (o *Octave) Type() Type      { return OctaveObj }
func (o *Octave) Inspect() string { return o.Value.String() }

// Duration is a bare duration literal such as d8*.
type Duration struct {
	Value audio.Duration
}

func (d *Duration) Type() Type      { return DurationObj }
func (d *Duration) Inspect() string { return d.Value.String() }

// Instrument wraps a synth ready to be scheduled into a song.
type Instrument struct {
	Value *audio.Synth
}

func (i *Instrument) Type() Type      { return InstrumentObj }
func (i *Instrument) Inspect() string { return "instrument" }
