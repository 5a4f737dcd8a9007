package eval

import (
	"strings"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
)

// musicalObject resolves the musical literal identifiers: a bare pitch
// (c, f#, x for a rest), an octave (o1..o8), a duration (d4, d8*) or a
// composite note (c#_4_16) whose pieces resolve as if each were its
// own identifier.
func musicalObject(name string) (object.Object, bool) {
	if strings.Contains(name, "_") {
		return compositeSound(name)
	}
	if n, ok := pitch(name); ok {
		return &object.Sound{Value: audio.Sound{Note: n, Modified: true}}, true
	}
	if o, ok := octaveLiteral(name); ok {
		return &object.Octave{Value: o}, true
	}
	if d, ok := durationLiteral(name); ok {
		return &object.Duration{Value: d}, true
	}
	return nil, false
}

func compositeSound(name string) (object.Object, bool) {
	parts := strings.Split(name, "_")
	if len(parts) != 3 {
		return nil, false
	}
	n, ok := pitch(parts[0])
	if !ok {
		return nil, false
	}
	o, ok := octaveDigit(parts[1])
	if !ok {
		return nil, false
	}
	d, ok := durationSpec(parts[2])
	if !ok {
		return nil, false
	}
	return &object.Sound{Value: audio.Sound{Note: n, Octave: o, Duration: d}}, true
}

func pitch(s string) (audio.Note, bool) {
	switch s {
	case "x":
		return audio.Space, true
	case "a":
		return audio.A, true
	case "a#":
		return audio.ASharp, true
	case "b":
		return audio.B, true
	case "c":
		return audio.C, true
	case "c#":
		return audio.CSharp, true
	case "d":
		return audio.D, true
	case "d#":
		return audio.DSharp, true
	case "e":
		return audio.E, true
	case "f":
		return audio.F, true
	case "f#":
		return audio.FSharp, true
	case "g":
		return audio.G, true
	case "g#":
		return audio.GSharp, true
	}
	return 0, false
}

func octaveLiteral(s string) (audio.Octave, bool) {
	if len(s) != 2 || s[0] != 'o' {
		return 0, false
	}
	return octaveDigit(s[1:])
}

func octaveDigit(s string) (audio.Octave, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '8' {
		return 0, false
	}
	return audio.Octave((int(s[0]-'0') - 4) * 12), true
}

func durationLiteral(s string) (audio.Duration, bool) {
	if len(s) < 2 || s[0] != 'd' {
		return 0, false
	}
	return durationSpec(s[1:])
}

func durationSpec(s string) (audio.Duration, bool) {
	switch s {
	case "1":
		return audio.Whole, true
	case "2*":
		return audio.HalfDotted, true
	case "2":
		return audio.Half, true
	case "4*":
		return audio.QuarterDotted, true
	case "4":
		return audio.Quarter, true
	case "8*":
		return audio.EightDotted, true
	case "8":
		return audio.Eight, true
	case "16*":
		return audio.SixteenthDotted, true
	case "16":
		return audio.Sixteenth, true
	case "32*":
		return audio.ThirtySecondDotted, true
	case "32":
		return audio.ThirtySecond, true
	}
	return 0, false
}
