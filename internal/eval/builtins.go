package eval

import (
	clone "github.com/huandu/go-clone/generic"
	"github.com/sirupsen/logrus"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
)

var builtins = map[string]*object.Builtin{
	"tempo": {Fn: tempoBuiltin},
	"track": {Fn: trackBuiltin},
	"vib":   {Fn: vibBuiltin},
	"play":  {Fn: playBuiltin},
}

func tempoBuiltin(b *audio.SongBuilder, args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arg, ok := args[0].(*object.Integer)
	if !ok {
		return newError("argument to tempo must be an integer, got %s", args[0].Type())
	}
	if arg.Value <= 0 {
		return newError("tempo should be higher than 0")
	}
	if err := b.PushTempo(audio.Tempo{Value: int(arg.Value)}); err != nil {
		return newError("%s", err)
	}
	return null
}

func trackBuiltin(b *audio.SongBuilder, args ...object.Object) object.Object {
	if len(args) == 0 {
		return newError("zero arguments given to track. a track needs notes")
	}
	score, errObj := buildScore(args)
	if errObj != nil {
		return errObj
	}
	return &object.Instrument{Value: audio.NewSynth(audio.NewOptions(), score)}
}

func vibBuiltin(b *audio.SongBuilder, args ...object.Object) object.Object {
	if len(args) < 3 {
		return newError("wrong number of arguments. got=%d, want at least 3", len(args))
	}
	speed, ok := args[0].(*object.Integer)
	if !ok {
		return newError("vib speed must be an integer, got %s", args[0].Type())
	}
	depth, ok := args[1].(*object.Integer)
	if !ok {
		return newError("vib depth must be an integer, got %s", args[1].Type())
	}

	effect := audio.Vibrato{Depth: float32(depth.Value), Speed: float32(speed.Value)}

	var sounds []audio.Sound
	for i, arg := range args[2:] {
		switch arg := arg.(type) {
		case *object.Sound:
			sounds = append(sounds, withEffect(arg.Value, effect))
		case *object.Sounds:
			for _, s := range arg.Value {
				sounds = append(sounds, withEffect(s, effect))
			}
		default:
			return newError("expected note, argument %d is %s", i+2, arg.Inspect())
		}
	}
	return &object.Sounds{Value: sounds}
}

func withEffect(s audio.Sound, e audio.Effect) audio.Sound {
	effects := make([]audio.Effect, len(s.Effects), len(s.Effects)+1)
	copy(effects, s.Effects)
	s.Effects = append(effects, e)
	return s
}

func playBuiltin(b *audio.SongBuilder, args ...object.Object) object.Object {
	if len(args) == 0 {
		return newError("zero arguments given to play. what am i supposed to play, huh?")
	}

	instruments, errObj := buildInstruments(args)
	if errObj != nil {
		return errObj
	}

	if b.StartTempo() <= 0 {
		return newError("tempo should be higher than 0")
	}
	song, err := b.Song(instruments)
	if err != nil {
		return newError("%s", err)
	}

	events := audio.NewPlayer().Spawn(song)
	for ev := range events {
		switch ev.Kind {
		case audio.EndOfSong:
			return null
		case audio.BuildStream:
			return newError("could not build audio stream: %s", ev.Err)
		case audio.StreamErr:
			logrus.Warnf("an error occurred on stream: %v", ev.Err)
		}
	}
	return null
}

// buildInstruments accepts either tracked instruments or raw
// sounds/chords, which become a single instrument.
func buildInstruments(args []object.Object) ([]audio.Instrument, object.Object) {
	if _, ok := args[0].(*object.Instrument); ok {
		instruments := make([]audio.Instrument, 0, len(args))
		for i, arg := range args {
			ins, ok := arg.(*object.Instrument)
			if !ok {
				return nil, newError("expected instrument, argument %d is %s", i, arg.Inspect())
			}
			// clone so a bound track replays from the start and the
			// audio goroutine never aliases evaluator state
			instruments = append(instruments, clone.Clone(ins.Value))
		}
		return instruments, nil
	}

	score, errObj := buildScore(args)
	if errObj != nil {
		return nil, errObj
	}
	return []audio.Instrument{audio.NewSynth(audio.NewOptions(), score)}, nil
}

// buildScore turns builtin arguments into a normalized score: sounds
// become one-note chords, chords stay vertical, sound sequences play
// in order.
func buildScore(args []object.Object) ([]audio.Chord, object.Object) {
	var score []audio.Chord

	for i, arg := range args {
		switch arg := arg.(type) {
		case *object.Sound:
			score = append(score, audio.Chord{arg.Value})
		case *object.Chord:
			score = append(score, arg.Value)
		case *object.Sounds:
			for _, s := range arg.Value {
				score = append(score, audio.Chord{s})
			}
		default:
			return nil, newError("expected note, argument %d is %s", i, arg.Inspect())
		}
	}

	normalized, err := audio.NormalizeScore(score)
	if err != nil {
		return nil, newError("%s", err)
	}
	return normalized, nil
}
