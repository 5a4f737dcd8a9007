package eval

import (
	"strings"
	"testing"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
)

func expectError(t *testing.T, obj object.Object, want string) {
	t.Helper()
	err, ok := obj.(*object.Error)
	if !ok {
		t.Fatalf("Expected error containing %q, got %T (%v)", want, obj, obj)
	}
	if !strings.Contains(err.Message, want) {
		t.Fatalf("Expected error containing %q, got %q", want, err.Message)
	}
}

func TestTempoSetsTheSongTempo(t *testing.T) {
	builder := audio.NewSongBuilder()

	result := tempoBuiltin(builder, &object.Integer{Value: 120})
	if result.Type() != object.NullObj {
		t.Fatalf("Expected null, got %v", result.Inspect())
	}
	if builder.StartTempo() != 120 {
		t.Errorf("Expected start tempo 120, got %d", builder.StartTempo())
	}
}

func TestTempoArgumentLaws(t *testing.T) {
	builder := audio.NewSongBuilder()

	expectError(t, tempoBuiltin(builder, &object.Integer{Value: 0}),
		"tempo should be higher than 0")
	expectError(t, tempoBuiltin(builder, &object.Integer{Value: 1}, &object.Integer{Value: 2}),
		"wrong number of arguments")
	expectError(t, tempoBuiltin(builder),
		"wrong number of arguments")
	expectError(t, tempoBuiltin(builder, &object.Sound{}),
		"must be an integer")
}

func TestTempoChangesRoundTrip(t *testing.T) {
	builder := audio.NewSongBuilder()

	for _, v := range []int64{120, 20, 40} {
		if res := tempoBuiltin(builder, &object.Integer{Value: v}); res.Type() == object.ErrorObj {
			t.Fatalf("Unexpected error pushing tempo %d: %v", v, res.Inspect())
		}
	}

	song, err := builder.Song(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if song.StartTempo != 120 {
		t.Errorf("Expected start tempo 120, got %d", song.StartTempo)
	}
	if len(song.TempoChanges) != 2 {
		t.Fatalf("Expected 2 recorded tempo changes, got %d", len(song.TempoChanges))
	}
	if song.TempoChanges[0].Value != 20 || song.TempoChanges[1].Value != 40 {
		t.Errorf("Expected tempo changes to round-trip, got %v", song.TempoChanges)
	}
}

func TestTrackBuildsAnInstrument(t *testing.T) {
	builder := audio.NewSongBuilder()
	sound := &object.Sound{Value: audio.Sound{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}}

	result := trackBuiltin(builder, sound)
	instrument, ok := result.(*object.Instrument)
	if !ok {
		t.Fatalf("Expected instrument, got %T (%v)", result, result)
	}
	if instrument.Value.IsFinished() {
		t.Error("Expected a fresh instrument not to be finished")
	}
}

func TestTrackArgumentLaws(t *testing.T) {
	builder := audio.NewSongBuilder()

	expectError(t, trackBuiltin(builder), "zero arguments given to track")

	naked := &object.Sound{Value: audio.Sound{Note: audio.A, Modified: true}}
	expectError(t, trackBuiltin(builder, naked),
		"expected first note to have an octave and duration")

	expectError(t, trackBuiltin(builder, &object.Integer{Value: 3}), "expected note")
}

func TestVibAttachesTheEffect(t *testing.T) {
	builder := audio.NewSongBuilder()
	sound := &object.Sound{Value: audio.Sound{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}}

	result := vibBuiltin(builder, &object.Integer{Value: 5}, &object.Integer{Value: 10}, sound, sound)
	sounds, ok := result.(*object.Sounds)
	if !ok {
		t.Fatalf("Expected sounds, got %T (%v)", result, result)
	}
	if len(sounds.Value) != 2 {
		t.Fatalf("Expected 2 sounds, got %d", len(sounds.Value))
	}

	for _, s := range sounds.Value {
		if len(s.Effects) != 1 {
			t.Fatalf("Expected 1 effect, got %d", len(s.Effects))
		}
		vib, ok := s.Effects[0].(audio.Vibrato)
		if !ok {
			t.Fatalf("Expected vibrato, got %T", s.Effects[0])
		}
		if vib.Speed != 5 || vib.Depth != 10 {
			t.Errorf("Expected speed 5 depth 10, got %v", vib)
		}
	}

	// the original sound is untouched
	if len(sound.Value.Effects) != 0 {
		t.Error("Expected vib not to mutate its argument")
	}
}

func TestVibArgumentLaws(t *testing.T) {
	builder := audio.NewSongBuilder()
	sound := &object.Sound{Value: audio.Sound{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}}

	expectError(t, vibBuiltin(builder), "wrong number of arguments")
	expectError(t, vibBuiltin(builder, &object.Integer{Value: 1}, sound, sound), "must be an integer")
}

func TestPlayWithoutArguments(t *testing.T) {
	builder := audio.NewSongBuilder()
	expectError(t, playBuiltin(builder), "zero arguments given to play")
}

func TestPlayRequiresATempo(t *testing.T) {
	builder := audio.NewSongBuilder()
	sound := &object.Sound{Value: audio.Sound{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}}

	expectError(t, playBuiltin(builder, sound), "tempo should be higher than 0")
}

func TestBuildScoreFromMixedArguments(t *testing.T) {
	c := audio.Sound{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}
	e := audio.Sound{Note: audio.E, Octave: audio.Four, Duration: audio.Quarter}

	score, errObj := buildScore([]object.Object{
		&object.Sound{Value: c},
		&object.Chord{Value: audio.Chord{c, e}},
		&object.Sounds{Value: []audio.Sound{c, e}},
	})
	if errObj != nil {
		t.Fatalf("Unexpected error: %v", errObj.Inspect())
	}

	// one chord, one vertical stack, then two sequential notes
	if len(score) != 4 {
		t.Fatalf("Expected 4 chords, got %d", len(score))
	}
	if len(score[1]) != 2 {
		t.Errorf("Expected the chord to stay vertical, got %d sounds", len(score[1]))
	}
}

func TestBuildInstrumentsClonesTrackedSynths(t *testing.T) {
	score := []audio.Chord{{{Note: audio.C, Octave: audio.Four, Duration: audio.ThirtySecond}}}
	synth := audio.NewSynth(audio.NewOptions(), score)
	track := &object.Instrument{Value: synth}

	instruments, errObj := buildInstruments([]object.Object{track, track})
	if errObj != nil {
		t.Fatalf("Unexpected error: %v", errObj.Inspect())
	}
	if len(instruments) != 2 {
		t.Fatalf("Expected 2 instruments, got %d", len(instruments))
	}

	// exhaust the first clone; the second and the original stay fresh
	for i := 0; i < 4000; i++ {
		instruments[0].NextFreq(48000, 120)
	}
	if !instruments[0].IsFinished() {
		t.Fatal("Expected the exhausted clone to finish")
	}
	if instruments[1].IsFinished() || synth.IsFinished() {
		t.Fatal("Expected clones to be independent of each other and the original")
	}
}

func TestBuildInstrumentsRejectsMixedArguments(t *testing.T) {
	score := []audio.Chord{{{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}}}
	track := &object.Instrument{Value: audio.NewSynth(audio.NewOptions(), score)}
	sound := &object.Sound{Value: audio.Sound{Note: audio.C, Octave: audio.Four, Duration: audio.Quarter}}

	_, errObj := buildInstruments([]object.Object{track, sound})
	if errObj == nil {
		t.Fatal("Expected an error mixing instruments and sounds")
	}
}
