package eval

import (
	"strings"
	"testing"

	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/lexer"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
	"github.com/petar-dambovaliev/soundbytes/internal/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}
	return Eval(program, object.NewEnvironment(), audio.NewSongBuilder())
}

func TestEvalIntegerExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"5 + 5 - 10 + 5", 5},
		{"2 * 2", 4},
		{"10/5", 2},
		{"(1 + 2) * 3", 9},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		integer, ok := evaluated.(*object.Integer)
		if !ok {
			t.Fatalf("Expected integer for %q, got %T (%v)", tt.input, evaluated, evaluated)
		}
		if integer.Value != tt.want {
			t.Errorf("Expected %d for %q, got %d", tt.want, tt.input, integer.Value)
		}
	}
}

func TestEvalCompositeNote(t *testing.T) {
	evaluated := testEval(t, "c#_4_16")

	sound, ok := evaluated.(*object.Sound)
	if !ok {
		t.Fatalf("Expected sound, got %T (%v)", evaluated, evaluated)
	}
	s := sound.Value
	if s.Note != audio.CSharp || s.Octave != audio.Four || s.Duration != audio.Sixteenth {
		t.Errorf("Expected c#_4_16, got %v", s)
	}
	if s.Modified {
		t.Error("Expected composite note to carry its own octave and duration")
	}
}

func TestEvalBareNoteIsModified(t *testing.T) {
	evaluated := testEval(t, "g")

	sound, ok := evaluated.(*object.Sound)
	if !ok {
		t.Fatalf("Expected sound, got %T (%v)", evaluated, evaluated)
	}
	if !sound.Value.Modified {
		t.Error("Expected bare pitch to be marked as modified")
	}
	if sound.Value.Note != audio.G {
		t.Errorf("Expected g, got %v", sound.Value.Note)
	}
}

func TestEvalRest(t *testing.T) {
	evaluated := testEval(t, "x_4_4")

	sound, ok := evaluated.(*object.Sound)
	if !ok {
		t.Fatalf("Expected sound, got %T (%v)", evaluated, evaluated)
	}
	if sound.Value.Note != audio.Space {
		t.Errorf("Expected a rest, got %v", sound.Value.Note)
	}
}

func TestEvalOctaveAndDurationLiterals(t *testing.T) {
	if o, ok := testEval(t, "o2").(*object.Octave); !ok || o.Value != audio.Two {
		t.Errorf("Expected octave two, got %v", o)
	}
	if d, ok := testEval(t, "d8*").(*object.Duration); !ok || d.Value != audio.EightDotted {
		t.Errorf("Expected dotted eighth, got %v", d)
	}
}

func TestEvalChordExpression(t *testing.T) {
	evaluated := testEval(t, "c_4_4 + e_4_4 + g")

	chord, ok := evaluated.(*object.Chord)
	if !ok {
		t.Fatalf("Expected chord, got %T (%v)", evaluated, evaluated)
	}
	if len(chord.Value) != 3 {
		t.Fatalf("Expected 3 sounds, got %d", len(chord.Value))
	}

	// the naked g inherits octave and duration from e_4_4
	g := chord.Value[2]
	if g.Octave != audio.Four || g.Duration != audio.Quarter || !g.Modified {
		t.Errorf("Expected inherited o4 d4 modified, got %v", g)
	}
}

func TestEvalLetBindsAndReturnsNull(t *testing.T) {
	p := parser.New(lexer.New("let a = track(c_4_4);"))
	program := p.ParseProgram()
	env := object.NewEnvironment()

	evaluated := Eval(program, env, audio.NewSongBuilder())
	if evaluated.Type() != object.NullObj {
		t.Fatalf("Expected null from let, got %v", evaluated.Inspect())
	}

	bound, ok := env.Get("a")
	if !ok {
		t.Fatal("Expected a to be bound")
	}
	if bound.Type() != object.InstrumentObj {
		t.Errorf("Expected instrument, got %v", bound.Type())
	}
}

func TestEvalIdentifierNotFound(t *testing.T) {
	evaluated := testEval(t, "banana")

	err, ok := evaluated.(*object.Error)
	if !ok {
		t.Fatalf("Expected error, got %T (%v)", evaluated, evaluated)
	}
	if !strings.Contains(err.Message, "identifier not found: banana") {
		t.Errorf("Unexpected message %q", err.Message)
	}
}

func TestEvalErrorStopsProgram(t *testing.T) {
	evaluated := testEval(t, "banana; 5;")

	if _, ok := evaluated.(*object.Error); !ok {
		t.Fatalf("Expected the error to stop evaluation, got %T (%v)", evaluated, evaluated)
	}
}

func TestEvalUnknownInfixOperands(t *testing.T) {
	evaluated := testEval(t, "c_4_4 + 5")

	if _, ok := evaluated.(*object.Error); !ok {
		t.Fatalf("Expected error for sound + integer, got %T (%v)", evaluated, evaluated)
	}
}
