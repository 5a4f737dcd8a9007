package audio

const secPerMin = 60.0

// Duration is a note length in quarter-note beats.
type Duration int

const (
	Whole Duration = iota
	HalfDotted
	Half
	QuarterDotted
	Quarter
	EightDotted
	Eight
	SixteenthDotted
	Sixteenth
	ThirtySecondDotted
	ThirtySecond
)

// Beats returns the length in quarter-note beats.
func (d Duration) Beats() float32 {
	switch d {
	case Whole:
		return 4.0
	case HalfDotted:
		return 3.0
	case Half:
		return 2.0
	case QuarterDotted:
		return 1.5
	case Quarter:
		return 1.0
	case EightDotted:
		return 0.75
	case Eight:
		return 0.5
	case SixteenthDotted:
		return 0.375
	case Sixteenth:
		return 0.25
	case ThirtySecondDotted:
		return 0.1875
	case ThirtySecond:
		return 0.125
	}
	return 0
}

func (d Duration) String() string {
	switch d {
	case Whole:
		return "d1"
	case HalfDotted:
		return "d2*"
	case Half:
		return "d2"
	case QuarterDotted:
		return "d4*"
	case Quarter:
		return "d4"
	case EightDotted:
		return "d8*"
	case Eight:
		return "d8"
	case SixteenthDotted:
		return "d16*"
	case Sixteenth:
		return "d16"
	case ThirtySecondDotted:
		return "d32*"
	case ThirtySecond:
		return "d32"
	}
	return "?"
}

// CalcDuration converts a musical duration to a length in output frames
// at the given sample rate and tempo.
func CalcDuration(sampleRate, beatPerMin float32, d Duration) float32 {
	ratePerBeat := sampleRate / (beatPerMin / secPerMin)
	return ratePerBeat * d.Beats()
}

// SampleClock is a per-voice frame counter. Once the counter passes its
// target the clock reports ended and stays ended; the counter itself
// keeps advancing monotonically and never wraps.
type SampleClock struct {
	clock float32
	end   float32
	ended bool
}

// NewSampleClock returns a clock that ends after durFrames frames.
func NewSampleClock(durFrames float32) SampleClock {
	return SampleClock{end: durFrames}
}

// Tick advances the clock by one frame.
func (s *SampleClock) Tick() {
	s.clock++
	if uint32(s.clock) >= uint32(s.end) {
		s.ended = true
	}
}

// Clock returns the number of frames since the voice began.
func (s *SampleClock) Clock() float32 {
	return s.clock
}

// HasEnded reports whether the clock has reached its target.
func (s *SampleClock) HasEnded() bool {
	return s.ended
}
