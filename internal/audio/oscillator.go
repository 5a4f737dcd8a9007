package audio

import "math"

// Oscillator produces a normalized waveform sample from a frequency,
// the stream's sample rate and a voice clock. Implementations must be
// pure functions of their inputs.
type Oscillator interface {
	Oscillate(hz, sampleRate, clock float32) float32
}

// angularRate converts a frequency to angular velocity at the clock.
func angularRate(hz, sampleRate, clock float32) float64 {
	return 2 * math.Pi * float64(hz) * float64(clock) / float64(sampleRate)
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SineWave is a plain sine oscillator.
type SineWave struct{}

func (SineWave) Oscillate(hz, sampleRate, clock float32) float32 {
	return clamp(float32(math.Sin(angularRate(hz, sampleRate, clock))), -1, 1)
}

// TriangleWave folds a sine into a triangle via asin.
type TriangleWave struct{}

func (TriangleWave) Oscillate(hz, sampleRate, clock float32) float32 {
	theta := angularRate(hz, sampleRate, clock)
	return clamp(float32(math.Asin(math.Sin(theta))*(2/math.Pi)), -1, 1)
}

// AnalogSaw approximates a sawtooth additively from the first 39
// harmonics, which keeps the edge soft like an analog oscillator.
type AnalogSaw struct{}

func (AnalogSaw) Oscillate(hz, sampleRate, clock float32) float32 {
	theta := angularRate(hz, sampleRate, clock)
	var output float64
	for i := 1; i < 40; i++ {
		n := float64(i)
		output += math.Sin(n*theta) / n
	}
	return clamp(float32(output*(2/math.Pi)), -1, 1)
}
