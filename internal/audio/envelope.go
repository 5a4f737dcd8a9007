package audio

// Envelope shapes a voice's amplitude over its lifetime. Times are in
// sample-clock units. ReleaseTime and TriggerOffTime are carried for
// forward compatibility; release is not applied yet.
type Envelope struct {
	AttackTime       float32
	DecayTime        float32
	SustainAmplitude float32
	ReleaseTime      float32
	StartAmplitude   float32
	TriggerOffTime   float32
	TriggerOnTime    float32
}

// NewEnvelope returns the default envelope.
func NewEnvelope() Envelope {
	return Envelope{
		AttackTime:       0.10,
		DecayTime:        0.01,
		SustainAmplitude: 0.8,
		ReleaseTime:      0.20,
		StartAmplitude:   1.0,
	}
}

// Amplitude returns the amplitude multiplier at the given clock value.
func (e Envelope) Amplitude(clock float32) float32 {
	var amplitude float32
	lifeTime := clock - e.TriggerOnTime

	if lifeTime <= e.AttackTime {
		// attack phase, approach the start amplitude
		amplitude = (lifeTime / e.AttackTime) * e.StartAmplitude
	}

	if lifeTime > e.AttackTime && lifeTime <= e.AttackTime+e.DecayTime {
		// decay phase, fall to the sustained amplitude
		amplitude = (lifeTime-e.AttackTime)/e.DecayTime*
			(e.SustainAmplitude-e.StartAmplitude) + e.StartAmplitude
	}

	if lifeTime > e.AttackTime+e.DecayTime {
		// sustain phase, hold until the note ends
		amplitude = e.SustainAmplitude
	}

	if amplitude <= 0.0001 {
		return 0
	}
	return amplitude
}
