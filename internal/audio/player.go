package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

const (
	// SampleRate is the output stream's sample rate in Hz.
	SampleRate = 44100
	// ChannelCount is the number of interleaved output channels.
	ChannelCount = 2

	bytesPerSample = 4 // 32-bit float samples

	// masterVolume and headroom keep summed voices below clipping for
	// typical polyphony.
	masterVolume = 0.5
	headroom     = 0.1
)

// EventKind tags the messages a player sends back to the control
// goroutine.
type EventKind int

const (
	// EndOfSong is the terminal success signal.
	EndOfSong EventKind = iota
	// BuildStream means the output stream could not be constructed.
	BuildStream
	// StreamErr is a non-fatal playback error from the audio host.
	StreamErr
)

// Event is a message on the player's end/error channel.
type Event struct {
	Kind EventKind
	Err  error
}

// The audio host context can only be created once per process; every
// song shares it.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

func otoContext() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatFloat32LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, otoErr
}

// mixer generates the interleaved output stream, pulling one sample
// per frame from every instrument. It runs entirely on the audio
// goroutine: no allocation, no blocking, no locks.
type mixer struct {
	instruments   []Instrument
	finishedSeen  []bool
	finishedCount *atomic.Int32
	tempo         float32
	sampleRate    float32
	channels      int
}

func newMixer(song *Song, sampleRate float32, channels int) *mixer {
	return &mixer{
		instruments:   song.Instruments,
		finishedSeen:  make([]bool, len(song.Instruments)),
		finishedCount: &atomic.Int32{},
		tempo:         float32(song.StartTempo),
		sampleRate:    sampleRate,
		channels:      channels,
	}
}

// nextFrame mixes one output frame from all instruments.
func (m *mixer) nextFrame() float32 {
	var mix float32
	for i, ins := range m.instruments {
		if !m.finishedSeen[i] && ins.IsFinished() {
			m.finishedSeen[i] = true
			m.finishedCount.Add(1)
			continue
		}
		mix += ins.NextFreq(m.sampleRate, m.tempo)
	}
	return clamp(mix*masterVolume*headroom, -1, 1)
}

// Read implements io.Reader for the audio host. Each frame's sample is
// written to every channel.
func (m *mixer) Read(buf []byte) (int, error) {
	frameBytes := m.channels * bytesPerSample
	n := len(buf) - len(buf)%frameBytes

	for off := 0; off < n; off += frameBytes {
		bits := math.Float32bits(m.nextFrame())
		for ch := 0; ch < m.channels; ch++ {
			binary.LittleEndian.PutUint32(buf[off+ch*bytesPerSample:], bits)
		}
	}
	return n, nil
}

// Player owns the output stream for one song.
type Player struct{}

// NewPlayer returns a player for the default output device.
func NewPlayer() *Player {
	return &Player{}
}

// Spawn moves the song into a playback goroutine and returns the
// channel on which stream errors and the final EndOfSong arrive. The
// caller must drain the channel until EndOfSong or BuildStream.
func (p *Player) Spawn(song *Song) <-chan Event {
	events := make(chan Event, 16)
	mix := newMixer(song, SampleRate, ChannelCount)
	instrLen := len(song.Instruments)

	go func() {
		ctx, err := otoContext()
		if err != nil {
			events <- Event{Kind: BuildStream, Err: err}
			return
		}

		player := ctx.NewPlayer(mix)
		player.Play()

		for {
			if !player.IsPlaying() {
				if err := player.Err(); err != nil {
					events <- Event{Kind: StreamErr, Err: err}
				}
				player.Play()
			}
			if int(mix.finishedCount.Load()) == instrLen {
				// let the buffered tail drain before tearing down
				time.Sleep(100 * time.Millisecond)
				player.Pause()
				if err := player.Close(); err != nil {
					logrus.Warnf("could not close stream: %v", err)
				}
				events <- Event{Kind: EndOfSong}
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	return events
}
