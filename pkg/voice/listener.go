package voice

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"

	"lyra/pkg/models"
)

const (
	sampleRate       = 16000
	frameMs          = 30
	frameSamples     = sampleRate * frameMs / 1000
	preRollMs        = 300
	preRollFramesMax = preRollMs / frameMs
	minSpeechMs      = 120
	minSpeechFrames  = minSpeechMs / frameMs
)

// Ring is a circular buffer for pre-roll audio frames.
type Ring[T any] struct {
	buf  []T
	head int
	fill int
}

func NewRing[T any](cap int) *Ring[T] { return &Ring[T]{buf: make([]T, cap)} }

func (r *Ring[T]) Push(x T) {
	if len(r.buf) == 0 {
		return
	}
	r.buf[r.head] = x
	r.head = (r.head + 1) % len(r.buf)
	if r.fill < len(r.buf) {
		r.fill++
	}
}

func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.fill)
	start := (r.head - r.fill + len(r.buf)) % len(r.buf)
	for i := 0; i < r.fill; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}

// Listener continuously captures microphone audio, cuts it into speech
// segments with a simple RMS VAD, and hands each segment to a callback as a
// temp WAV file. When a hotword is configured, segments that do not contain
// it are dropped after a quick transcription pass. The capture loop runs on
// its own goroutine so turn processing never blocks listening.
type Listener struct {
	stream      *portaudio.Stream
	inBuffer    []int16
	transcriber *Transcriber
	hotword     string
	threshold   float64
	hangover    int // frames of trailing silence before a segment ends
	segmentDir  string
	stopped     atomic.Bool
}

func NewListener(cfg *models.Config, transcriber *Transcriber, segmentDir string) (*Listener, error) {
	log.Println("LISTENER: initializing microphone capture")

	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	in := make([]int16, frameSamples)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), len(in), in)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		portaudio.Terminate()
		return nil, err
	}

	threshold := cfg.VADThreshold
	if threshold <= 0 {
		threshold = 0.01
	}
	hangoverMs := cfg.VADSilenceTimeout.Milliseconds()
	if hangoverMs <= 0 {
		hangoverMs = 600
	}

	return &Listener{
		stream:      stream,
		inBuffer:    in,
		transcriber: transcriber,
		hotword:     strings.ToLower(cfg.Hotword),
		threshold:   threshold,
		hangover:    int(hangoverMs) / frameMs,
		segmentDir:  segmentDir,
	}, nil
}

// ListenContinuously blocks until Stop is called, invoking the callback with
// the path of each captured speech segment. The callback is expected to do
// its own (possibly slow) processing; capture keeps running meanwhile.
func (l *Listener) ListenContinuously(callback func(wavPath string)) {
	preRoll := NewRing[[]float32](preRollFramesMax)
	var segment [][]float32
	var speechActive bool
	var speechCount, silenceCount int

	log.Printf("LISTENER: listening continuously (hotword=%q)", l.hotword)

	for !l.stopped.Load() {
		if err := l.stream.Read(); err != nil {
			log.Printf("LISTENER: stream read failed: %v", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		f32 := make([]float32, frameSamples)
		i16ToF32(l.inBuffer, f32)
		energy := rmsEnergy(f32)

		if energy >= l.threshold {
			if !speechActive {
				speechActive = true
				segment = append(segment, preRoll.Snapshot()...)
			}
			speechCount++
			silenceCount = 0
			segment = append(segment, f32)
			continue
		}

		if speechActive {
			silenceCount++
			segment = append(segment, f32)
			if silenceCount >= l.hangover {
				if speechCount >= minSpeechFrames {
					l.emitSegment(flatten(segment), callback)
				}
				segment = nil
				speechActive = false
				speechCount = 0
				silenceCount = 0
			}
			continue
		}
		preRoll.Push(f32)
	}

	log.Println("LISTENER: stopped")
}

// Stop ends the capture loop. Best-effort: an in-progress segment callback is
// not interrupted.
func (l *Listener) Stop() {
	l.stopped.Store(true)
}

func (l *Listener) Close() {
	l.Stop()
	if l.stream != nil {
		l.stream.Stop()
		l.stream.Close()
	}
	portaudio.Terminate()
}

func (l *Listener) emitSegment(samples []float32, callback func(string)) {
	if l.hotword != "" && l.transcriber != nil {
		text, _, err := l.transcriber.TranscribePCM(samples)
		if err != nil || !strings.Contains(strings.ToLower(text), l.hotword) {
			return
		}
		log.Printf("LISTENER: hotword %q detected", l.hotword)
	}

	path, err := l.writeSegment(samples)
	if err != nil {
		log.Printf("LISTENER: failed to write segment: %v", err)
		return
	}
	// dispatch off the capture path
	go callback(path)
}

func (l *Listener) writeSegment(samples []float32) (string, error) {
	path := filepath.Join(l.segmentDir, fmt.Sprintf("segment_%d.wav", time.Now().UnixNano()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	ints := make([]int, len(samples))
	for i, s := range samples {
		v := int(s * 32767)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		ints[i] = v
	}
	buf := &audio.IntBuffer{
		Data:           ints,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func rmsEnergy(f []float32) float64 {
	if len(f) == 0 {
		return 0
	}
	var s float64
	for _, v := range f {
		s += float64(v * v)
	}
	return math.Sqrt(s / float64(len(f)))
}

func i16ToF32(in []int16, out []float32) {
	for i := range in {
		out[i] = float32(in[i]) / 32768.0
	}
}

func flatten(frames [][]float32) []float32 {
	var total int
	for _, f := range frames {
		total += len(f)
	}
	out := make([]float32, 0, total)
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}
