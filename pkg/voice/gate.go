// Package voice contains the audio-side adapters: the silence gate, WAV
// decoding, whisper transcription, and the continuous hotword listener.
package voice

import (
	"math"
	"os"
	"strings"

	"github.com/go-audio/wav"
)

// DefaultSilenceRMS is the amplitude floor below which a clip counts as
// silence, on the 16-bit sample scale.
const DefaultSilenceRMS = 500

// SilentWAV reports whether a clip is too quiet to bother transcribing.
// Unreadable audio counts as silent, so a corrupt upload can never produce a
// turn.
func SilentWAV(path string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultSilenceRMS
	}

	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return true
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil || buf == nil || len(buf.Data) == 0 {
		return true
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	// normalize to the 16-bit scale the threshold is defined on
	shift := bitDepth - 16

	var sum float64
	for _, s := range buf.Data {
		v := float64(s)
		if shift > 0 {
			v /= float64(int64(1) << shift)
		} else if shift < 0 {
			v *= float64(int64(1) << -shift)
		}
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(buf.Data)))
	return rms < float64(threshold)
}

// AcceptText reports whether typed input is substantive enough to process:
// at least two characters after trimming.
func AcceptText(text string) bool {
	return len([]rune(strings.TrimSpace(text))) >= 2
}
