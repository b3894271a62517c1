// Package audio plays synthesized speech files through the default output
// device. Playback is serialized: starting a new sound stops the current one.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const mixerRate = beep.SampleRate(44100)

var (
	initOnce sync.Once
	initErr  error

	currentAudio struct {
		mu       sync.Mutex
		stopChan chan struct{}
	}
)

// PlaySound decodes and plays an MP3 or WAV file, blocking until playback
// finishes or another sound preempts it.
func PlaySound(filePath string) error {
	stopChan := make(chan struct{})
	currentAudio.mu.Lock()
	if currentAudio.stopChan != nil {
		close(currentAudio.stopChan)
	}
	currentAudio.stopChan = stopChan
	currentAudio.mu.Unlock()

	err := playFile(filePath, stopChan)

	currentAudio.mu.Lock()
	if currentAudio.stopChan == stopChan {
		currentAudio.stopChan = nil
	}
	currentAudio.mu.Unlock()
	return err
}

func StopCurrentSound() {
	currentAudio.mu.Lock()
	defer currentAudio.mu.Unlock()
	if currentAudio.stopChan != nil {
		close(currentAudio.stopChan)
		currentAudio.stopChan = nil
	}
}

func playFile(filePath string, stop <-chan struct{}) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open sound file: %w", err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		return fmt.Errorf("decode sound file: %w", err)
	}
	defer streamer.Close()

	initOnce.Do(func() {
		initErr = speaker.Init(mixerRate, mixerRate.N(time.Second/10))
	})
	if initErr != nil {
		return fmt.Errorf("speaker init: %w", initErr)
	}

	done := make(chan struct{})
	resampled := beep.Resample(4, format.SampleRate, mixerRate, streamer)
	speaker.Play(beep.Seq(resampled, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-stop:
		speaker.Clear()
	}
	return nil
}
