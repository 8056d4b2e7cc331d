package main

import (
	"bytes"
	"fmt"
	"os"

	gowav "github.com/go-audio/wav"
)

// readWavFile loads and validates a WAV file before upload, returning the
// raw container bytes and the audio length in seconds. Rejecting malformed
// files here beats paying for a round trip the API will refuse.
func readWavFile(path string) ([]byte, float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	d := gowav.NewDecoder(bytes.NewReader(data))
	d.ReadInfo()
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("%s is not a valid WAV file", path)
	}

	var seconds float64
	if dur, err := d.Duration(); err == nil {
		seconds = dur.Seconds()
	}
	return data, seconds, nil
}
