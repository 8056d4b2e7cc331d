package encoder

import (
	"bytes"
	"encoding/binary"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/bdurukan/texxteditor/audio"
)

func TestWavHeaderLayout(t *testing.T) {
	enc, err := NewWav(1, 2, 16000)
	if err != nil {
		t.Fatalf("NewWav: %v", err)
	}
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	if err := enc.EncodeBlock(pcm); err != nil {
		t.Fatalf("EncodeBlock: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b := enc.Bytes()
	if len(b) != headerSize+len(pcm) {
		t.Fatalf("container length = %d, want %d", len(b), headerSize+len(pcm))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		t.Error("missing fmt/data chunk ids")
	}
	if got := binary.LittleEndian.Uint32(b[4:]); got != uint32(36+len(pcm)) {
		t.Errorf("RIFF size = %d, want %d", got, 36+len(pcm))
	}
	if got := binary.LittleEndian.Uint16(b[20:]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint32(b[24:]); got != 16000 {
		t.Errorf("sample rate = %d, want 16000", got)
	}
	if got := binary.LittleEndian.Uint32(b[28:]); got != 32000 {
		t.Errorf("byte rate = %d, want 32000", got)
	}
	if got := binary.LittleEndian.Uint32(b[40:]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", got, len(pcm))
	}
	if !bytes.Equal(b[headerSize:], pcm) {
		t.Error("data chunk does not match input frames")
	}
}

// Round-trip through an independent decoder: the produced container must
// hand back the exact samples and format metadata we put in.
func TestWavRoundTrip(t *testing.T) {
	clip := audio.NewClip()
	samples := make([]int16, 2048)
	for i := range samples {
		samples[i] = int16(i*37 - 1024)
	}
	// Split across uneven frame boundaries like a real capture would.
	raw := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}
	for pos := 0; pos < len(raw); {
		end := min(pos+700, len(raw))
		clip.Append(raw[pos:end])
		pos = end
	}

	wavBytes, err := EncodeClip(clip)
	if err != nil {
		t.Fatalf("EncodeClip: %v", err)
	}

	d := gowav.NewDecoder(bytes.NewReader(wavBytes))
	d.ReadInfo()
	if !d.IsValidFile() {
		t.Fatal("decoder rejected container")
	}
	if d.NumChans != 1 || d.SampleRate != uint32(audio.DefaultSampleRate) || d.BitDepth != 16 {
		t.Errorf("format: chans=%d rate=%d depth=%d", d.NumChans, d.SampleRate, d.BitDepth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
	for i, s := range samples {
		if int16(buf.Data[i]) != s {
			t.Fatalf("sample %d = %d, want %d", i, buf.Data[i], s)
		}
	}
}

func TestWavEmptyClip(t *testing.T) {
	wavBytes, err := EncodeClip(audio.NewClip())
	if err != nil {
		t.Fatalf("EncodeClip: %v", err)
	}
	if len(wavBytes) != headerSize {
		t.Errorf("empty clip container = %d bytes, want %d", len(wavBytes), headerSize)
	}
	if got := binary.LittleEndian.Uint32(wavBytes[40:]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

func TestWavInvalidFormat(t *testing.T) {
	for _, tt := range []struct{ channels, width, rate int }{
		{0, 2, 16000},
		{1, 0, 16000},
		{1, 2, 0},
		{-1, 2, 16000},
	} {
		if _, err := NewWav(tt.channels, tt.width, tt.rate); err == nil {
			t.Errorf("NewWav(%d, %d, %d) should fail", tt.channels, tt.width, tt.rate)
		}
	}
}

func TestWavEncodeAfterClose(t *testing.T) {
	enc, err := NewWav(1, 2, 16000)
	if err != nil {
		t.Fatalf("NewWav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := enc.EncodeBlock([]byte{1, 2}); err == nil {
		t.Error("EncodeBlock after Close should fail")
	}
}
