package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestClipBytesOrder(t *testing.T) {
	c := NewClip()
	c.Append([]byte{1, 2})
	c.Append([]byte{3})
	c.Append(nil)
	c.Append([]byte{4, 5, 6})

	if got, want := c.Bytes(), []byte{1, 2, 3, 4, 5, 6}; !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if c.Empty() {
		t.Error("clip with frames should not be empty")
	}
}

func TestClipEmpty(t *testing.T) {
	c := NewClip()
	if !c.Empty() {
		t.Error("new clip should be empty")
	}
	if len(c.Bytes()) != 0 {
		t.Error("empty clip should have no bytes")
	}
	if c.Duration() != 0 {
		t.Error("empty clip should have zero duration")
	}
}

func TestClipDuration(t *testing.T) {
	c := NewClip()
	// One second of mono 16-bit audio at the default rate.
	c.Append(make([]byte, DefaultSampleRate*DefaultSampleWidth))
	if got := c.Duration(); got != 1.0 {
		t.Errorf("Duration() = %v, want 1.0", got)
	}
}

func TestRecorderCollectsFrames(t *testing.T) {
	pcm := make([]byte, 4096)
	for i := 0; i+1 < len(pcm); i += 2 {
		binary.LittleEndian.PutUint16(pcm[i:], uint16(i%1000))
	}

	ctx := NewFakeContext(pcm, 512)
	rec := NewRecorder(ctx, nil)

	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !rec.Recording() {
		t.Error("Recording() should be true after Start")
	}

	clip := rec.Stop()
	if rec.Recording() {
		t.Error("Recording() should be false after Stop")
	}
	if !bytes.Equal(clip.Bytes(), pcm) {
		t.Errorf("clip bytes differ: got %d bytes, want %d", len(clip.Bytes()), len(pcm))
	}
	if clip.SampleRate != DefaultSampleRate || clip.Channels != DefaultChannels || clip.SampleWidth != DefaultSampleWidth {
		t.Errorf("clip format: %+v", clip)
	}
}

func TestRecorderLevelFullScale(t *testing.T) {
	// A full-scale negative sample (-32768) is the loudest possible peak.
	pcm := make([]byte, 4)
	binary.LittleEndian.PutUint16(pcm[0:], 0x8000)
	binary.LittleEndian.PutUint16(pcm[2:], 100)

	rec := NewRecorder(NewFakeContext(pcm, len(pcm)), nil)
	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := rec.Level(); got != 1.0 {
		t.Errorf("Level() = %v, want 1.0", got)
	}
	rec.Stop()
}

func TestRecorderDoubleStart(t *testing.T) {
	rec := NewRecorder(NewFakeContext(nil, 0), nil)
	if err := rec.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rec.Start(); err == nil {
		t.Error("second Start should fail")
	}
	rec.Stop()
}

func TestRecorderStopWithoutStart(t *testing.T) {
	rec := NewRecorder(NewFakeContext(nil, 0), nil)
	clip := rec.Stop()
	if clip == nil || !clip.Empty() {
		t.Errorf("Stop without Start should return an empty clip, got %+v", clip)
	}
}
