package audio

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// Recorder accumulates capture callbacks into a Clip. One recording at a
// time; Start after Stop begins a fresh clip.
type Recorder struct {
	ctx    Context
	device *DeviceInfo

	mu        sync.Mutex
	capture   CaptureDevice
	clip      *Clip
	level     float64
	recording bool
}

// NewRecorder records from the given device, or the system default when
// device is nil.
func NewRecorder(ctx Context, device *DeviceInfo) *Recorder {
	return &Recorder{ctx: ctx, device: device}
}

// Start opens a capture stream in the default format and begins collecting
// frames.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return fmt.Errorf("already recording")
	}

	r.clip = NewClip()
	cfg := CaptureConfig{
		SampleRate: DefaultSampleRate,
		Channels:   DefaultChannels,
	}

	capture, err := r.ctx.NewCapture(r.device, cfg, r.onData)
	if err != nil {
		return fmt.Errorf("open capture: %w", err)
	}
	if err := capture.Start(); err != nil {
		capture.Close()
		return fmt.Errorf("start capture: %w", err)
	}

	r.capture = capture
	r.recording = true
	return nil
}

func (r *Recorder) onData(data []byte, _ uint32) {
	frame := make([]byte, len(data))
	copy(frame, data)

	// Widen before negating: -32768 has no int16 counterpart.
	var peak int32
	for i := 0; i+1 < len(frame); i += 2 {
		s := int32(int16(binary.LittleEndian.Uint16(frame[i:])))
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	r.mu.Lock()
	if r.recording {
		r.clip.Append(frame)
		r.level = float64(peak) / 32768
	}
	r.mu.Unlock()
}

// Recording reports whether a capture stream is open.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Level is the peak amplitude of the most recent buffer, in [0, 1].
func (r *Recorder) Level() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level
}

// Duration is the length of the clip recorded so far, in seconds.
func (r *Recorder) Duration() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clip == nil {
		return 0
	}
	return r.clip.Duration()
}

// Stop ends the recording and returns the collected clip. Calling Stop
// when nothing is recording returns an empty clip.
func (r *Recorder) Stop() *Clip {
	r.mu.Lock()
	capture := r.capture
	r.capture = nil
	r.recording = false
	r.mu.Unlock()

	// Stop outside the lock: backends may block until the last callback
	// drains, and callbacks take the lock.
	if capture != nil {
		capture.Stop()
		capture.Close()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	clip := r.clip
	r.clip = nil
	r.level = 0
	if clip == nil {
		clip = NewClip()
	}
	return clip
}
