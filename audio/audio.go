// Package audio holds the recorded-clip model and microphone capture
// backends (PulseAudio on Linux, miniaudio elsewhere).
package audio

const (
	// DefaultSampleRate is the capture rate handed to the transcription API.
	DefaultSampleRate = 16000
	// DefaultChannels is mono capture.
	DefaultChannels = 1
	// DefaultSampleWidth is bytes per sample (signed 16-bit PCM).
	DefaultSampleWidth = 2
)

// Clip is a bounded sequence of raw PCM frames plus the format they share.
// An empty clip is valid. Construct clips with NewClip or fill every
// format field.
type Clip struct {
	Frames      [][]byte
	Channels    int
	SampleWidth int // bytes per sample
	SampleRate  int
}

// NewClip returns an empty clip with the default capture format.
func NewClip() *Clip {
	return &Clip{
		Channels:    DefaultChannels,
		SampleWidth: DefaultSampleWidth,
		SampleRate:  DefaultSampleRate,
	}
}

// Append adds one frame buffer in arrival order.
func (c *Clip) Append(frame []byte) {
	c.Frames = append(c.Frames, frame)
}

// Empty reports whether no frames were recorded.
func (c *Clip) Empty() bool {
	return len(c.Frames) == 0
}

func (c *Clip) totalBytes() int {
	total := 0
	for _, f := range c.Frames {
		total += len(f)
	}
	return total
}

// Bytes concatenates every frame in input order.
func (c *Clip) Bytes() []byte {
	out := make([]byte, 0, c.totalBytes())
	for _, f := range c.Frames {
		out = append(out, f...)
	}
	return out
}

// Duration is the clip length in seconds, derived from the byte count and
// the stated format.
func (c *Clip) Duration() float64 {
	bytesPerSecond := c.SampleRate * c.Channels * c.SampleWidth
	if bytesPerSecond == 0 {
		return 0
	}
	return float64(c.totalBytes()) / float64(bytesPerSecond)
}

// DataCallback receives raw PCM from a capture device.
type DataCallback func(data []byte, frameCount uint32)

// CaptureConfig selects the capture format.
type CaptureConfig struct {
	SampleRate uint32
	Channels   uint32
}

// DeviceInfo identifies an input device.
type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

// Context enumerates devices and opens captures. Implementations are the
// platform backends and the fake used in tests.
type Context interface {
	Devices() ([]DeviceInfo, error)
	NewCapture(device *DeviceInfo, config CaptureConfig, callback DataCallback) (CaptureDevice, error)
	Close()
}

// CaptureDevice is a started/stopped microphone stream.
type CaptureDevice interface {
	Start() error
	Stop()
	Close()
}
