package audio

import "sync"

// FakeContext synthesizes capture data without touching hardware. Used by
// tests and the CLI's offline mode.
type FakeContext struct {
	pcm       []byte
	chunkSize int
}

// NewFakeContext feeds pcm to captures in chunkSize slices as soon as they
// start.
func NewFakeContext(pcm []byte, chunkSize int) *FakeContext {
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	return &FakeContext{pcm: pcm, chunkSize: chunkSize}
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{{ID: "fake", Name: "fake microphone"}}, nil
}

func (f *FakeContext) NewCapture(_ *DeviceInfo, _ CaptureConfig, callback DataCallback) (CaptureDevice, error) {
	return &fakeCapture{pcm: f.pcm, chunkSize: f.chunkSize, callback: callback}, nil
}

func (f *FakeContext) Close() {}

type fakeCapture struct {
	pcm       []byte
	chunkSize int
	callback  DataCallback

	mu      sync.Mutex
	started bool
}

// Start delivers the whole buffer synchronously. Callers observe a complete
// clip the moment Start returns, which keeps tests deterministic.
func (c *fakeCapture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}
	c.started = true

	for pos := 0; pos < len(c.pcm); pos += c.chunkSize {
		end := min(pos+c.chunkSize, len(c.pcm))
		chunk := c.pcm[pos:end]
		c.callback(chunk, uint32(len(chunk)/DefaultSampleWidth))
	}
	return nil
}

func (c *fakeCapture) Stop()  {}
func (c *fakeCapture) Close() {}
