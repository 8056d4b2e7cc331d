//go:build !linux

package audio

import (
	"encoding/hex"
	"fmt"

	"github.com/gen2brain/malgo"
)

// miniaudio backend for macOS and Windows. Device IDs cross the Context
// interface as hex strings and are decoded back right before opening the
// device.

type miniaudioContext struct {
	ctx *malgo.AllocatedContext
}

// NewContext opens the miniaudio backend.
func NewContext() (Context, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("miniaudio init: %w", err)
	}
	return &miniaudioContext{ctx: ctx}, nil
}

func (m *miniaudioContext) Devices() ([]DeviceInfo, error) {
	infos, err := m.ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("miniaudio devices: %w", err)
	}
	devices := make([]DeviceInfo, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, DeviceInfo{
			ID:   hex.EncodeToString(info.ID.Pointer()[:]),
			Name: info.Name(),
		})
	}
	return devices, nil
}

func decodeDeviceID(id string) (malgo.DeviceID, error) {
	raw, err := hex.DecodeString(id)
	if err != nil {
		return malgo.DeviceID{}, fmt.Errorf("invalid device ID %q: %w", id, err)
	}
	var devID malgo.DeviceID
	copy(devID[:], raw)
	return devID, nil
}

func (m *miniaudioContext) NewCapture(device *DeviceInfo, config CaptureConfig, callback DataCallback) (CaptureDevice, error) {
	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = config.Channels
	cfg.SampleRate = config.SampleRate

	if device != nil {
		devID, err := decodeDeviceID(device.ID)
		if err != nil {
			return nil, err
		}
		cfg.Capture.DeviceID = devID.Pointer()
	}

	dev, err := malgo.InitDevice(m.ctx.Context, cfg, malgo.DeviceCallbacks{
		Data: func(_, data []byte, frameCount uint32) {
			callback(data, frameCount)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("miniaudio open capture: %w", err)
	}
	return &miniaudioCapture{device: dev}, nil
}

func (m *miniaudioContext) Close() {
	m.ctx.Uninit()
	m.ctx.Free()
}

type miniaudioCapture struct {
	device *malgo.Device
}

func (c *miniaudioCapture) Start() error {
	return c.device.Start()
}

func (c *miniaudioCapture) Stop() {
	c.device.Stop()
}

func (c *miniaudioCapture) Close() {
	c.device.Uninit()
}
