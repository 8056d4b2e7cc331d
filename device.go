package main

import (
	"fmt"
	"strings"

	"github.com/bdurukan/texxteditor/audio"
)

// selectDevice matches name against the capture device list, nil meaning
// system default. Matching is a case-insensitive substring so "-device usb"
// finds "USB Audio Device".
func selectDevice(ctx audio.Context, name string) (*audio.DeviceInfo, error) {
	if name == "" {
		return nil, nil
	}

	devices, err := ctx.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerating devices: %w", err)
	}

	needle := strings.ToLower(name)
	for i := range devices {
		if strings.Contains(strings.ToLower(devices[i].Name), needle) {
			return &devices[i], nil
		}
	}
	return nil, fmt.Errorf("no capture device matching %q (try -list-devices)", name)
}
