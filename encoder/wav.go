// Package encoder packages raw PCM frames into an uncompressed WAV
// container. The remote transcription API accepts audio/wav only, and the
// container must reproduce the input frames byte for byte.
package encoder

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bdurukan/texxteditor/audio"
)

const headerSize = 44

// WavEncoder streams frames into an in-memory RIFF/WAVE container. Blocks
// are appended with EncodeBlock; Close patches the chunk sizes. Bytes is
// only valid after Close.
type WavEncoder struct {
	buf        bytes.Buffer
	channels   int
	width      int // bytes per sample
	sampleRate int
	dataBytes  uint32
	closed     bool
}

// NewWav starts a container for the given format. Channel count, sample
// width (bytes), and sample rate must all be positive.
func NewWav(channels, sampleWidth, sampleRate int) (*WavEncoder, error) {
	if channels <= 0 || sampleWidth <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("invalid wav format: channels=%d width=%d rate=%d",
			channels, sampleWidth, sampleRate)
	}

	e := &WavEncoder{channels: channels, width: sampleWidth, sampleRate: sampleRate}
	e.writeHeader()
	return e, nil
}

// writeHeader emits the 44-byte PCM header with zeroed sizes; Close fills
// them in once the data length is known.
func (e *WavEncoder) writeHeader() {
	byteRate := e.sampleRate * e.channels * e.width
	blockAlign := e.channels * e.width

	e.buf.WriteString("RIFF")
	binary.Write(&e.buf, binary.LittleEndian, uint32(0)) // patched in Close
	e.buf.WriteString("WAVE")

	e.buf.WriteString("fmt ")
	binary.Write(&e.buf, binary.LittleEndian, uint32(16))
	binary.Write(&e.buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&e.buf, binary.LittleEndian, uint16(e.channels))
	binary.Write(&e.buf, binary.LittleEndian, uint32(e.sampleRate))
	binary.Write(&e.buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&e.buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&e.buf, binary.LittleEndian, uint16(e.width*8))

	e.buf.WriteString("data")
	binary.Write(&e.buf, binary.LittleEndian, uint32(0)) // patched in Close
}

// EncodeBlock appends one frame buffer verbatim.
func (e *WavEncoder) EncodeBlock(frame []byte) error {
	if e.closed {
		return fmt.Errorf("wav encoder already closed")
	}
	e.buf.Write(frame)
	e.dataBytes += uint32(len(frame))
	return nil
}

// Close finalizes the RIFF and data chunk sizes.
func (e *WavEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	b := e.buf.Bytes()
	binary.LittleEndian.PutUint32(b[4:], 36+e.dataBytes)
	binary.LittleEndian.PutUint32(b[40:], e.dataBytes)
	return nil
}

// Bytes returns the complete container. Valid only after Close.
func (e *WavEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// TotalFrames is the number of sample frames written so far.
func (e *WavEncoder) TotalFrames() uint64 {
	return uint64(e.dataBytes) / uint64(e.channels*e.width)
}

// EncodeClip packages a whole clip in one shot using the clip's format
// metadata.
func EncodeClip(clip *audio.Clip) ([]byte, error) {
	enc, err := NewWav(clip.Channels, clip.SampleWidth, clip.SampleRate)
	if err != nil {
		return nil, err
	}
	for _, frame := range clip.Frames {
		if err := enc.EncodeBlock(frame); err != nil {
			return nil, err
		}
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}
