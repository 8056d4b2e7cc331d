package transcriber

import (
	"context"

	"github.com/bdurukan/texxteditor/audio"
)

// Fake returns a canned transcript (or error) without any network. The
// empty-clip short-circuit matches the real client so offline runs behave
// the same.
type Fake struct {
	Text string
	Err  error

	// Calls counts Transcribe invocations, including those made through
	// ProcessClip.
	Calls int
}

func NewFake(text string, err error) *Fake {
	return &Fake{Text: text, Err: err}
}

func (f *Fake) Transcribe(_ context.Context, _ []byte) (*Result, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return &Result{Text: f.Text}, nil
}

func (f *Fake) ProcessClip(ctx context.Context, clip *audio.Clip) (*Result, error) {
	if clip.Empty() {
		return &Result{}, nil
	}
	return f.Transcribe(ctx, clip.Bytes())
}
