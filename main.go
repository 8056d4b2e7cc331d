package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/bdurukan/texxteditor/audio"
	"github.com/bdurukan/texxteditor/log"
	"github.com/bdurukan/texxteditor/settings"
	"github.com/bdurukan/texxteditor/transcriber"
)

var version = "dev"

func main() {
	statsPath := flag.String("stats", "", "print document statistics for a text file")
	findQuery := flag.String("find", "", "with -stats: list matches of this query")
	findCase := flag.Bool("case", false, "with -find: match case")
	transcribePath := flag.String("transcribe", "", "transcribe an existing WAV file")
	record := flag.Bool("record", false, "record from the microphone and transcribe")
	deviceName := flag.String("device", "", "capture device name substring")
	listDevices := flag.Bool("list-devices", false, "list capture devices and exit")
	copyOut := flag.Bool("copy", false, "copy the transcript to the clipboard")
	fakeText := flag.String("fake", "", "skip the network and return this transcript")
	configDir := flag.String("config", "", "settings directory (default ~/.texxteditor)")
	logPath := flag.String("logpath", "", "log directory")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("texxteditor", version)
		return
	}

	if dir, err := log.ResolveDir(*logPath); err == nil {
		log.SetDir(dir)
		if err := log.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
	}
	defer log.Close()

	mgr, err := settings.Load(*configDir)
	if err != nil {
		fatal("loading settings: %v", err)
	}

	switch {
	case *listDevices:
		if err := runListDevices(); err != nil {
			fatal("%v", err)
		}
	case *statsPath != "":
		if err := runStats(*statsPath, *findQuery, *findCase, mgr); err != nil {
			fatal("%v", err)
		}
	case *transcribePath != "":
		if err := runTranscribe(*transcribePath, newService(mgr, *fakeText), *copyOut); err != nil {
			fatal("%v", err)
		}
	case *record:
		if err := runRecord(*deviceName, newService(mgr, *fakeText), *copyOut); err != nil {
			fatal("%v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Error(msg)
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}

// newService picks the real client or the offline fake.
func newService(mgr *settings.Manager, fakeText string) transcriber.Service {
	if fakeText != "" {
		return transcriber.NewFake(fakeText, nil)
	}
	return transcriber.NewClient(mgr)
}

func runListDevices() error {
	ctx, err := audio.NewContext()
	if err != nil {
		return fmt.Errorf("opening audio backend: %w", err)
	}
	defer ctx.Close()

	devices, err := ctx.Devices()
	if err != nil {
		return fmt.Errorf("enumerating devices: %w", err)
	}
	if len(devices) == 0 {
		fmt.Println("no capture devices found")
		return nil
	}
	for _, d := range devices {
		fmt.Println(d.Name)
	}
	return nil
}

func runRecord(deviceName string, svc transcriber.Service, copyOut bool) error {
	actx, err := audio.NewContext()
	if err != nil {
		return fmt.Errorf("opening audio backend: %w", err)
	}
	defer actx.Close()

	device, err := selectDevice(actx, deviceName)
	if err != nil {
		return err
	}

	rec := audio.NewRecorder(actx, device)
	if err := rec.Start(); err != nil {
		return err
	}
	log.Info("recording started")

	proceed := waitForStop(rec)

	clip := rec.Stop()
	log.Infof("recording stopped: %.1fs", clip.Duration())

	if !proceed {
		fmt.Println("recording discarded")
		return nil
	}

	if clip.Empty() {
		fmt.Println("nothing recorded")
		return nil
	}

	result, err := svc.ProcessClip(context.Background(), clip)
	if err != nil {
		return err
	}
	logResult(result, clip.Duration(), len(clip.Bytes()))
	return emitTranscript(result.Text, copyOut)
}

func runTranscribe(path string, svc transcriber.Service, copyOut bool) error {
	wavBytes, duration, err := readWavFile(path)
	if err != nil {
		return err
	}

	result, err := svc.Transcribe(context.Background(), wavBytes)
	if err != nil {
		return err
	}
	logResult(result, duration, len(wavBytes))
	return emitTranscript(result.Text, copyOut)
}

func logResult(result *transcriber.Result, audioSeconds float64, wavBytes int) {
	if result.Metrics == nil {
		return
	}
	m := result.Metrics
	log.Transcription(log.TranscriptionMetrics{
		AudioLengthS: audioSeconds,
		WavKB:        float64(wavBytes) / 1024,
		DNSTimeMs:    float64(m.DNS.Milliseconds()),
		TLSTimeMs:    float64(m.TLS.Milliseconds()),
		TTFBMs:       float64(m.TTFB.Milliseconds()),
		TotalTimeMs:  float64(m.Total.Milliseconds()),
		ConnReused:   m.ConnReused,
	})
}

func emitTranscript(text string, copyOut bool) error {
	if text == "" {
		fmt.Println("(no speech detected)")
		return nil
	}

	fmt.Println(text)
	log.TranscriptionText(text)

	if copyOut {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "copied to clipboard")
	}
	return nil
}
