package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func sampleAt(buf []byte, frame int) float64 {
	bits := binary.LittleEndian.Uint32(buf[frame*bytesPerFrame:])
	return float64(math.Float32frombits(bits))
}

func peak(buf []byte, from, to int) float64 {
	p := 0.0
	for i := from; i < to; i++ {
		p = math.Max(p, math.Abs(sampleAt(buf, i)))
	}
	return p
}

func TestSynthToneLength(t *testing.T) {
	for kind, burst := range eventTones {
		buf := synthTone(burst, effectGain(50))
		frames := int(burst.duration * SampleRate)
		if len(buf) != frames*bytesPerFrame {
			t.Errorf("%s: %d bytes, expected %d", kind, len(buf), frames*bytesPerFrame)
		}
	}
}

func TestSynthToneDecays(t *testing.T) {
	buf := synthTone(eventTones[core.EventScore], effectGain(100))
	frames := len(buf) / bytesPerFrame
	window := frames / 10

	head := peak(buf, 0, window)
	tail := peak(buf, frames-window, frames)

	if head > 0.3+1e-6 {
		t.Errorf("peak %f exceeds the 0.3 mix gain", head)
	}
	if tail >= head/5 {
		t.Errorf("tone should decay: head %f, tail %f", head, tail)
	}
}

func TestSynthToneSilentAtZeroVolume(t *testing.T) {
	if buf := synthTone(eventTones[core.EventFlap], effectGain(0)); buf != nil {
		t.Errorf("zero volume should produce no samples, got %d bytes", len(buf))
	}
}

func TestSynthTrack(t *testing.T) {
	for id := range trackPatterns {
		if len(synthTrack(id)) == 0 {
			t.Errorf("track %s rendered empty", id)
		}
	}
	if synthTrack("none") != nil {
		t.Error("track none should render nothing")
	}
}

func TestSampleReaderLoops(t *testing.T) {
	r := &sampleReader{data: []byte{1, 2, 3}, loop: true}
	buf := make([]byte, 2)

	var got []byte
	for i := 0; i < 4; i++ {
		n, err := r.Read(buf)
		if err != nil {
			t.Fatalf("looping reader returned %v", err)
		}
		got = append(got, buf[:n]...)
	}
	if string(got[:6]) != string([]byte{1, 2, 3, 1, 2, 3}) {
		t.Errorf("loop output = %v", got)
	}

	once := &sampleReader{data: []byte{1, 2, 3}}
	data, err := io.ReadAll(once)
	if err != nil || len(data) != 3 {
		t.Errorf("one-shot reader = %v, %v", data, err)
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Play(core.Event{Kind: core.EventFlap})
	s.PlayTrack("track1")
	s.SetVolume(10)
	s.StopTrack()
}
