package audio

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// writeWAV writes a minimal mono 16-bit PCM WAV file at SampleRate.
func writeWAV(t *testing.T, path string, samples []float64) {
	t.Helper()

	dataSize := len(samples) * 2
	buf := make([]byte, 44+dataSize)
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], 1) // mono
	binary.LittleEndian.PutUint32(buf[24:28], SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], SampleRate*2)
	binary.LittleEndian.PutUint16(buf[32:34], 2)
	binary.LittleEndian.PutUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[44+i*2:], uint16(int16(s*32767)))
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
}

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
}

func TestDecodePCM(t *testing.T) {
	requireFFmpeg(t)

	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, sineWave(440, 0.5, 0.5))

	samples, err := DecodePCM(context.Background(), "ffmpeg", path, 30)
	if err != nil {
		t.Fatalf("DecodePCM returned error: %v", err)
	}

	wantLen := SampleRate / 2
	if samples == nil || len(samples) < wantLen-1024 || len(samples) > wantLen+1024 {
		t.Fatalf("decoded %d samples, want ~%d", len(samples), wantLen)
	}

	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak < 0.4 || peak > 0.6 {
		t.Errorf("peak amplitude = %.3f, want ~0.5", peak)
	}
}

func TestDecodePCMDurationCap(t *testing.T) {
	requireFFmpeg(t)

	path := filepath.Join(t.TempDir(), "long.wav")
	writeWAV(t, path, sineWave(440, 0.5, 3.0))

	samples, err := DecodePCM(context.Background(), "ffmpeg", path, 1)
	if err != nil {
		t.Fatalf("DecodePCM returned error: %v", err)
	}
	if len(samples) > SampleRate+1024 {
		t.Errorf("decoded %d samples with a 1s cap, want at most ~%d", len(samples), SampleRate)
	}
}

func TestDecodePCMMissingFile(t *testing.T) {
	if _, err := DecodePCM(context.Background(), "ffmpeg", filepath.Join(t.TempDir(), "nope.wav"), 30); err == nil {
		t.Fatal("expected error for missing file")
	}
}
