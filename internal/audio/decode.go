package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/exec"
)

// SampleRate is the fixed analysis rate. Every input is decoded to mono at
// this rate before feature extraction, whatever its native format.
const SampleRate = 22050

// DecodePCM decodes up to maxSeconds of audio from path into mono float64
// samples at SampleRate. Decoding is delegated to ffmpeg so any container
// or codec ffmpeg understands works; maxSeconds <= 0 decodes everything.
func DecodePCM(ctx context.Context, ffmpegPath, path string, maxSeconds int) ([]float64, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	args := []string{
		"-hide_banner", "-v", "error",
		"-i", path,
	}
	if maxSeconds > 0 {
		args = append(args, "-t", fmt.Sprintf("%d", maxSeconds))
	}
	args = append(args,
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", SampleRate),
		"-f", "f32le",
		"pipe:1",
	)

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	var out bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode failed: %w (%s)", err, bytes.TrimSpace(errBuf.Bytes()))
	}

	raw := out.Bytes()
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("ffmpeg produced a truncated stream (%d bytes)", len(raw))
	}
	samples := make([]float64, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		samples[i] = float64(math.Float32frombits(bits))
	}
	return samples, nil
}
