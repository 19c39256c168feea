// Package audioconv converts client audio containers into the mono 16kHz
// PCM the transcription adapter expects, by shelling out to ffmpeg.
package audioconv

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arnish-ai/arnish/domain/repositories"
)

const targetSampleRate = 16000

// FFmpegConverter implements repositories.AudioConverter with the ffmpeg
// binary.
type FFmpegConverter struct {
	binary  string
	tempDir string
	logger  *zap.Logger
}

var _ repositories.AudioConverter = (*FFmpegConverter)(nil)

// NewFFmpegConverter creates a converter. Empty binary means "ffmpeg" from
// PATH; empty tempDir means os.TempDir.
func NewFFmpegConverter(binary, tempDir string, logger *zap.Logger) *FFmpegConverter {
	if binary == "" {
		binary = "ffmpeg"
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &FFmpegConverter{
		binary:  binary,
		tempDir: tempDir,
		logger:  logger,
	}
}

// ToPCM decodes the container, resamples to 16kHz, downmixes to mono and
// returns signed 16-bit little-endian samples. Both temp files are removed
// on every exit path; removal failures are logged, not surfaced.
func (f *FFmpegConverter) ToPCM(ctx context.Context, encoded []byte, format string) ([]int16, error) {
	id := uuid.NewString()
	inPath := filepath.Join(f.tempDir, fmt.Sprintf("arnish-%s.%s", id, format))
	outPath := filepath.Join(f.tempDir, fmt.Sprintf("arnish-%s.pcm", id))
	defer f.remove(inPath)
	defer f.remove(outPath)

	if err := os.WriteFile(inPath, encoded, 0o600); err != nil {
		return nil, fmt.Errorf("write input container: %w", err)
	}

	cmd := exec.CommandContext(ctx, f.binary, "-y", "-i", inPath,
		"-ar", fmt.Sprint(targetSampleRate), "-ac", "1", "-f", "s16le", outPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg decode failed: %w: %s", err, output)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read decoded pcm: %w", err)
	}

	return parsePCM(raw), nil
}

func (f *FFmpegConverter) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		f.logger.Warn("Failed to remove temp audio file",
			zap.String("path", path),
			zap.Error(err))
	}
}

// parsePCM interprets raw bytes as little-endian int16 samples. A trailing
// odd byte is dropped.
func parsePCM(raw []byte) []int16 {
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return samples
}
