package audioconv

import (
	"context"
	"os"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParsePCM(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []int16
	}{
		{"empty", nil, []int16{}},
		{"two samples", []byte{0x01, 0x00, 0xFF, 0xFF}, []int16{1, -1}},
		{"odd trailing byte dropped", []byte{0x00, 0x80, 0x7F}, []int16{-32768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePCM(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToPCMDecodeFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	// A binary that always fails stands in for a broken decode.
	conv := NewFFmpegConverter("false", dir, zaptest.NewLogger(t))

	_, err := conv.ToPCM(context.Background(), []byte("not really webm"), "webm")
	if err == nil {
		t.Fatal("expected decode error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir not clean after failure, %d files remain", len(entries))
	}
}
