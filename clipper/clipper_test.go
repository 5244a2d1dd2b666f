package clipper

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateClipValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsInvertedRange", func(t *testing.T) {
		err := CreateClip(ctx, "source.mp4", "out.mp4", Options{StartSeconds: 30, EndSeconds: 10})
		if err == nil {
			t.Fatal("expected error for end before start")
		}
		if !strings.Contains(err.Error(), "invalid clip range") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("RejectsZeroLengthRange", func(t *testing.T) {
		err := CreateClip(ctx, "source.mp4", "out.mp4", Options{StartSeconds: 10, EndSeconds: 10})
		if err == nil {
			t.Fatal("expected error for zero-length clip")
		}
	})

	t.Run("RejectsMissingSource", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "does-not-exist.mp4")
		err := CreateClip(ctx, missing, "out.mp4", Options{StartSeconds: 0, EndSeconds: 5})
		if err == nil {
			t.Fatal("expected error for missing source file")
		}
		if !strings.Contains(err.Error(), "not accessible") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
