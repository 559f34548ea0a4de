//go:build heif

package imsz

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/strukturag/libheif/go/heif"
)

func TestAVIFEncoded(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	ctx, err := heif.EncodeFromImage(img, heif.CompressionAV1, 90, heif.LosslessModeDisabled, heif.LoggingLevelNone)
	if err != nil {
		t.Skipf("AVIF encoding not available (libheif may not be built with AV1 support): %v", err)
	}
	name := filepath.Join(t.TempDir(), "image.avif")
	if err := ctx.WriteToFile(name); err != nil {
		t.Fatalf("Failed to write AVIF file: %v", err)
	}
	info, err := DecodeFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if info != (ImageInfo{AVIF, 64, 48}) {
		t.Errorf("got %+v, want avif 64x48", info)
	}
}

// HEIC files share the box layout but carry no AVIF brand.
func TestHEICUnsupported(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	ctx, err := heif.EncodeFromImage(img, heif.CompressionHEVC, 90, heif.LosslessModeDisabled, heif.LoggingLevelNone)
	if err != nil {
		t.Skipf("HEVC encoding not available: %v", err)
	}
	name := filepath.Join(t.TempDir(), "image.heic")
	if err := ctx.WriteToFile(name); err != nil {
		t.Fatalf("Failed to write HEIF file: %v", err)
	}
	if code := Imsz(name, nil); code != UnsupportedErrorCode {
		t.Errorf("Imsz() = %d, want %d", code, UnsupportedErrorCode)
	}
}
