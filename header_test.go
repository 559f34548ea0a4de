package imsz

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func qoiHeader(w, h uint32, channels, colorspace byte) []byte {
	b := []byte(qoiMagic)
	b = binary.BigEndian.AppendUint32(b, w)
	b = binary.BigEndian.AppendUint32(b, h)
	return append(b, channels, colorspace)
}

func psdHeader(version uint16, w, h uint32) []byte {
	b := []byte(psdMagic)
	b = binary.BigEndian.AppendUint16(b, version)
	b = append(b, make([]byte, 6)...)
	b = binary.BigEndian.AppendUint16(b, 3)
	b = binary.BigEndian.AppendUint32(b, h)
	b = binary.BigEndian.AppendUint32(b, w)
	return binary.BigEndian.AppendUint16(b, 8)
}

func xcfHeader(version string, w, h uint32) []byte {
	b := []byte(xcfMagic + version + "\x00")
	b = binary.BigEndian.AppendUint32(b, w)
	b = binary.BigEndian.AppendUint32(b, h)
	return binary.BigEndian.AppendUint32(b, 0)
}

// icoHeader returns an icon directory whose entries hold the given
// width and height bytes.
func icoHeader(sizes ...[2]byte) []byte {
	b := []byte(icoMagic)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(sizes)))
	for _, s := range sizes {
		e := make([]byte, icoDirEntryLen)
		e[0], e[1] = s[0], s[1]
		b = append(b, e...)
	}
	return b
}

func TestFixedHeaders(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
		want ImageInfo
	}{
		{"qoi rgb", qoiHeader(800, 600, 3, 0), ImageInfo{QOI, 800, 600}},
		{"qoi rgba linear", qoiHeader(1, 0xffffffff, 4, 1), ImageInfo{QOI, 1, 0xffffffff}},
		{"psd", psdHeader(1, 1024, 768), ImageInfo{PSD, 1024, 768}},
		{"psb", psdHeader(2, 300000, 5), ImageInfo{PSD, 300000, 5}},
		{"xcf file", xcfHeader("file", 64, 32), ImageInfo{XCF, 64, 32}},
		{"xcf v011", xcfHeader("v011", 65, 33), ImageInfo{XCF, 65, 33}},
		{"ico", icoHeader([2]byte{16, 16}), ImageInfo{ICO, 16, 16}},
		{"ico 256", icoHeader([2]byte{0, 0}), ImageInfo{ICO, 256, 256}},
		{"ico first entry", icoHeader([2]byte{16, 32}, [2]byte{0, 0}), ImageInfo{ICO, 16, 32}},
		{"gif87a", []byte("GIF87a\x40\x01\xf0\x00\x00\x00\x00"), ImageInfo{GIF, 320, 240}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			info, err := DecodeSizeAt(bytes.NewReader(tc.data))
			if err != nil {
				t.Fatal(err)
			}
			if info != tc.want {
				t.Errorf("got %+v, want %+v", info, tc.want)
			}
		})
	}
}

func TestFixedHeaderErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		data   []byte
		format ImageFormat
	}{
		{"qoi channels", qoiHeader(8, 8, 2, 0), QOI},
		{"qoi colorspace", qoiHeader(8, 8, 4, 2), QOI},
		{"qoi zero height", qoiHeader(8, 0, 4, 0), QOI},
		{"psd version", psdHeader(3, 8, 8), PSD},
		{"xcf version", xcfHeader("v1a", 8, 8), XCF},
		{"xcf bare v", xcfHeader("v", 8, 8), XCF},
		{"xcf unterminated", []byte("gimp xcf fileXYZW\x00\x00\x00\x08\x00\x00\x00\x08"), XCF},
		{"xcf no space", []byte("gimp xcf_file\x00\x00\x00\x00\x08\x00\x00\x00\x08"), XCF},
		{"ico empty", append(icoHeader(), make([]byte, icoDirEntryLen)...), ICO},
	} {
		t.Run(tc.name, func(t *testing.T) {
			info, err := DecodeSizeAt(bytes.NewReader(tc.data))
			if Code(err) != ParserErrorCode {
				t.Fatalf("error = %v, want a parse error", err)
			}
			if info.Format != tc.format {
				t.Errorf("format = %v, want %v", info.Format, tc.format)
			}
		})
	}
}

func TestValidXCFVersion(t *testing.T) {
	for v, want := range map[string]bool{
		"file": true,
		"v001": true,
		"v3":   true,
		"v":    false,
		"v01a": false,
		"File": false,
		"":     false,
	} {
		if got := validXCFVersion([]byte(v)); got != want {
			t.Errorf("validXCFVersion(%q) = %v, want %v", v, got, want)
		}
	}
}
