package images

import (
	"encoding/binary"
	"testing"
)

// tiffBlob builds a minimal TIFF with a single IFD0 entry carrying the
// orientation tag.
func tiffBlob(bigEndian bool, orientation uint16) []byte {
	var order binary.AppendByteOrder = binary.LittleEndian
	mark := []byte("II")
	if bigEndian {
		order = binary.BigEndian
		mark = []byte("MM")
	}

	blob := make([]byte, 0, 24)
	blob = append(blob, mark...)
	blob = order.AppendUint16(blob, 42)
	blob = order.AppendUint32(blob, 8) // IFD0 offset
	blob = order.AppendUint16(blob, 1) // entry count
	blob = order.AppendUint16(blob, orientationTag)
	blob = order.AppendUint16(blob, 3) // SHORT
	blob = order.AppendUint32(blob, 1) // value count
	blob = order.AppendUint16(blob, orientation)
	blob = append(blob, 0, 0) // value padding
	return blob
}

// webpFile wraps chunks into a RIFF/WEBP container with even-length padding.
func webpFile(chunks ...[2][]byte) []byte {
	body := []byte("WEBP")
	for _, c := range chunks {
		fourCC, payload := c[0], c[1]
		body = append(body, fourCC...)
		body = binary.LittleEndian.AppendUint32(body, uint32(len(payload)))
		body = append(body, payload...)
		if len(payload)%2 == 1 {
			body = append(body, 0)
		}
	}
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

func TestParseExifOrientationMapsToRotation(t *testing.T) {
	cases := []struct {
		orientation uint16
		want        int
	}{
		{1, 0},
		{3, 180},
		{6, 90},
		{8, -90},
	}
	for _, tc := range cases {
		data := webpFile([2][]byte{[]byte("EXIF"), tiffBlob(false, tc.orientation)})
		got, ok := ParseExifOrientation(data)
		if !ok || got != tc.want {
			t.Errorf("orientation %d: got (%d, %v), want (%d, true)", tc.orientation, got, ok, tc.want)
		}
	}
}

func TestParseExifOrientationBigEndianAndPrefixed(t *testing.T) {
	data := webpFile([2][]byte{[]byte("EXIF"), tiffBlob(true, 6)})
	if got, ok := ParseExifOrientation(data); !ok || got != 90 {
		t.Errorf("big-endian: got (%d, %v), want (90, true)", got, ok)
	}

	prefixed := append([]byte("Exif\x00\x00"), tiffBlob(false, 3)...)
	data = webpFile([2][]byte{[]byte("EXIF"), prefixed})
	if got, ok := ParseExifOrientation(data); !ok || got != 180 {
		t.Errorf("Exif-prefixed: got (%d, %v), want (180, true)", got, ok)
	}
}

func TestParseExifOrientationSkipsLeadingChunks(t *testing.T) {
	// odd-sized chunk before EXIF checks the even-padding walk
	data := webpFile(
		[2][]byte{[]byte("VP8X"), []byte{0x01, 0x02, 0x03}},
		[2][]byte{[]byte("EXIF"), tiffBlob(false, 8)},
	)
	if got, ok := ParseExifOrientation(data); !ok || got != -90 {
		t.Errorf("got (%d, %v), want (-90, true)", got, ok)
	}
}

func TestParseExifOrientationRejectsMalformedInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":           nil,
		"not riff":        []byte("JFIFxxxxWEBP"),
		"not webp":        append([]byte("RIFF\x04\x00\x00\x00"), []byte("WAVE")...),
		"no exif chunk":   webpFile([2][]byte{[]byte("VP8 "), []byte{1, 2, 3, 4}}),
		"truncated tiff":  webpFile([2][]byte{[]byte("EXIF"), []byte("II\x2a\x00")}),
		"bad byte order":  webpFile([2][]byte{[]byte("EXIF"), []byte("XX\x2a\x00\x08\x00\x00\x00")}),
		"chunk overflow":  []byte("RIFF\xff\x00\x00\x00WEBPEXIF\xff\xff\xff\x7f"),
		"unknown mapping": webpFile([2][]byte{[]byte("EXIF"), tiffBlob(false, 5)}),
	}
	for name, data := range cases {
		if got, ok := ParseExifOrientation(data); ok {
			t.Errorf("%s: got (%d, true), want not-ok", name, got)
		}
	}
}
