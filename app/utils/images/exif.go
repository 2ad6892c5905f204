package images

import (
	"bytes"
	"encoding/binary"
)

const orientationTag = 0x0112

// ParseExifOrientation scans a WebP file for an EXIF orientation tag and
// maps it to the CSS rotation (in degrees) needed to display the image
// upright: 1 → 0, 3 → 180, 6 → 90, 8 → -90. The second return is false when
// the bytes are not a WebP, carry no EXIF chunk, or the chunk is malformed;
// callers treat that as rotation 0.
func ParseExifOrientation(data []byte) (int, bool) {
	exif, ok := webpExifChunk(data)
	if !ok {
		return 0, false
	}
	orientation, ok := tiffOrientation(exif)
	if !ok {
		return 0, false
	}
	switch orientation {
	case 1:
		return 0, true
	case 3:
		return 180, true
	case 6:
		return 90, true
	case 8:
		return -90, true
	}
	return 0, false
}

// webpExifChunk walks the RIFF container and returns the payload of the
// EXIF chunk if one exists.
func webpExifChunk(data []byte) ([]byte, bool) {
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		return nil, false
	}
	off := 12
	for off+8 <= len(data) {
		fourCC := data[off : off+4]
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		payloadStart := off + 8
		if size < 0 || payloadStart+size > len(data) {
			return nil, false
		}
		if bytes.Equal(fourCC, []byte("EXIF")) {
			return data[payloadStart : payloadStart+size], true
		}
		// chunks are padded to even length
		off = payloadStart + size + (size & 1)
	}
	return nil, false
}

// tiffOrientation reads the orientation tag from a TIFF blob (optionally
// prefixed with the "Exif\0\0" header).
func tiffOrientation(data []byte) (uint16, bool) {
	if bytes.HasPrefix(data, []byte("Exif\x00\x00")) {
		data = data[6:]
	}
	if len(data) < 8 {
		return 0, false
	}

	var order binary.ByteOrder
	switch {
	case bytes.Equal(data[0:2], []byte("II")):
		order = binary.LittleEndian
	case bytes.Equal(data[0:2], []byte("MM")):
		order = binary.BigEndian
	default:
		return 0, false
	}
	if order.Uint16(data[2:4]) != 42 {
		return 0, false
	}

	ifdOffset := int(order.Uint32(data[4:8]))
	if ifdOffset < 0 || ifdOffset+2 > len(data) {
		return 0, false
	}
	count := int(order.Uint16(data[ifdOffset : ifdOffset+2]))
	entryStart := ifdOffset + 2
	for i := 0; i < count; i++ {
		off := entryStart + i*12
		if off+12 > len(data) {
			return 0, false
		}
		tag := order.Uint16(data[off : off+2])
		if tag != orientationTag {
			continue
		}
		typ := order.Uint16(data[off+2 : off+4])
		if typ != 3 { // SHORT
			return 0, false
		}
		return order.Uint16(data[off+8 : off+10]), true
	}
	return 0, false
}
