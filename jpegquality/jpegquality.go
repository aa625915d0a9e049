// Package jpegquality estimates quality level used to encode a JPEG image by
// comparing its quantization tables with the standard ones from Annex K of
// the JPEG specification. Estimate is what libjpeg would call "quality" - a
// number between 1 and 100.
package jpegquality

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

var (
	ErrInvalidJPEG  = errors.New("invalid JPEG header")
	ErrWrongTable   = errors.New("wrong size for quantization table")
	ErrShortSegment = errors.New("short segment length")
	ErrShortDQT     = errors.New("section DQT is too short")
)

const (
	markerSOI = 0xffd8
	markerEOI = 0xffd9
	markerSOS = 0xffda
	markerDQT = 0xffdb
)

// stdLuminance is the example luminance quantization table from Annex K,
// reference for quality estimation.
var stdLuminance = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

type jpegReader struct {
	rs      io.ReadSeeker
	quality int
}

// New reads JPEG data from rs (seeking to the beginning first, so the same
// reader could be examined multiple times) and detects its quality level.
func New(rs io.ReadSeeker) (*jpegReader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	jr := &jpegReader{rs: rs}
	if jr.readMarker() != markerSOI {
		return nil, ErrInvalidJPEG
	}

	q, err := jr.readQuality()
	if err != nil {
		return nil, err
	}
	jr.quality = q
	return jr, nil
}

// NewWithBytes detects quality level of in-memory JPEG data.
func NewWithBytes(data []byte) (*jpegReader, error) {
	return New(bytes.NewReader(data))
}

// Quality returns detected JPEG quality level, between 1 and 100.
func (jr *jpegReader) Quality() int {
	return jr.quality
}

// readMarker reads next JPEG marker, returns 0 when marker cannot be read.
func (jr *jpegReader) readMarker() int {
	var buf [2]byte
	if _, err := io.ReadFull(jr.rs, buf[:]); err != nil {
		return 0
	}
	if buf[0] != 0xff {
		return 0
	}
	// skip optional fill bytes before the marker code
	for buf[1] == 0xff {
		if _, err := io.ReadFull(jr.rs, buf[1:]); err != nil {
			return 0
		}
	}
	return int(binary.BigEndian.Uint16(buf[:]))
}

// readQuality scans marker segments until the first DQT and estimates quality
// from its luminance table.
func (jr *jpegReader) readQuality() (int, error) {
	for {
		marker := jr.readMarker()
		switch marker {
		case 0:
			return 0, ErrInvalidJPEG
		case markerEOI, markerSOS:
			// entropy coded data follows SOS, quantization tables always
			// come before it
			return 0, ErrShortDQT
		}

		var length uint16
		if err := binary.Read(jr.rs, binary.BigEndian, &length); err != nil {
			return 0, ErrShortSegment
		}
		if length < 2 {
			return 0, ErrShortSegment
		}

		payload := make([]byte, length-2)
		if _, err := io.ReadFull(jr.rs, payload); err != nil {
			return 0, ErrShortSegment
		}

		if marker != markerDQT {
			continue
		}
		return qualityFromDQT(payload)
	}
}

// qualityFromDQT estimates quality from the first quantization table in a DQT
// segment payload. Estimation inverts libjpeg scaling of the standard table:
// scale = 5000/q for q < 50 and 200-2q otherwise. Comparing table sums keeps
// the estimate independent of coefficient order.
func qualityFromDQT(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, ErrShortDQT
	}

	precision := data[0] >> 4
	table := data[1:]

	var sum int
	switch precision {
	case 0:
		if len(table) < 64 {
			return 0, ErrWrongTable
		}
		for _, v := range table[:64] {
			sum += int(v)
		}
	case 1:
		if len(table) < 128 {
			return 0, ErrWrongTable
		}
		for i := range 64 {
			sum += int(binary.BigEndian.Uint16(table[2*i:]))
		}
	default:
		return 0, ErrWrongTable
	}

	var stdSum int
	for _, v := range stdLuminance {
		stdSum += v
	}

	scale := float64(sum) * 100.0 / float64(stdSum)
	var q float64
	if scale <= 100 {
		q = (200 - scale) / 2
	} else {
		q = 5000 / scale
	}
	return max(1, min(100, int(math.Round(q)))), nil
}
