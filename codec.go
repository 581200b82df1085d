package hdrhistogram

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
)

const (
	encodingCookieBase   = 0x1c849308
	compressedCookieBase = 0x1c849309
	headerSize           = 32
)

func cookieFor(base int32, wordSizeBytes int) uint32 {
	return uint32(base) + uint32(wordSizeBytes)<<4
}

// relevantLength returns the smallest counts-array prefix length that
// covers h's largest recorded value.
func (h *Histogram) relevantLength() int32 {
	n := h.countsIndexFor(h.Max()) + 1
	if n < 1 {
		n = 1
	}
	if n > h.countsLen {
		n = h.countsLen
	}
	return n
}

// EncodedSize returns the number of bytes Encode would currently write.
func (h *Histogram) EncodedSize() int {
	return headerSize + int(h.relevantLength())*h.wordSizeBytes
}

func (h *Histogram) encodeFrame() []byte {
	relevantLen := h.relevantLength()
	buf := make([]byte, headerSize+int(relevantLen)*h.wordSizeBytes)

	binary.BigEndian.PutUint32(buf[0:4], cookieFor(encodingCookieBase, h.wordSizeBytes))
	binary.BigEndian.PutUint32(buf[4:8], uint32(h.significantFigures))
	binary.BigEndian.PutUint64(buf[8:16], uint64(h.lowestTrackableValue))
	binary.BigEndian.PutUint64(buf[16:24], uint64(h.highestTrackableValue))
	binary.BigEndian.PutUint64(buf[24:32], h.counts.total())

	off := headerSize
	for i := int32(0); i < relevantLen; i++ {
		v := h.counts.get(int(i))
		switch h.wordSizeBytes {
		case 2:
			binary.BigEndian.PutUint16(buf[off:off+2], uint16(v))
		case 4:
			binary.BigEndian.PutUint32(buf[off:off+4], uint32(v))
		default:
			binary.BigEndian.PutUint64(buf[off:off+8], v)
		}
		off += h.wordSizeBytes
	}
	return buf
}

// Encode writes h's uncompressed wire frame to w: a 32-byte header
// followed by the smallest counts-array prefix covering the largest
// recorded value, all big-endian.
func (h *Histogram) Encode(w io.Writer) error {
	_, err := w.Write(h.encodeFrame())
	return err
}

// EncodeCompressed writes h's deflate-compressed wire frame to w: an
// 8-byte header (cookie, payload length) followed by a deflate stream of
// a full uncompressed frame.
func (h *Histogram) EncodeCompressed(w io.Writer) error {
	raw := h.encodeFrame()

	var compressed bytes.Buffer
	fw, err := flate.NewWriter(&compressed, flate.DefaultCompression)
	if err != nil {
		return decodeErrorf("constructing deflate writer: %v", err)
	}
	if _, err := fw.Write(raw); err != nil {
		return err
	}
	if err := fw.Close(); err != nil {
		return err
	}

	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], cookieFor(compressedCookieBase, h.wordSizeBytes))
	binary.BigEndian.PutUint32(header[4:8], uint32(compressed.Len()))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(compressed.Bytes())
	return err
}

// Decode reads an uncompressed wire frame from r and constructs a new
// Histogram. minBarForHighest floors the decoded highestTrackableValue,
// letting a caller decode into a histogram at least as wide as one it
// intends to merge this one into later.
func Decode(r io.Reader, minBarForHighest int64) (*Histogram, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErrorf("reading frame: %v", err)
	}
	return decodeFrame(raw, minBarForHighest)
}

// DecodeCompressed reads a deflate-compressed wire frame from r and
// constructs a new Histogram.
func DecodeCompressed(r io.Reader, minBarForHighest int64) (*Histogram, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, decodeErrorf("reading compressed header: %v", err)
	}
	cookie := binary.BigEndian.Uint32(header[0:4])
	if _, err := wordSizeFromCookie(cookie, compressedCookieBase); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(header[4:8])

	fr := flate.NewReader(io.LimitReader(r, int64(length)))
	defer fr.Close()
	raw, err := io.ReadAll(fr)
	if err != nil {
		return nil, decodeErrorf("inflating frame: %v", err)
	}
	return decodeFrame(raw, minBarForHighest)
}

func decodeFrame(raw []byte, minBarForHighest int64) (*Histogram, error) {
	if len(raw) < headerSize {
		return nil, decodeErrorf("frame too short: %d bytes", len(raw))
	}
	header := raw[:headerSize]
	cookie := binary.BigEndian.Uint32(header[0:4])
	wordSizeBytes, err := wordSizeFromCookie(cookie, encodingCookieBase)
	if err != nil {
		return nil, err
	}

	significantFigures := int(binary.BigEndian.Uint32(header[4:8]))
	lowest := int64(binary.BigEndian.Uint64(header[8:16]))
	highest := int64(binary.BigEndian.Uint64(header[16:24]))
	total := binary.BigEndian.Uint64(header[24:32])
	if highest < minBarForHighest {
		highest = minBarForHighest
	}

	h, err := New(lowest, highest, significantFigures, wordSizeOption(wordSizeBytes))
	if err != nil {
		return nil, err
	}

	countsBytes := raw[headerSize:]
	if len(countsBytes)%wordSizeBytes != 0 {
		return nil, decodeErrorf("counts payload length %d is not a multiple of word size %d", len(countsBytes), wordSizeBytes)
	}
	n := len(countsBytes) / wordSizeBytes
	if int32(n) > h.countsLen {
		return nil, decodeErrorf("encoded counts length %d exceeds histogram capacity %d", n, h.countsLen)
	}
	for i := 0; i < n; i++ {
		off := i * wordSizeBytes
		var v uint64
		switch wordSizeBytes {
		case 2:
			v = uint64(binary.BigEndian.Uint16(countsBytes[off : off+2]))
		case 4:
			v = uint64(binary.BigEndian.Uint32(countsBytes[off : off+4]))
		default:
			v = binary.BigEndian.Uint64(countsBytes[off : off+8])
		}
		h.counts.set(i, v)
	}
	// The header's total_count is taken verbatim, not recomputed from the
	// decoded bins, so a frame whose total disagrees with its per-bin sum
	// decodes with the same disagreement (see HasOverflowed).
	h.counts.setTotal(total)
	return h, nil
}

func wordSizeFromCookie(cookie uint32, base int32) (int, error) {
	for _, w := range []int{2, 4, 8} {
		if cookie == cookieFor(base, w) {
			return w, nil
		}
	}
	return 0, decodeErrorf("unrecognized cookie %#x", cookie)
}

func wordSizeOption(w int) Option {
	switch w {
	case 2:
		return WithWordSize(Word16)
	case 4:
		return WithWordSize(Word32)
	default:
		return WithWordSize(Word64)
	}
}
