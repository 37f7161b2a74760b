package speech

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Format describes interleaved little-endian PCM.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// GeminiFormat is what the Gemini TTS models emit: 24 kHz mono 16-bit.
var GeminiFormat = Format{SampleRate: 24000, Channels: 1, BitsPerSample: 16}

func (f Format) blockAlign() int { return f.Channels * f.BitsPerSample / 8 }

// Duration returns the play time of n bytes of PCM, in seconds.
func (f Format) Duration(n int) float64 {
	if f.SampleRate == 0 || f.blockAlign() == 0 {
		return 0
	}
	return float64(n/f.blockAlign()) / float64(f.SampleRate)
}

// EncodeWAV wraps pcm in a canonical 44-byte RIFF/WAVE header.
func EncodeWAV(pcm []byte, f Format) ([]byte, error) {
	if f.SampleRate <= 0 || f.Channels <= 0 || f.BitsPerSample <= 0 || f.BitsPerSample%8 != 0 {
		return nil, fmt.Errorf("invalid pcm format %+v", f)
	}
	if len(pcm)%f.blockAlign() != 0 {
		return nil, fmt.Errorf("pcm length %d is not a multiple of frame size %d", len(pcm), f.blockAlign())
	}

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	le := binary.LittleEndian
	buf.WriteString("RIFF")
	binary.Write(&buf, le, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, le, uint32(16)) // PCM chunk size
	binary.Write(&buf, le, uint16(1))  // linear PCM
	binary.Write(&buf, le, uint16(f.Channels))
	binary.Write(&buf, le, uint32(f.SampleRate))
	binary.Write(&buf, le, uint32(f.SampleRate*f.blockAlign()))
	binary.Write(&buf, le, uint16(f.blockAlign()))
	binary.Write(&buf, le, uint16(f.BitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, le, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes(), nil
}
