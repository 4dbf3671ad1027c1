package audio

import (
	"encoding/binary"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/block-outrun/vmath"
)

// pcmFrameSize is one 16-bit stereo frame in bytes
const pcmFrameSize = 4

// RenderPCM drains s into 16-bit little-endian stereo PCM, stopping after
// maxSamples frames or when s ends. A nil streamer renders nothing
func RenderPCM(s beep.Streamer, maxSamples int) []byte {
	if s == nil || maxSamples <= 0 {
		return nil
	}

	out := make([]byte, 0, maxSamples*pcmFrameSize)
	buf := make([][2]float64, 512)
	remaining := maxSamples

	for remaining > 0 {
		chunk := buf
		if remaining < len(chunk) {
			chunk = chunk[:remaining]
		}
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	return int16(vmath.Clamp(v, -1, 1) * 32767)
}
