package speech

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
)

func TestSynthesizeEmptyInputShortCircuits(t *testing.T) {
	svc := NewService(common.NewDefaultConfig(), arbor.NewLogger())

	// No client is ever created for blank input
	assert.Equal(t, "", svc.Synthesize(context.Background(), ""))
	assert.Equal(t, "", svc.Synthesize(context.Background(), "   \n\t"))
	assert.Nil(t, svc.client)
}

func TestEncodeWAVHeader(t *testing.T) {
	pcm := make([]byte, 4800) // 100ms of 24kHz mono 16-bit audio
	wav := encodeWAV(pcm, 24000, 1, 16)

	require.Len(t, wav, 44+len(pcm))

	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(wav[16:20]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]), "PCM format tag")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]), "mono")
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(wav[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestEncodeWAVPreservesSamples(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	wav := encodeWAV(pcm, 24000, 1, 16)
	assert.Equal(t, pcm, wav[44:])
}
