package audition

import (
	"encoding/binary"
	"sync"

	"suppression/internal/model"
)

const (
	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample
	pcm16Max       = 32767
)

// Stream feeds the audio player with 16-bit little-endian stereo PCM of the
// source filtered through the comb chain. Read runs on the player's
// goroutine while SetLengths is called from the window update.
type Stream struct {
	mu         sync.Mutex
	model      model.Model
	sampleRate int
	source     Source
	chain      *Chain
	volume     float32
	buf        []float32
}

// NewStream returns a stream for the given stage lengths in meters.
func NewStream(m model.Model, sampleRate int, src Source, lengths []float64, volume float64) *Stream {
	return &Stream{
		model:      m,
		sampleRate: sampleRate,
		source:     src,
		chain:      NewChain(m, lengths, sampleRate),
		volume:     float32(volume),
	}
}

// SetLengths retunes the comb chain to new stage lengths in meters.
func (s *Stream) SetLengths(lengths []float64) {
	s.mu.Lock()
	s.chain.SetLengths(s.model, lengths, s.sampleRate)
	s.mu.Unlock()
}

// Delays returns the current stage delays in samples.
func (s *Stream) Delays() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.chain.Stages))
	for i, st := range s.chain.Stages {
		out[i] = st.Delay()
	}
	return out
}

// Read implements io.Reader. It always produces whole frames.
func (s *Stream) Read(p []byte) (int, error) {
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if cap(s.buf) < frames {
		s.buf = make([]float32, frames)
	}
	buf := s.buf[:frames]
	s.source.Fill(buf)
	s.chain.Process(buf)

	for i, v := range buf {
		sample := int16(clamp(v*s.volume) * pcm16Max)
		base := i * frameBytes
		for ch := 0; ch < channels; ch++ {
			p[base+ch*bytesPerSample] = byte(sample)
			p[base+ch*bytesPerSample+1] = byte(sample >> 8)
		}
	}
	return frames * frameBytes, nil
}

// Close implements io.Closer.
func (s *Stream) Close() error { return nil }

// Render pulls n samples from src through chain.
func Render(src Source, chain *Chain, n int) []float32 {
	out := make([]float32, n)
	src.Fill(out)
	chain.Process(out)
	return out
}

// DecodeStereo16 downmixes 16-bit little-endian stereo PCM, the layout Read
// produces, to mono samples in [-1, 1). A trailing partial frame is ignored.
func DecodeStereo16(pcm []byte) []float32 {
	out := make([]float32, len(pcm)/frameBytes)
	for i := range out {
		frame := pcm[i*frameBytes:]
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += float32(int16(binary.LittleEndian.Uint16(frame[ch*bytesPerSample:])))
		}
		out[i] = sum / channels / (pcm16Max + 1)
	}
	return out
}
