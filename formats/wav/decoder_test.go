// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/pcm"
	"github.com/ik5/audviz/internal/audiotest"
)

// mockWAVReader simulates wav.Decoder.PCMBuffer for testing
type mockWAVReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockWAVReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestOpen_ValidMonoFile(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV16Bytes(8000, 1, []int16{0, 100, 200, -100, -200, 0})

	r, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}

	tracks := r.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("Tracks() len = %d, want 1", len(tracks))
	}

	params := tracks[0].Params
	if params.Codec != audio.CodecPCMS16LE {
		t.Errorf("Codec = %v, want %v", params.Codec, audio.CodecPCMS16LE)
	}

	if params.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", params.SampleRate)
	}

	if params.Channels != 1 {
		t.Errorf("Channels = %d, want 1", params.Channels)
	}

	if params.MaxFramesPerPacket != FramesPerPacket {
		t.Errorf("MaxFramesPerPacket = %d, want %d", params.MaxFramesPerPacket, FramesPerPacket)
	}
}

func TestOpen_StereoFile(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV16Bytes(44100, 2, []int16{100, 200, 300, 400, 500, 600})

	r, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := r.Tracks()[0].Params.Channels; got != 2 {
		t.Errorf("Channels = %d, want 2", got)
	}

	p, err := r.NextPacket()
	if err != nil {
		t.Fatalf("NextPacket() error = %v", err)
	}

	if p.Frames != 3 {
		t.Errorf("Frames = %d, want 3", p.Frames)
	}

	if len(p.Data) != 12 {
		t.Errorf("len(Data) = %d, want 12", len(p.Data))
	}
}

func TestOpen_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "text", data: []byte("This is not a WAV file at all, just text")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Open(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("Open() error = nil, want error")
			}
		})
	}
}

func TestOpen_UnsupportedBitDepthIsNullCodec(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := audiotest.WriteWAV(buf, 8000, 1, 8, []byte{128, 129, 130, 131}); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	r, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := r.Tracks()[0].Params.Codec; got != audio.CodecNull {
		t.Errorf("Codec = %v, want %v", got, audio.CodecNull)
	}
}

func TestOpen_Extensible(t *testing.T) {
	t.Parallel()

	samples := []int32{4194304, -4194304, 2097152, -8388608}

	tests := []struct {
		name      string
		bits      int
		subFormat uint16
		data      []byte
		want      audio.CodecType
	}{
		{name: "pcm 24-bit", bits: 24, subFormat: 1, data: audiotest.PCM24Bytes(samples), want: audio.CodecPCMS24LE},
		{name: "float 32-bit", bits: 32, subFormat: 3, data: make([]byte, 16), want: audio.CodecNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := audiotest.WriteWAVExtensible(buf, 48000, 2, tt.bits, tt.subFormat, tt.data); err != nil {
				t.Fatalf("WriteWAVExtensible() error = %v", err)
			}

			r, err := Open(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			params := r.Tracks()[0].Params
			if params.Codec != tt.want {
				t.Fatalf("Codec = %v, want %v", params.Codec, tt.want)
			}
			if params.Channels != 2 || params.SampleRate != 48000 {
				t.Errorf("spec = %v, want 48000 Hz, 2 ch", params.Spec())
			}
			if tt.want == audio.CodecNull {
				return
			}

			dec, err := pcm.NewDecoder(params)
			if err != nil {
				t.Fatalf("NewDecoder() error = %v", err)
			}

			p, err := r.NextPacket()
			if err != nil {
				t.Fatalf("NextPacket() error = %v", err)
			}

			frame, err := dec.Decode(p)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			left, right := frame.Plane(0), frame.Plane(1)
			if len(left) != 2 || left[0] != 0.5 || left[1] != 0.25 {
				t.Errorf("left = %v, want [0.5 0.25]", left)
			}
			if len(right) != 2 || right[0] != -0.5 || right[1] != -1 {
				t.Errorf("right = %v, want [-0.5 -1]", right)
			}
		})
	}
}

func TestReader_PacketsThenEOF(t *testing.T) {
	t.Parallel()

	frames := FramesPerPacket*2 + 452
	data := audiotest.WAV16Bytes(8000, 1, audiotest.Tone(8000, 1, frames, 440))

	r, err := Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	want := []int{FramesPerPacket, FramesPerPacket, 452}
	for i, w := range want {
		p, err := r.NextPacket()
		if err != nil {
			t.Fatalf("packet %d: NextPacket() error = %v", i, err)
		}

		if p.Frames != w {
			t.Errorf("packet %d: Frames = %d, want %d", i, p.Frames, w)
		}

		if len(p.Data) != w*2 {
			t.Errorf("packet %d: len(Data) = %d, want %d", i, len(p.Data), w*2)
		}
	}

	if _, err := r.NextPacket(); !errors.Is(err, io.EOF) {
		t.Errorf("NextPacket() after last packet error = %v, want io.EOF", err)
	}

	// stays at EOF
	if _, err := r.NextPacket(); !errors.Is(err, io.EOF) {
		t.Errorf("second NextPacket() at EOF error = %v, want io.EOF", err)
	}
}

func TestReader_DecodesThroughPCM(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	r, err := Open(bytes.NewReader(audiotest.WAV16Bytes(8000, 1, samples)))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	dec, err := pcm.NewDecoder(r.Tracks()[0].Params)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	p, err := r.NextPacket()
	if err != nil {
		t.Fatalf("NextPacket() error = %v", err)
	}

	frame, err := dec.Decode(p)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	expected := []float32{0, 0.5, -0.5, 1.0, -1.0}
	got := frame.Plane(0)
	if len(got) != len(expected) {
		t.Fatalf("len(Plane(0)) = %d, want %d", len(got), len(expected))
	}

	for i := range expected {
		if math.Abs(float64(got[i]-expected[i])) > 0.001 {
			t.Errorf("sample[%d] = %v, want ≈%v", i, got[i], expected[i])
		}
	}
}

func TestReader_PCMBufferErrorIsMalformed(t *testing.T) {
	t.Parallel()

	r := &reader{
		dec: &mockWAVReader{err: errors.New("chunk too short")},
		track: audio.Track{Params: audio.CodecParams{
			Codec:    audio.CodecPCMS16LE,
			Channels: 1,
		}},
		metadata: audio.NewMetadataLog(),
		intBuf:   &goaudio.IntBuffer{Data: make([]int, 16)},
	}

	_, err := r.NextPacket()
	if !errors.Is(err, audio.ErrMalformed) {
		t.Errorf("NextPacket() error = %v, want ErrMalformed", err)
	}
}

func TestReader_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	r := &reader{
		dec: &mockWAVReader{samples: []int{1, 2, 3, 4, 5}},
		track: audio.Track{Params: audio.CodecParams{
			Codec:    audio.CodecPCMS16LE,
			Channels: 2,
		}},
		metadata: audio.NewMetadataLog(),
		intBuf:   &goaudio.IntBuffer{Data: make([]int, 16)},
	}

	p, err := r.NextPacket()
	if err != nil {
		t.Fatalf("NextPacket() error = %v", err)
	}

	if p.Frames != 2 {
		t.Errorf("Frames = %d, want 2", p.Frames)
	}
}

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{name: "wave", header: []byte("RIFF\x00\x00\x00\x00WAVEfmt "), want: true},
		{name: "avi", header: []byte("RIFF\x00\x00\x00\x00AVI LIST"), want: false},
		{name: "short", header: []byte("RIFF"), want: false},
		{name: "ogg", header: []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func BenchmarkReader_NextPacket(b *testing.B) {
	data := audiotest.WAV16Bytes(44100, 2, audiotest.Tone(44100, 2, 44100, 440))

	b.ReportAllocs()

	for range b.N {
		r, err := Open(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}

		for {
			if _, err := r.NextPacket(); err != nil {
				break
			}
		}
	}
}
