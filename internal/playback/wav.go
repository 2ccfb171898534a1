package playback

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	wavFormatPCM      = 1
	wavFmtChunkMinLen = 16
)

var (
	// ErrInvalidWAV is returned for data that is not a RIFF/WAVE file.
	ErrInvalidWAV = errors.New("invalid WAV data")
	// ErrUnsupportedWAV is returned for WAV files the player cannot output.
	ErrUnsupportedWAV = errors.New("unsupported WAV format")
)

// wavFormat holds the fields of the "fmt " chunk that matter for playback.
type wavFormat struct {
	AudioFormat uint16
	Channels    uint16
	SampleRate  uint32
	BitDepth    uint16
}

// decodeWAV extracts PCM data from a WAV file and converts it to the output
// layout (16-bit, stereo). Mono input is duplicated to both channels.
func decodeWAV(data []byte) ([]byte, error) {
	format, pcm, err := parseWAV(data)
	if err != nil {
		return nil, err
	}

	if format.AudioFormat != wavFormatPCM || format.BitDepth != 16 {
		return nil, fmt.Errorf("%w: format %d with %d bits", ErrUnsupportedWAV, format.AudioFormat, format.BitDepth)
	}

	if format.SampleRate != SampleRate {
		return nil, fmt.Errorf("%w: sample rate %d, want %d", ErrUnsupportedWAV, format.SampleRate, SampleRate)
	}

	switch format.Channels {
	case ChannelCount:
		return pcm[:len(pcm)-len(pcm)%bytesPerFrame], nil
	case 1:
		return monoToStereo(pcm), nil
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWAV, format.Channels)
	}
}

// parseWAV walks the RIFF chunks and returns the format and raw data chunk.
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	var header [12]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: short header", ErrInvalidWAV)
	}

	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, nil, fmt.Errorf("%w: missing RIFF/WAVE signature", ErrInvalidWAV)
	}

	var format *wavFormat

	for {
		var (
			chunkID   [4]byte
			chunkSize uint32
		)

		if _, err := io.ReadFull(reader, chunkID[:]); err != nil {
			return nil, nil, fmt.Errorf("%w: no data chunk", ErrInvalidWAV)
		}

		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, fmt.Errorf("%w: truncated chunk header", ErrInvalidWAV)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if chunkSize < wavFmtChunkMinLen {
				return nil, nil, fmt.Errorf("%w: fmt chunk too small", ErrInvalidWAV)
			}

			chunk := make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, chunk); err != nil {
				return nil, nil, fmt.Errorf("%w: truncated fmt chunk", ErrInvalidWAV)
			}

			format = &wavFormat{
				AudioFormat: binary.LittleEndian.Uint16(chunk[0:2]),
				Channels:    binary.LittleEndian.Uint16(chunk[2:4]),
				SampleRate:  binary.LittleEndian.Uint32(chunk[4:8]),
				BitDepth:    binary.LittleEndian.Uint16(chunk[14:16]),
			}

			if chunkSize%2 == 1 {
				if _, err := reader.Seek(1, io.SeekCurrent); err != nil {
					return nil, nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
				}
			}
		case "data":
			if format == nil {
				return nil, nil, fmt.Errorf("%w: data chunk before fmt chunk", ErrInvalidWAV)
			}

			if int64(chunkSize) > int64(reader.Len()) {
				chunkSize = uint32(reader.Len()) //nolint:gosec // Bounded by the input length.
			}

			pcm := make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, pcm); err != nil {
				return nil, nil, fmt.Errorf("%w: truncated data chunk", ErrInvalidWAV)
			}

			return format, pcm, nil
		default:
			// Chunks are word aligned.
			skip := int64(chunkSize) + int64(chunkSize%2)
			if _, err := reader.Seek(skip, io.SeekCurrent); err != nil {
				return nil, nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
			}
		}
	}
}

func monoToStereo(pcm []byte) []byte {
	samples := len(pcm) / bytesPerSample
	out := make([]byte, 0, samples*bytesPerFrame)

	for i := range samples {
		sample := pcm[i*bytesPerSample : (i+1)*bytesPerSample]
		out = append(out, sample...)
		out = append(out, sample...)
	}

	return out
}

// encodeWAV wraps stereo 16-bit PCM in a minimal WAV container.
func encodeWAV(pcm []byte) []byte {
	var buf bytes.Buffer

	write := func(v any) {
		_ = binary.Write(&buf, binary.LittleEndian, v) //nolint:errcheck // bytes.Buffer writes do not fail.
	}

	buf.WriteString("RIFF")
	write(uint32(36 + len(pcm))) //nolint:gosec // Clip sizes are far below 4GiB.
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	write(uint32(wavFmtChunkMinLen))
	write(uint16(wavFormatPCM))
	write(uint16(ChannelCount))
	write(uint32(SampleRate))
	write(uint32(SampleRate * bytesPerFrame))
	write(uint16(bytesPerFrame))
	write(uint16(bytesPerSample * 8))
	buf.WriteString("data")
	write(uint32(len(pcm))) //nolint:gosec // Clip sizes are far below 4GiB.
	buf.Write(pcm)

	return buf.Bytes()
}
