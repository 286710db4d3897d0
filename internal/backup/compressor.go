package backup

import (
	"bytes"
	"errors"
	"fmt"
	"portfolio/internal/backup/interfaces"

	"github.com/klauspost/compress/zstd"
)

// ErrNotCompressed is returned for input that does not start with a zstd
// frame, such as a plain JSON export.
var ErrNotCompressed = errors.New("not a zstd frame")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// maxSnapshotSize bounds the decoded size of a backup file.
const maxSnapshotSize = 64 << 20

// SnapshotCompressor packs whole-store snapshots. They are small and written
// on a schedule, so ratio is favoured over speed and one goroutine is enough.
type SnapshotCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (c *SnapshotCompressor) Compress(doc []byte) ([]byte, error) {
	return c.encoder.EncodeAll(doc, nil), nil
}

func (c *SnapshotCompressor) Decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return nil, ErrNotCompressed
	}
	doc, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("corrupt snapshot frame: %w", err)
	}
	return doc, nil
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderCRC(true),
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxSnapshotSize),
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot decoder: %w", err)
	}
	return &SnapshotCompressor{encoder: encoder, decoder: decoder}, nil
}
