package processor

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// JPEGCompressor decodes an image of any supported format and re-encodes it
// as JPEG at a fixed quality.
type JPEGCompressor struct {
	quality int
}

func New(quality int) *JPEGCompressor {
	return &JPEGCompressor{quality: quality}
}

func (c *JPEGCompressor) Compress(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
