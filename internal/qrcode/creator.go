package qrcode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Creator of PNG qr codes for signing and builder URLs.
type Creator struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewCreator ...
// size - default side of image in pixels, 256 if not positive.
func NewCreator(size int) *Creator {
	if size <= 0 {
		size = defaultSize
	}
	return &Creator{
		size:  size,
		level: qrcode.Medium,
	}
}

// Create returns PNG qr code of url. Default size is used if size is not positive.
func (c *Creator) Create(url string, size int) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty url")
	}
	if size <= 0 {
		size = c.size
	}
	return qrcode.Encode(url, c.level, size)
}
