// Package media validates and compresses product images into data URIs.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode
)

// Defaults match the limits shown on the product form.
const (
	DefaultMaxBytes     = 2 * 1024 * 1024
	DefaultMaxDimension = 1200
)

var (
	ErrUnsupportedType = errors.New("unsupported image type: use JPG, PNG or WebP")
	ErrTooLarge        = errors.New("image is too large even after compression")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Processor applies the size budget.
type Processor struct {
	MaxBytes     int
	MaxDimension int
	Qualities    []int // JPEG qualities tried in order
}

// NewProcessor creates a processor. Zero limits take the defaults.
func NewProcessor(maxBytes, maxDimension int) *Processor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Processor{
		MaxBytes:     maxBytes,
		MaxDimension: maxDimension,
		Qualities:    []int{85, 75, 65, 55, 45},
	}
}

// Result is a processed image.
type Result struct {
	DataURI      string
	ContentType  string
	OriginalSize int
	FinalSize    int
	Compressed   bool
	Width        int
	Height       int
}

// Process checks the file type and, when data exceeds the byte budget,
// shrinks it to fit MaxDimension and re-encodes it as JPEG.
func (p *Processor) Process(filename string, data []byte) (Result, error) {
	ct := http.DetectContentType(data)
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExts[ext] || !allowedTypes[ct] {
		return Result{}, ErrUnsupportedType
	}

	res := Result{ContentType: ct, OriginalSize: len(data), FinalSize: len(data)}
	if len(data) <= p.MaxBytes {
		res.DataURI = DataURI(ct, data)
		return res, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	for _, q := range p.Qualities {
		buf.Reset()
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
			return Result{}, fmt.Errorf("encode image: %w", err)
		}
		if buf.Len() <= p.MaxBytes {
			b := img.Bounds()
			res.ContentType = "image/jpeg"
			res.FinalSize = buf.Len()
			res.Compressed = true
			res.Width, res.Height = b.Dx(), b.Dy()
			res.DataURI = DataURI(res.ContentType, buf.Bytes())
			return res, nil
		}
	}
	return Result{}, fmt.Errorf("%w (%.2f MB)", ErrTooLarge, float64(buf.Len())/1024/1024)
}

// DataURI encodes data as a base64 data URI.
func DataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
