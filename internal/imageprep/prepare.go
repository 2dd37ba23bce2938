package imageprep

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding for uploaded screenshots

	"github.com/apex/log"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
)

const (
	// MaxDimension clamps the longer side of the uploaded photo.
	MaxDimension = 1280
	// Quality of the re-encoded JPEG payload.
	Quality = 90
)

// Prepared is the transport-ready form of an uploaded image: the base64
// JPEG payload (no data-URI prefix) plus the final pixel dimensions.
type Prepared struct {
	Base64 string
	Width  int
	Height int
}

// DataURI returns the payload as a JPEG data URI for previews.
func (p *Prepared) DataURI() string {
	return "data:image/jpeg;base64," + p.Base64
}

// Prepare decodes the raw upload, corrects EXIF orientation, downscales so
// the longer side is at most MaxDimension (aspect preserved, smaller images
// untouched) and re-encodes as a quality-bounded JPEG. Decode failures
// propagate to the caller; there is nothing to retry.
func Prepare(data []byte) (*Prepared, error) {
	return PrepareLimit(data, MaxDimension)
}

// PrepareLimit is Prepare with an explicit dimension limit.
func PrepareLimit(data []byte, limit int) (*Prepared, error) {
	orientation := imageOrientation(data)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if orientation != 1 {
		img = correctOrientation(img, orientation)
		log.WithField("orientation", orientation).Debug("applied orientation correction")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	targetW, targetH := width, height
	if width > limit || height > limit {
		if width >= height {
			targetW = limit
			targetH = int(float64(height) * float64(limit) / float64(width))
		} else {
			targetH = limit
			targetW = int(float64(width) * float64(limit) / float64(height))
		}
	}

	out := img
	if targetW != width || targetH != height {
		scaled := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
		out = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	log.WithFields(log.Fields{
		"original": fmt.Sprintf("%dx%d", width, height),
		"prepared": fmt.Sprintf("%dx%d", targetW, targetH),
		"bytes":    buf.Len(),
	}).Debug("image prepared")

	return &Prepared{
		Base64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  targetW,
		Height: targetH,
	}, nil
}

// imageOrientation extracts the EXIF orientation, defaulting to 1 when the
// tag is missing or unreadable.
func imageOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}

// correctOrientation bakes the EXIF orientation into the pixels so the
// model never sees a sideways dashboard.
func correctOrientation(img image.Image, orientation int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch orientation {
	case 2: // flip horizontal
		out := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(width-1-x, y, img.At(x, y))
			}
		}
		return out
	case 3: // rotate 180
		out := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(width-1-x, height-1-y, img.At(x, y))
			}
		}
		return out
	case 4: // flip vertical
		out := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(x, height-1-y, img.At(x, y))
			}
		}
		return out
	case 5: // transpose
		out := image.NewRGBA(image.Rect(0, 0, height, width))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(y, x, img.At(x, y))
			}
		}
		return out
	case 6: // rotate 90 clockwise
		out := image.NewRGBA(image.Rect(0, 0, height, width))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(height-1-y, x, img.At(x, y))
			}
		}
		return out
	case 7: // transverse
		out := image.NewRGBA(image.Rect(0, 0, height, width))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(height-1-y, width-1-x, img.At(x, y))
			}
		}
		return out
	case 8: // rotate 90 counter-clockwise
		out := image.NewRGBA(image.Rect(0, 0, height, width))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.Set(y, width-1-x, img.At(x, y))
			}
		}
		return out
	}
	return img
}
