package analysis

import "errors"

// ErrEmptyImage indicates the request carried no image payload (HTTP 400).
var ErrEmptyImage = errors.New("imageBase64 required")
