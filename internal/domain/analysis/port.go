package analysis

import "context"

// VisionClient abstracts a vision-language model provider. Implementations
// take the prepared image as a base64 JPEG payload (no data-URI prefix) and
// return the model's raw text reply. Must be safe for concurrent use.
type VisionClient interface {
	AnalyzeImage(ctx context.Context, imageBase64 string) (string, error)
}
