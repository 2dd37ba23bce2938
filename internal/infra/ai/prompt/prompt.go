package prompt

import (
	"fmt"
	"strings"

	"github.com/checkmycar/checkmycar/internal/domain/analysis"
)

// GetSystemPrompt provides strict directions and the JSON schema the model
// must follow. The code enumeration here is advisory only — the normalizer
// does not re-check membership.
func GetSystemPrompt() string {
	labels := make([]string, 0, len(analysis.Labels))
	for _, c := range analysis.Labels {
		labels = append(labels, string(c))
	}

	return fmt.Sprintf(`You are a car dashboard warning light expert.
Return ONLY compact JSON: {"code": "...", "title": "...", "steps": ["...", "...", "..."]}
- code: one of %s (pick the closest; use INFO if unsure)
- title: concise Korean title
- steps: exactly 3 Korean action steps (short imperative sentences).`,
		strings.Join(labels, ", "))
}

// GetUserPrompt is the fixed instruction paired with the image payload.
func GetUserPrompt() string {
	return "Identify visible dashboard warning indicators and respond as JSON."
}

// ImageDataURI wraps the prepared base64 payload as a JPEG data URI, the
// form both providers expect in image_url content blocks.
func ImageDataURI(imageBase64 string) string {
	return "data:image/jpeg;base64," + imageBase64
}
