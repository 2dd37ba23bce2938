package analysis

import (
	"encoding/json"
	"strings"
)

// Normalize converts the model's free-form reply into well-formed result
// fields. The reply is expected to be a JSON object but may be wrapped in
// prose or be outright garbage; all parse failures are absorbed into the
// defaulting policy below. Never returns an error.
//
// Defaulting is applied per-field, so one malformed field does not discard
// the others:
//   - code:  any non-empty string passes through, else INFO. Membership in
//     the advertised code set is NOT checked here; the enumeration is only
//     advisory in the prompt.
//   - title: non-empty string passes through, else the fixed default.
//   - steps: used only when it is a list of exactly StepCount strings;
//     partial lists are discarded as a whole, never padded or truncated.
func Normalize(raw string) Result {
	parsed := extractObject(raw)

	out := Result{
		Code:  CodeInfo,
		Title: DefaultAITitle,
		Steps: DefaultSteps(),
	}
	if parsed == nil {
		return out
	}
	if code, ok := parsed["code"].(string); ok && code != "" {
		out.Code = Code(code)
	}
	if title, ok := parsed["title"].(string); ok && title != "" {
		out.Title = title
	}
	if steps, ok := stringSteps(parsed["steps"]); ok {
		out.Steps = steps
	}
	return out
}

// extractObject tries a direct parse first, then the substring between the
// first '{' and the last '}' for replies embedded in surrounding prose.
func extractObject(raw string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil
	}
	obj = nil
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err == nil {
		return obj
	}
	return nil
}

// stringSteps accepts the steps value only as a list of exactly StepCount
// strings; anything else is rejected as a unit.
func stringSteps(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok || len(list) != StepCount {
		return nil, false
	}
	steps := make([]string, 0, StepCount)
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		steps = append(steps, s)
	}
	return steps, true
}
