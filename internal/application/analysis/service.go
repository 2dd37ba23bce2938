package analysis

import (
	"context"

	domain "github.com/checkmycar/checkmycar/internal/domain/analysis"
)

// Service implements the analyze use-case. Stateless and request-scoped:
// nothing is mutated across calls, so concurrent requests are safe by
// construction.
type Service struct {
	// Client is nil when no provider credentials were configured; the
	// service then answers in demo mode instead of calling upstream.
	Client domain.VisionClient
}

func NewService(client domain.VisionClient) *Service {
	return &Service{Client: client}
}

// Configured reports whether a real provider is wired in.
func (s *Service) Configured() bool {
	return s.Client != nil
}

// Analyze runs one image through the provider and normalizes the reply.
//
// With no provider configured it returns the fixed demo result — a valid
// success, not an error. Upstream failures are returned as-is; the HTTP
// layer turns them into a 500. No retries.
func (s *Service) Analyze(ctx context.Context, imageBase64 string) (domain.Result, error) {
	if imageBase64 == "" {
		return domain.Result{}, domain.ErrEmptyImage
	}
	if s.Client == nil {
		return domain.DemoResult(), nil
	}

	raw, err := s.Client.AnalyzeImage(ctx, imageBase64)
	if err != nil {
		return domain.Result{}, err
	}

	out := domain.Normalize(raw)
	out.Source = domain.SourceAI
	return out, nil
}
