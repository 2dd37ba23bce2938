package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	analysis "github.com/checkmycar/checkmycar/internal/domain/analysis"
	domain "github.com/checkmycar/checkmycar/internal/domain/history"
)

// Service implements use-cases untuk riwayat dan profil lokal.
type Service struct {
	Store domain.Store
	Clock Clock
}

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func NewService(store domain.Store) *Service {
	return &Service{Store: store, Clock: SystemClock{}}
}

// Append prepends one analysis result to the local history (newest first)
// and rewrites the stored list as a whole.
func (s *Service) Append(ctx context.Context, fileName, preview string, res analysis.Result) (domain.Entry, error) {
	entry := domain.Entry{
		ID:       uuid.New().String(),
		FileName: fileName,
		Preview:  preview,
		Detected: res.Title,
		Code:     string(res.Code),
		Source:   string(res.Source),
		At:       s.Clock.Now(),
	}

	entries, err := s.Store.LoadHistory(ctx)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("load history: %w", err)
	}
	entries = append([]domain.Entry{entry}, entries...)
	if err := s.Store.SaveHistory(ctx, entries); err != nil {
		return domain.Entry{}, fmt.Errorf("save history: %w", err)
	}
	return entry, nil
}

// List returns the stored history, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	return s.Store.LoadHistory(ctx)
}

// Clear drops all history entries.
func (s *Service) Clear(ctx context.Context) error {
	return s.Store.SaveHistory(ctx, nil)
}

// Login is the local auth stub: it records the profile fields and flips the
// authed flag. Signing up requires a car model; nothing is validated
// server-side because there is no server side to auth against.
func (s *Service) Login(ctx context.Context, email, carModel string, signup bool) (domain.Profile, error) {
	if signup && carModel == "" {
		return domain.Profile{}, fmt.Errorf("car model is required to sign up")
	}
	p := domain.Profile{Email: email, CarModel: carModel, Authed: true}
	if err := s.Store.SaveProfile(ctx, p); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// Logout clears the authed flag but keeps the profile fields.
func (s *Service) Logout(ctx context.Context) error {
	p, err := s.Store.LoadProfile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	p.Authed = false
	return s.Store.SaveProfile(ctx, p)
}

// Profile returns the stored profile.
func (s *Service) Profile(ctx context.Context) (domain.Profile, error) {
	return s.Store.LoadProfile(ctx)
}
