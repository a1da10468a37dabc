// README: Saved place service used to expand "home"/"work" in ride requests.
package savedplace

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Save stores p for userID under its normalised label.
func (s *Service) Save(ctx context.Context, userID string, p Place) (Place, error) {
	if strings.TrimSpace(userID) == "" {
		return Place{}, fmt.Errorf("%w: user id is required", ErrInvalidPlace)
	}
	if err := p.validate(); err != nil {
		return Place{}, err
	}
	p.Label = NormalizeLabel(p.Label)
	p.Address = strings.TrimSpace(p.Address)
	p.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, userID, p); err != nil {
		return Place{}, fmt.Errorf("save place %s/%s: %w", userID, p.Label, err)
	}
	return p, nil
}

// List returns the user's places ordered by label.
func (s *Service) List(ctx context.Context, userID string) ([]Place, error) {
	places, err := s.store.All(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list places %s: %w", userID, err)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].Label < places[j].Label })
	return places, nil
}

func (s *Service) Get(ctx context.Context, userID, label string) (Place, error) {
	p, ok, err := s.store.Get(ctx, userID, NormalizeLabel(label))
	if err != nil {
		return Place{}, fmt.Errorf("get place %s/%s: %w", userID, label, err)
	}
	if !ok {
		return Place{}, fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, label string) error {
	ok, err := s.store.Remove(ctx, userID, NormalizeLabel(label))
	if err != nil {
		return fmt.Errorf("delete place %s/%s: %w", userID, label, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return nil
}

// Resolve returns the saved address when text names one of the user's
// labels, and text unchanged otherwise.
func (s *Service) Resolve(ctx context.Context, userID, text string) (string, error) {
	if userID == "" {
		return text, nil
	}
	label := NormalizeLabel(text)
	if label == "" {
		return text, nil
	}
	p, ok, err := s.store.Get(ctx, userID, label)
	if err != nil {
		return text, fmt.Errorf("resolve place %s/%s: %w", userID, label, err)
	}
	if !ok {
		return text, nil
	}
	return p.Address, nil
}
