// Package reviews persists, validates and renders visitor reviews.
package reviews

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"biomae/internal/domain"
	applog "biomae/internal/log"
	"biomae/internal/storage"
	"biomae/internal/validate"
)

const (
	DefaultKey = "biomae_reviews_v1"
	// Capacity is the number of most recent reviews kept.
	Capacity = 20
)

// Store reads and writes the review list under one storage key. It does not
// enforce Capacity; callers truncate before Save.
type Store struct {
	local storage.Local
	key   string
}

func NewStore(local storage.Local, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{local: local, key: key}
}

// Load always yields a list. Missing, unreadable or corrupt data all
// collapse to an empty list; records missing a required field are dropped.
func (s *Store) Load() []domain.Review {
	list, err := s.load()
	if err != nil {
		applog.Debug("review.store.load.fallback", map[string]any{"key": s.key, "err": err.Error()})
		return []domain.Review{}
	}
	return list
}

func (s *Store) load() ([]domain.Review, error) {
	if s.local == nil {
		return nil, storage.ErrUnavailable
	}
	raw, ok, err := s.local.GetItem(s.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []domain.Review{}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode review list: %w", err)
	}
	out := make([]domain.Review, 0, len(items))
	for _, item := range items {
		if r, ok := decodeReview(item); ok {
			out = append(out, r)
		}
	}
	return out, nil
}

type storedReview struct {
	Name      json.RawMessage `json:"name"`
	City      json.RawMessage `json:"city"`
	Rating    json.RawMessage `json:"rating"`
	Message   json.RawMessage `json:"message"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

func decodeReview(raw json.RawMessage) (domain.Review, bool) {
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return domain.Review{}, false
	}
	var sr storedReview
	if err := json.Unmarshal(raw, &sr); err != nil {
		return domain.Review{}, false
	}
	name, ok1 := text(sr.Name)
	city, ok2 := text(sr.City)
	msg, ok3 := text(sr.Message)
	rating, ok4 := rating(sr.Rating)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return domain.Review{}, false
	}
	return domain.Review{
		Name:      name,
		City:      city,
		Rating:    rating,
		Message:   msg,
		CreatedAt: millis(sr.CreatedAt),
	}, true
}

func text(raw json.RawMessage) (string, bool) {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	s = validate.Text(s)
	return s, s != ""
}

// rating accepts a number or a numeric string. Zero and the empty string
// count as missing.
func rating(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f == 0 {
			return 0, false
		}
		return validate.RatingNumber(f), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return validate.Rating(s), true
	}
	return 0, false
}

func millis(raw json.RawMessage) int64 {
	var f float64
	if len(raw) > 0 && json.Unmarshal(raw, &f) == nil {
		return int64(f)
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// Save overwrites the stored list.
func (s *Store) Save(list []domain.Review) error {
	if s.local == nil {
		return storage.ErrUnavailable
	}
	if list == nil {
		list = []domain.Review{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode review list: %w", err)
	}
	if err := s.local.SetItem(s.key, string(b)); err != nil {
		return fmt.Errorf("save review list: %w", err)
	}
	return nil
}
