// Package storage provides browser-local key/value stores. Each store is
// scoped to one visitor, the way window.localStorage is scoped to one
// browser profile.
package storage

import "errors"

// MaxValueBytes mirrors the per-origin budget browsers give local storage.
const MaxValueBytes = 5 << 20

var (
	ErrUnavailable   = errors.New("storage unavailable")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

type Local interface {
	// GetItem reports ok=false when the key has never been written.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Memory is an in-process Local. Disabled and Quota simulate a browser with
// storage turned off or nearly full.
type Memory struct {
	items    map[string]string
	Disabled bool
	Quota    int
}

func NewMemory() *Memory { return &Memory{items: map[string]string{}} }

func (m *Memory) GetItem(key string) (string, bool, error) {
	if m.Disabled {
		return "", false, ErrUnavailable
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(key, value string) error {
	if m.Disabled {
		return ErrUnavailable
	}
	quota := m.Quota
	if quota <= 0 {
		quota = MaxValueBytes
	}
	if len(value) > quota {
		return ErrQuotaExceeded
	}
	m.items[key] = value
	return nil
}
