// Package lock holds the reference-counted page lock shared by overlays.
package lock

import "biomae/internal/dom"

// LockedClass is applied to the target while at least one holder exists.
const LockedClass = "modal-open"

// Manager counts holders of the page-locked state. It is confined to the
// event thread and needs no synchronisation.
type Manager struct {
	count  int
	target dom.Element
}

// New returns a manager that toggles LockedClass on target. A nil target is
// allowed; the counter still works.
func New(target dom.Element) *Manager { return &Manager{target: target} }

func (m *Manager) Acquire() {
	m.count++
	if m.count == 1 && m.target != nil {
		m.target.AddClass(LockedClass)
	}
}

// Release drops one holder. It never takes the count below zero.
func (m *Manager) Release() {
	if m.count == 0 {
		return
	}
	m.count--
	if m.count == 0 && m.target != nil {
		m.target.RemoveClass(LockedClass)
	}
}

func (m *Manager) Count() int   { return m.count }
func (m *Manager) Locked() bool { return m.count > 0 }
