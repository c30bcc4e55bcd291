package page

import (
	"strconv"

	"biomae/internal/dom"
)

// Menu is the collapsible main navigation.
type Menu struct {
	toggle dom.Element
	nav    dom.Element
}

func mountMenu(doc dom.Document) *Menu {
	toggle := doc.Query(".menu-toggle")
	nav := doc.Query(".main-nav")
	if !dom.Present(toggle, nav) {
		return nil
	}
	m := &Menu{toggle: toggle, nav: nav}
	toggle.On("click", func(*dom.Event) { m.Toggle() })
	for _, link := range nav.QueryAll("a") {
		link.On("click", func(*dom.Event) { m.Close() })
	}
	return m
}

func (m *Menu) Toggle() bool {
	open := m.nav.ToggleClass("open")
	m.toggle.SetAttr("aria-expanded", strconv.FormatBool(open))
	return open
}

func (m *Menu) Close() {
	m.nav.RemoveClass("open")
	m.toggle.SetAttr("aria-expanded", "false")
}

func (m *Menu) IsOpen() bool { return m.nav.HasClass("open") }
