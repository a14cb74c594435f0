package tui

import (
	"fmt"
	"log"

	list "github.com/charmbracelet/bubbles/list"

	"scatterzoom/internal/colormap"
)

type cmapItem struct {
	title, desc string
}

func (c cmapItem) Title() string       { return c.title }
func (c cmapItem) Description() string { return c.desc }
func (c cmapItem) FilterValue() string { return c.title }

func (m *Model) refreshColorMaps() {
	var items []list.Item
	for _, name := range colormap.Names() {
		items = append(items, cmapItem{title: name, desc: "color map"})
		items = append(items, cmapItem{title: name + "_r", desc: "reversed"})
	}
	m.items = items
	m.l.SetItems(items)
}

// selectCurrentColorMap moves the picker cursor to the active map. The list
// must be sized first.
func (m *Model) selectCurrentColorMap() {
	for i, it := range m.items {
		if it.(cmapItem).title == m.scene.Config.ColorMap {
			m.l.Select(i)
			return
		}
	}
}

// applyColorMap recolors the scene with the named map.
func (m *Model) applyColorMap(name string) {
	s, err := m.scene.WithColorMap(name)
	if err != nil {
		m.status = "color map error: " + err.Error()
		return
	}
	m.setScene(s)
	log.Printf("color map: %s", name)
	m.status = fmt.Sprintf("color map: %s", name)
}
