package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerimyeniyildiz/lastmonitor/internal/livefeed"
)

// filterBar is the single-select query-tag selector. Tags come from
// the distinct queries of the last tweets fetch; selecting one
// re-fetches /tweets with that tag.
type filterBar struct {
	tags       []string
	selected   string // "" = all
	filterMode bool
	cursor     int
}

func newFilterBar() filterBar {
	return filterBar{}
}

// setTags replaces the tag list, keeping the current selection if it
// is still present.
func (f *filterBar) setTags(tags []string) {
	f.tags = tags
	if f.selected == "" {
		return
	}
	for _, t := range tags {
		if t == f.selected {
			return
		}
	}
	f.selected = ""
}

// options is the selectable list with the implicit "All" entry first.
func (f *filterBar) options() []string {
	return append([]string{"All"}, f.tags...)
}

// choose selects the option under the cursor.
func (f *filterBar) choose() {
	if f.cursor == 0 {
		f.selected = ""
		return
	}
	if f.cursor-1 < len(f.tags) {
		f.selected = f.tags[f.cursor-1]
	}
}

func (f *filterBar) moveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *filterBar) moveRight() {
	if f.cursor < len(f.tags) {
		f.cursor++
	}
}

func (f *filterBar) activeLabel() string {
	if f.selected == "" {
		return "All"
	}
	return f.selected
}

func (f *filterBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	for i, opt := range f.options() {
		style := tabInactiveStyle
		active := (i == 0 && f.selected == "") || (i > 0 && opt == f.selected)
		if active {
			style = tabActiveStyle
		}
		label := opt
		if f.filterMode && i == f.cursor {
			label = "[" + opt + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}

// categoryBar is the live-view category filter: a kind (all, site,
// place, person) plus a value matched against items. Configured
// shortcut values per kind can be cycled without typing.
type categoryBar struct {
	kinds   []livefeed.FilterKind
	kindIdx int
	value   string
	quick   map[livefeed.FilterKind][]string
}

func newCategoryBar(sites, places, people []string) categoryBar {
	return categoryBar{
		kinds: livefeed.Kinds(),
		quick: map[livefeed.FilterKind][]string{
			livefeed.FilterSite:   sites,
			livefeed.FilterPlace:  places,
			livefeed.FilterPerson: people,
		},
	}
}

func (c *categoryBar) kind() livefeed.FilterKind {
	return c.kinds[c.kindIdx]
}

// cycleKind advances to the next category kind and clears the value.
func (c *categoryBar) cycleKind() {
	c.kindIdx = (c.kindIdx + 1) % len(c.kinds)
	c.value = ""
}

// cycleValue steps through the configured shortcut values for the
// current kind.
func (c *categoryBar) cycleValue() {
	values := c.quick[c.kind()]
	if len(values) == 0 {
		return
	}
	if c.value == "" {
		c.value = values[0]
		return
	}
	for i, v := range values {
		if v == c.value {
			c.value = values[(i+1)%len(values)]
			return
		}
	}
	c.value = values[0]
}

func (c *categoryBar) clear() {
	c.kindIdx = 0
	c.value = ""
}

func (c *categoryBar) filter() livefeed.Filter {
	return livefeed.Filter{Kind: c.kind(), Value: c.value}
}

func (c *categoryBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string
	for i, k := range c.kinds {
		style := tabInactiveStyle
		if i == c.kindIdx {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(string(k)))
	}

	row := parts[0]
	for _, p := range parts[1:] {
		row += sep + p
	}
	if c.value != "" {
		row += "  " + itemSourceStyle.Render(c.value)
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
