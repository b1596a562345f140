package leveldata

import (
	"io/fs"
	"strings"
)

// DefaultName is the catalog entry for the default start, which has no layout.
const DefaultName = "default"

// Catalog is the list of layouts a player can pick from. Entry 0 is always
// the default start.
type Catalog struct {
	names   []string
	layouts map[string]*Layout
	index   int
}

// NewCatalog orders the layouts by names, after the default start.
func NewCatalog(layouts map[string]*Layout, names []string) *Catalog {
	c := &Catalog{
		names:   make([]string, 0, len(names)+1),
		layouts: layouts,
	}
	c.names = append(c.names, DefaultName)
	for _, name := range names {
		if _, ok := layouts[name]; ok && name != DefaultName {
			c.names = append(c.names, name)
		}
	}
	return c
}

// LoadCatalog loads every layout in levelsDir.
func LoadCatalog(fsys fs.FS, levelsDir string) (*Catalog, error) {
	layouts, names, err := LoadAllLayouts(fsys, levelsDir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(layouts, names), nil
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// Cycle moves the selection by step, wrapping at both ends.
func (c *Catalog) Cycle(step int) {
	n := len(c.names)
	c.index = ((c.index+step)%n + n) % n
}

// Select picks the entry called name and reports whether it exists.
func (c *Catalog) Select(name string) bool {
	for i, n := range c.names {
		if n == name {
			c.index = i
			return true
		}
	}
	return false
}

// Current returns the selected entry. The default start has a nil layout.
func (c *Catalog) Current() (string, *Layout) {
	name := c.names[c.index]
	return name, c.layouts[name]
}

// DisplayName turns a level stem like "level_two" into "Level Two".
func DisplayName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
