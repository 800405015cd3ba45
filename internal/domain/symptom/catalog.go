package symptom

import (
	"fmt"
	"sort"

	"github.com/kailas-cloud/symptomlog/internal/domain"
)

// Catalog maps symptom ids to display names and back.
type Catalog struct {
	names map[string]string
	ids   map[string]string
}

// NewCatalog builds a catalog from id -> name pairs.
func NewCatalog(names map[string]string) (*Catalog, error) {
	c := &Catalog{
		names: make(map[string]string, len(names)),
		ids:   make(map[string]string, len(names)),
	}
	for id, name := range names {
		if id == "" || name == "" {
			return nil, fmt.Errorf("catalog: empty id or name (%q -> %q)", id, name)
		}
		if prev, dup := c.ids[name]; dup {
			return nil, fmt.Errorf("catalog: name %q used by %q and %q", name, prev, id)
		}
		c.names[id] = name
		c.ids[name] = id
	}
	return c, nil
}

// Name returns the display name for id.
func (c *Catalog) Name(id string) (string, error) {
	if name, ok := c.names[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("symptom %q: %w", id, domain.ErrNotFound)
}

// ID returns the symptom id for a display name.
func (c *Catalog) ID(name string) (string, error) {
	if id, ok := c.ids[name]; ok {
		return id, nil
	}
	return "", fmt.Errorf("symptom name %q: %w", name, domain.ErrNotFound)
}

// Names maps ids to display names. Unknown ids are reported by their id so
// that a stale catalog never hides a detection.
func (c *Catalog) Names(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := c.names[id]; ok {
			out = append(out, name)
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of catalogued symptoms.
func (c *Catalog) Len() int { return len(c.names) }
