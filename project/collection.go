package project

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// collection is arena-style storage for one kind of named entity: entities
// live in an ID-keyed table and are referenced everywhere else by their
// stable ID. Insertion order is kept for stable listing.
type collection[T any] struct {
	byID    map[string]T
	order   []string
	name    func(T) string
	setName func(T, string)
}

func newCollection[T any](name func(T) string, setName func(T, string)) *collection[T] {
	return &collection[T]{
		byID:    map[string]T{},
		name:    name,
		setName: setName,
	}
}

func (c *collection[T]) insert(v T) string {
	id := uuid.NewString()
	c.byID[id] = v
	c.order = append(c.order, id)
	return id
}

func (c *collection[T]) insertWithID(id string, v T) error {
	if id == "" {
		return fmt.Errorf("project: empty entity id")
	}
	if _, ok := c.byID[id]; ok {
		return fmt.Errorf("project: duplicate entity id %q", id)
	}
	if other, ok := c.findByName(c.name(v)); ok && other != id {
		return fmt.Errorf("project: name %q: %w", c.name(v), ErrNameConflict)
	}
	c.byID[id] = v
	c.order = append(c.order, id)
	return nil
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) ids() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) findByName(name string) (string, bool) {
	for id, v := range c.byID {
		if c.name(v) == name {
			return id, true
		}
	}
	return "", false
}

// rename changes the entity's name, failing when another entity in the
// collection already holds it. Renaming to the current name succeeds.
func (c *collection[T]) rename(id, newName string) error {
	v, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("project: id %q: %w", id, ErrUnknownEntity)
	}
	if other, taken := c.findByName(newName); taken && other != id {
		return fmt.Errorf("project: name %q: %w", newName, ErrNameConflict)
	}
	c.setName(v, newName)
	return nil
}

var nameSuffix = regexp.MustCompile(`^(.*) \(\d+\)$`)

// uniqueName disambiguates base against existing names, yielding base,
// "base (2)", "base (3)" and so on. An existing "(n)" suffix on base is
// stripped first so duplicating a duplicate counts up instead of nesting.
func (c *collection[T]) uniqueName(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "Untitled"
	}
	if m := nameSuffix.FindStringSubmatch(base); m != nil {
		base = m[1]
	}
	if _, taken := c.findByName(base); !taken {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", base, n)
		if _, taken := c.findByName(candidate); !taken {
			return candidate
		}
	}
}
