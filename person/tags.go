package person

import (
	"sort"
	"strings"
)

// Tags is an insertion-ordered set of unique tags.
//
// The zero value is an empty set. Tags values share no state: every method
// that hands out or stores a set copies it.
type Tags struct {
	items []Tag
}

// NewTags returns a set holding tags in first-seen order, dropping repeats.
func NewTags(tags ...Tag) Tags {
	var set Tags
	for _, tag := range tags {
		set.add(tag)
	}
	return set
}

// ParseTags validates every raw name and returns the resulting set.
func ParseTags(raw ...string) (Tags, error) {
	tags := make([]Tag, 0, len(raw))
	for _, name := range raw {
		tag, err := NewTag(name)
		if err != nil {
			return Tags{}, err
		}
		tags = append(tags, tag)
	}
	return NewTags(tags...), nil
}

func (s *Tags) add(tag Tag) {
	if s.Contains(tag) {
		return
	}
	s.items = append(s.items, tag)
}

// Contains reports whether tag is in the set.
func (s Tags) Contains(tag Tag) bool {
	for _, existing := range s.items {
		if existing.name == tag.name {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (s Tags) Len() int {
	return len(s.items)
}

// Slice returns the tags in insertion order. The slice is a fresh copy.
func (s Tags) Slice() []Tag {
	return append([]Tag(nil), s.items...)
}

// Names returns the tag names in insertion order.
func (s Tags) Names() []string {
	names := make([]string, 0, len(s.items))
	for _, tag := range s.items {
		names = append(names, tag.name)
	}
	return names
}

// Equal reports whether both sets hold the same tags, ignoring order.
func (s Tags) Equal(other Tags) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, tag := range s.items {
		if !other.Contains(tag) {
			return false
		}
	}
	return true
}

func (s Tags) clone() Tags {
	return Tags{items: s.Slice()}
}

func (s Tags) sortedNames() []string {
	names := s.Names()
	sort.Strings(names)
	return names
}

// String renders the set as "[a][b]".
func (s Tags) String() string {
	var b strings.Builder
	for _, tag := range s.items {
		b.WriteString("[" + tag.name + "]")
	}
	return b.String()
}
