// Package section enumerates the four practice areas.
package section

import (
	"fmt"
	"strings"
)

// Section is one of the practice areas. Exactly one is active at a time.
type Section int

const (
	Writing Section = iota
	Speaking
	Reading
	Listening
)

// All returns every section in sidebar order.
func All() []Section {
	return []Section{Writing, Speaking, Reading, Listening}
}

// String returns the lowercase identifier ("writing").
func (s Section) String() string {
	switch s {
	case Writing:
		return "writing"
	case Speaking:
		return "speaking"
	case Reading:
		return "reading"
	case Listening:
		return "listening"
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Label is the title-case name shown in menus.
func (s Section) Label() string {
	switch s {
	case Writing:
		return "Writing"
	case Speaking:
		return "Speaking"
	case Reading:
		return "Reading"
	case Listening:
		return "Listening"
	}
	return s.String()
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	return s >= Writing && s <= Listening
}

// Next and Prev cycle through the sections.
func (s Section) Next() Section { return Section((int(s) + 1) % len(All())) }
func (s Section) Prev() Section { return Section((int(s) + len(All()) - 1) % len(All())) }

// Parse accepts the identifier or label, case-insensitively.
func Parse(name string) (Section, error) {
	for _, s := range All() {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", name)
}
