package domain

import "strings"

// Capability is a single permission an actor may hold over a content item.
type Capability uint8

const (
	CapabilityView Capability = 1 << iota
	CapabilityEdit
	CapabilityModerate
	CapabilityDelete
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapabilityView, "view"},
	{CapabilityEdit, "edit"},
	{CapabilityModerate, "moderate"},
	{CapabilityDelete, "delete"},
}

func (c Capability) String() string {
	for _, n := range capabilityNames {
		if n.c == c {
			return n.name
		}
	}
	return "unknown"
}

// CapabilitySet is a bitmask of capabilities. The zero value grants nothing.
type CapabilitySet uint8

// AllCapabilities grants view, edit, moderate and delete.
const AllCapabilities = CapabilitySet(CapabilityView | CapabilityEdit | CapabilityModerate | CapabilityDelete)

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool { return s&CapabilitySet(c) != 0 }

// With returns the set with c added.
func (s CapabilitySet) With(c Capability) CapabilitySet { return s | CapabilitySet(c) }

// Without returns the set with c removed.
func (s CapabilitySet) Without(c Capability) CapabilitySet { return s &^ CapabilitySet(c) }

// Union merges two sets.
func (s CapabilitySet) Union(o CapabilitySet) CapabilitySet { return s | o }

// Names returns capability names in a fixed order (view, edit, moderate, delete).
func (s CapabilitySet) Names() []string {
	names := make([]string, 0, len(capabilityNames))
	for _, n := range capabilityNames {
		if s.Has(n.c) {
			names = append(names, n.name)
		}
	}
	return names
}

func (s CapabilitySet) String() string {
	return "{" + strings.Join(s.Names(), ",") + "}"
}
