package domain

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Profile is the memorial record of one fallen individual. Its moderation
// state lives in the ContentItem of kind profile that shares its ID.
type Profile struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Editors   EditorSet
	CreatedAt time.Time
}

// IsOwner reports whether userID owns the profile.
func (p *Profile) IsOwner(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.OwnerID == userID
}

// IsEditor reports whether userID is a delegated editor of the profile.
func (p *Profile) IsEditor(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.Editors.Has(userID)
}

// IsManager reports whether userID owns or edits the profile.
func (p *Profile) IsManager(userID uuid.UUID) bool {
	return p.IsOwner(userID) || p.IsEditor(userID)
}

// EditorSet is the set of delegated editors of a profile.
type EditorSet map[uuid.UUID]struct{}

// NewEditorSet builds a set from ids.
func NewEditorSet(ids ...uuid.UUID) EditorSet {
	s := make(EditorSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. Safe on a nil set.
func (s EditorSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id and reports whether it was absent.
func (s EditorSet) Add(id uuid.UUID) bool {
	if s.Has(id) {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Remove deletes id and reports whether it was present.
func (s EditorSet) Remove(id uuid.UUID) bool {
	if !s.Has(id) {
		return false
	}
	delete(s, id)
	return true
}

// Slice returns the members in byte order.
func (s EditorSet) Slice() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return out
}
