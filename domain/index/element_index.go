// Package index provides lookup structures derived from a model:
// name/id element lookups and a relationship adjacency view. Indices
// are derived data; after any mutation batch the owner rebuilds them
// from the model rather than patching them in place.
package index

import (
	"strings"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/diag"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

// Entry identifies one element carried under an indexed name
type Entry struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// NamedEntry is an Entry plus the element's display name, for id lookups
type NamedEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ElementIndex maps lowercased element names to the elements carrying
// them, and element ids to name/type. Several elements may share a name
// as long as their types differ; same-name same-type pairs are flagged
// while building.
type ElementIndex struct {
	byName map[string][]Entry
	byID   map[string]NamedEntry
}

// NewElementIndex returns an empty index
func NewElementIndex() *ElementIndex {
	return &ElementIndex{
		byName: make(map[string][]Entry),
		byID:   make(map[string]NamedEntry),
	}
}

// BuildElementIndex indexes every non-relationship node in the model.
// Name collisions across types are permitted but reported through the
// collector; collisions within a type are reported as duplicates.
func BuildElementIndex(m *model.Model, dc *diag.Collector) *ElementIndex {
	ix := NewElementIndex()
	for _, el := range m.Elements() {
		if el.Name == "" {
			continue
		}
		key := strings.ToLower(el.Name)
		for _, existing := range ix.byName[key] {
			if existing.Type == el.Type {
				dc.Warnf("duplicate element name %q of type %s (ids %s, %s)", el.Name, el.Type, existing.ID, el.ID)
			} else {
				dc.Warnf("element name %q is shared by types %s and %s", el.Name, existing.Type, el.Type)
			}
		}
		ix.Add(el.Name, el.ID, el.Type)
	}
	return ix
}

// Add inserts one element into the index. Used while building and for
// batch-local insertion during staging merges.
func (ix *ElementIndex) Add(name, id, elementType string) {
	key := strings.ToLower(name)
	ix.byName[key] = append(ix.byName[key], Entry{ID: id, Type: elementType})
	ix.byID[id] = NamedEntry{ID: id, Name: name, Type: elementType}
}

// ByID returns the indexed entry for an element id
func (ix *ElementIndex) ByID(id string) (NamedEntry, bool) {
	e, ok := ix.byID[id]
	return e, ok
}

// HasNameType reports whether an element with this name (case
// insensitive) and exact type is already indexed.
func (ix *ElementIndex) HasNameType(name, elementType string) bool {
	for _, e := range ix.byName[strings.ToLower(name)] {
		if e.Type == elementType {
			return true
		}
	}
	return false
}

// Lookup resolves a name to a single element. A non-empty typeHint
// restricts the match to that type; without a hint the name must map to
// exactly one type. Failures are NotFound, TypeMismatch or Ambiguous.
func (ix *ElementIndex) Lookup(name, typeHint string) (Entry, error) {
	entries := ix.byName[strings.ToLower(name)]
	if len(entries) == 0 {
		return Entry{}, apperrors.NewNotFoundError("element '" + name + "'")
	}

	if typeHint != "" {
		for _, e := range entries {
			if e.Type == typeHint {
				return e, nil
			}
		}
		return Entry{}, apperrors.NewTypeMismatchError(name, typeHint)
	}

	first := entries[0]
	for _, e := range entries[1:] {
		if e.Type != first.Type {
			return Entry{}, apperrors.NewAmbiguousError(name, ix.typesFor(entries))
		}
	}
	return first, nil
}

func (ix *ElementIndex) typesFor(entries []Entry) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, e := range entries {
		if _, ok := seen[e.Type]; !ok {
			seen[e.Type] = struct{}{}
			types = append(types, e.Type)
		}
	}
	return types
}

// Len reports the number of indexed element ids
func (ix *ElementIndex) Len() int {
	return len(ix.byID)
}
