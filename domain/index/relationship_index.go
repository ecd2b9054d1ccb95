package index

import "github.com/Switchdoctorstu/Archimate-Ingester/domain/model"

// Direction of an adjacency entry relative to the indexed element
type Direction string

const (
	DirectionOut Direction = "out"
	DirectionIn  Direction = "in"
)

// Adjacency records one relationship touching an element
type Adjacency struct {
	PeerID    string    `json:"peer_id"`
	Type      string    `json:"type"`
	Direction Direction `json:"direction"`
}

// Degree counts incoming and outgoing relationships of one element
type Degree struct {
	In  int `json:"in"`
	Out int `json:"out"`
}

// RelationshipIndex is the adjacency view of a model. Adjacency lists
// exist only for known non-relationship elements; relationships whose
// endpoints are unknown ids contribute to neither list. Degree counts
// cover every element id, including isolated ones.
type RelationshipIndex struct {
	adjacency map[string][]Adjacency
	degrees   map[string]Degree
}

// BuildRelationshipIndex derives the adjacency view from the model
func BuildRelationshipIndex(m *model.Model) *RelationshipIndex {
	ix := &RelationshipIndex{
		adjacency: make(map[string][]Adjacency),
		degrees:   make(map[string]Degree),
	}

	for _, el := range m.Elements() {
		ix.adjacency[el.ID] = nil
		ix.degrees[el.ID] = Degree{}
	}

	for _, rel := range m.Relationships() {
		if _, ok := ix.adjacency[rel.Source]; ok {
			ix.adjacency[rel.Source] = append(ix.adjacency[rel.Source],
				Adjacency{PeerID: rel.Target, Type: rel.Type, Direction: DirectionOut})
			d := ix.degrees[rel.Source]
			d.Out++
			ix.degrees[rel.Source] = d
		}
		if _, ok := ix.adjacency[rel.Target]; ok {
			ix.adjacency[rel.Target] = append(ix.adjacency[rel.Target],
				Adjacency{PeerID: rel.Source, Type: rel.Type, Direction: DirectionIn})
			d := ix.degrees[rel.Target]
			d.In++
			ix.degrees[rel.Target] = d
		}
	}

	return ix
}

// Neighbors returns the adjacency list of an element
func (ix *RelationshipIndex) Neighbors(id string) []Adjacency {
	return ix.adjacency[id]
}

// DegreeOf returns the in/out counts of an element
func (ix *RelationshipIndex) DegreeOf(id string) Degree {
	return ix.degrees[id]
}

// HasRelationship reports whether any relationship of one of the given
// types connects the two elements, in either direction.
func (ix *RelationshipIndex) HasRelationship(aID, bID string, relTypes ...string) bool {
	for _, adj := range ix.adjacency[aID] {
		if adj.PeerID != bID {
			continue
		}
		for _, t := range relTypes {
			if adj.Type == t {
				return true
			}
		}
	}
	return false
}

// Isolated returns the ids of elements with no relationships at all
func (ix *RelationshipIndex) Isolated() []string {
	var out []string
	for id, d := range ix.degrees {
		if d.In == 0 && d.Out == 0 {
			out = append(out, id)
		}
	}
	return out
}
