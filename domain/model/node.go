package model

import "strings"

// Node is a single entry in a model folder: either an element or a
// relationship, distinguished by its type. Elements carry a name;
// relationships carry source and target element ids instead.
type Node struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Name          string `json:"name,omitempty"`
	Source        string `json:"source,omitempty"`
	Target        string `json:"target,omitempty"`
	Documentation string `json:"documentation,omitempty"`
}

// NewElement creates an element node of the given short type
func NewElement(elementType, name string) *Node {
	return &Node{
		ID:   NewID(),
		Type: elementType,
		Name: name,
	}
}

// NewRelationship creates a relationship node between two element ids
func NewRelationship(relType, sourceID, targetID string) *Node {
	return &Node{
		ID:     NewID(),
		Type:   relType,
		Source: sourceID,
		Target: targetID,
	}
}

// IsRelationship reports whether the node is a relationship. ArchiMate
// relationship types all carry the Relationship suffix.
func (n *Node) IsRelationship() bool {
	return strings.HasSuffix(n.Type, "Relationship")
}

// Reverse swaps the endpoints of a relationship node
func (n *Node) Reverse() {
	n.Source, n.Target = n.Target, n.Source
}

// Clone returns a deep copy of the node
func (n *Node) Clone() *Node {
	c := *n
	return &c
}
