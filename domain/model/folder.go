package model

// Folder kinds used by .archimate documents. The kind is the folder's
// type attribute; the display name is free text.
const (
	FolderKindStrategy       = "strategy"
	FolderKindBusiness       = "business"
	FolderKindApplication    = "application"
	FolderKindTechnology     = "technology"
	FolderKindMotivation     = "motivation"
	FolderKindImplementation = "implementation_migration"
	FolderKindOther          = "other"
	FolderKindRelations      = "relations"
	FolderKindDiagrams       = "diagrams"
)

// Folder groups nodes of one architectural concern
type Folder struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Nodes []*Node `json:"nodes"`
}

// NewFolder creates an empty folder
func NewFolder(name, kind string) *Folder {
	return &Folder{
		ID:   NewID(),
		Name: name,
		Kind: kind,
	}
}

// Add appends a node to the folder
func (f *Folder) Add(n *Node) {
	f.Nodes = append(f.Nodes, n)
}

// Remove deletes the node with the given id, preserving order.
// It reports whether a node was removed.
func (f *Folder) Remove(id string) bool {
	for i, n := range f.Nodes {
		if n.ID == id {
			f.Nodes = append(f.Nodes[:i], f.Nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the folder holds a node with the given id
func (f *Folder) Contains(id string) bool {
	for _, n := range f.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the folder and its nodes
func (f *Folder) Clone() *Folder {
	c := &Folder{
		ID:    f.ID,
		Name:  f.Name,
		Kind:  f.Kind,
		Nodes: make([]*Node, len(f.Nodes)),
	}
	for i, n := range f.Nodes {
		c.Nodes[i] = n.Clone()
	}
	return c
}
