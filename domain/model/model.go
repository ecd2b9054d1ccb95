package model

// defaultFolders is the standard folder set of a fresh model, in
// document order.
var defaultFolders = []struct{ Name, Kind string }{
	{"Strategy", FolderKindStrategy},
	{"Business", FolderKindBusiness},
	{"Application", FolderKindApplication},
	{"Technology & Physical", FolderKindTechnology},
	{"Motivation", FolderKindMotivation},
	{"Implementation & Migration", FolderKindImplementation},
	{"Other", FolderKindOther},
	{"Relations", FolderKindRelations},
	{"Views", FolderKindDiagrams},
}

// Model is the root aggregate: a named set of folders holding element
// and relationship nodes. It is not safe for concurrent mutation; the
// owning session serialises access.
type Model struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Version string    `json:"version,omitempty"`
	Folders []*Folder `json:"folders"`
}

// New creates an empty model with the default folder set
func New(name string) *Model {
	m := &Model{
		ID:   NewID(),
		Name: name,
	}
	m.EnsureDefaultFolders()
	return m
}

// EnsureDefaultFolders adds any missing standard folders, keeping
// folders that already exist untouched.
func (m *Model) EnsureDefaultFolders() {
	for _, d := range defaultFolders {
		if m.FolderByKind(d.Kind) == nil {
			m.Folders = append(m.Folders, NewFolder(d.Name, d.Kind))
		}
	}
}

// FolderByKind returns the first folder with the given kind, or nil
func (m *Model) FolderByKind(kind string) *Folder {
	for _, f := range m.Folders {
		if f.Kind == kind {
			return f
		}
	}
	return nil
}

// FolderByName returns the first folder with the given display name, or nil
func (m *Model) FolderByName(name string) *Folder {
	for _, f := range m.Folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// EnsureFolder returns the folder with the given name, creating it
// with the given kind when missing.
func (m *Model) EnsureFolder(name, kind string) *Folder {
	if f := m.FolderByName(name); f != nil {
		return f
	}
	f := NewFolder(name, kind)
	m.Folders = append(m.Folders, f)
	return f
}

// RelationsFolder returns the relationships folder, creating it when
// missing. Relationships always live here.
func (m *Model) RelationsFolder() *Folder {
	if f := m.FolderByKind(FolderKindRelations); f != nil {
		return f
	}
	f := NewFolder("Relations", FolderKindRelations)
	m.Folders = append(m.Folders, f)
	return f
}

// Elements returns all non-relationship nodes across folders
func (m *Model) Elements() []*Node {
	var out []*Node
	for _, f := range m.Folders {
		for _, n := range f.Nodes {
			if !n.IsRelationship() {
				out = append(out, n)
			}
		}
	}
	return out
}

// Relationships returns all relationship nodes across folders
func (m *Model) Relationships() []*Node {
	var out []*Node
	for _, f := range m.Folders {
		for _, n := range f.Nodes {
			if n.IsRelationship() {
				out = append(out, n)
			}
		}
	}
	return out
}

// NodeByID finds a node anywhere in the model, or nil
func (m *Model) NodeByID(id string) *Node {
	for _, f := range m.Folders {
		for _, n := range f.Nodes {
			if n.ID == id {
				return n
			}
		}
	}
	return nil
}

// FolderOf returns the folder currently holding the node, or nil
func (m *Model) FolderOf(id string) *Folder {
	for _, f := range m.Folders {
		if f.Contains(id) {
			return f
		}
	}
	return nil
}

// Remove deletes the node with the given id from whichever folder
// holds it. It reports whether a node was removed.
func (m *Model) Remove(id string) bool {
	for _, f := range m.Folders {
		if f.Remove(id) {
			return true
		}
	}
	return false
}

// Move relocates a node into the destination folder. It is a no-op if
// the node already lives there.
func (m *Model) Move(n *Node, dest *Folder) {
	if dest.Contains(n.ID) {
		return
	}
	m.Remove(n.ID)
	dest.Add(n)
}

// Clone returns a deep copy of the whole model, suitable for undo
// snapshots.
func (m *Model) Clone() *Model {
	c := &Model{
		ID:      m.ID,
		Name:    m.Name,
		Version: m.Version,
		Folders: make([]*Folder, len(m.Folders)),
	}
	for i, f := range m.Folders {
		c.Folders[i] = f.Clone()
	}
	return c
}

// Counts reports the number of elements and relationships in the model
func (m *Model) Counts() (elements, relationships int) {
	for _, f := range m.Folders {
		for _, n := range f.Nodes {
			if n.IsRelationship() {
				relationships++
			} else {
				elements++
			}
		}
	}
	return
}
