// Package archixml reads and writes models in the .archimate XML
// document format used by the Archi modelling tool.
package archixml

import (
	"encoding/xml"
	"io"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

const (
	xsiNamespace       = "http://www.w3.org/2001/XMLSchema-instance"
	archimateNamespace = "http://www.archimatetool.com/archimate"
)

// Codec implements the model document codec for .archimate files
type Codec struct{}

// New creates an .archimate codec
func New() *Codec {
	return &Codec{}
}

// input document shapes

type inModel struct {
	XMLName xml.Name   `xml:"model"`
	Name    string     `xml:"name,attr"`
	ID      string     `xml:"id,attr"`
	Version string     `xml:"version,attr"`
	Folders []inFolder `xml:"folder"`
}

type inFolder struct {
	Name     string      `xml:"name,attr"`
	ID       string      `xml:"id,attr"`
	Type     string      `xml:"type,attr"`
	Folders  []inFolder  `xml:"folder"`
	Elements []inElement `xml:"element"`
}

type inElement struct {
	XSIType       string `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr"`
	Source        string `xml:"source,attr"`
	Target        string `xml:"target,attr"`
	Documentation string `xml:"documentation"`
}

// Decode parses an .archimate document into a model. Nested folders are
// flattened into their top-level parent; namespace prefixes on element
// types are stripped.
func (c *Codec) Decode(r io.Reader) (*model.Model, error) {
	var doc inModel
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.NewParseError("malformed model document", err)
	}

	m := &model.Model{
		ID:      doc.ID,
		Name:    doc.Name,
		Version: doc.Version,
	}
	if m.ID == "" {
		m.ID = model.NewID()
	}

	for _, f := range doc.Folders {
		folder := &model.Folder{
			ID:   f.ID,
			Name: f.Name,
			Kind: f.Type,
		}
		if folder.ID == "" {
			folder.ID = model.NewID()
		}
		collectNodes(&f, folder)
		m.Folders = append(m.Folders, folder)
	}
	return m, nil
}

// collectNodes flattens a folder subtree into dest
func collectNodes(src *inFolder, dest *model.Folder) {
	for _, el := range src.Elements {
		node := &model.Node{
			ID:            el.ID,
			Type:          registry.StripPrefix(el.XSIType),
			Name:          el.Name,
			Source:        el.Source,
			Target:        el.Target,
			Documentation: el.Documentation,
		}
		if node.ID == "" {
			node.ID = model.NewID()
		}
		dest.Add(node)
	}
	for i := range src.Folders {
		collectNodes(&src.Folders[i], dest)
	}
}

// output document shapes; attribute names carry the prefixes verbatim

type outModel struct {
	XMLName  xml.Name    `xml:"archimate:model"`
	XSI      string      `xml:"xmlns:xsi,attr"`
	NS       string      `xml:"xmlns:archimate,attr"`
	Name     string      `xml:"name,attr"`
	ID       string      `xml:"id,attr"`
	Version  string      `xml:"version,attr,omitempty"`
	Folders  []outFolder `xml:"folder"`
}

type outFolder struct {
	Name     string       `xml:"name,attr"`
	ID       string       `xml:"id,attr"`
	Type     string       `xml:"type,attr"`
	Elements []outElement `xml:"element"`
}

type outElement struct {
	XSIType       string `xml:"xsi:type,attr"`
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr,omitempty"`
	Source        string `xml:"source,attr,omitempty"`
	Target        string `xml:"target,attr,omitempty"`
	Documentation string `xml:"documentation,omitempty"`
}

// Encode writes the model as an .archimate document
func (c *Codec) Encode(w io.Writer, m *model.Model) error {
	doc := outModel{
		XSI:     xsiNamespace,
		NS:      archimateNamespace,
		Name:    m.Name,
		ID:      m.ID,
		Version: m.Version,
	}

	for _, f := range m.Folders {
		folder := outFolder{
			Name: f.Name,
			ID:   f.ID,
			Type: f.Kind,
		}
		for _, n := range f.Nodes {
			folder.Elements = append(folder.Elements, outElement{
				XSIType:       "archimate:" + n.Type,
				ID:            n.ID,
				Name:          n.Name,
				Source:        n.Source,
				Target:        n.Target,
				Documentation: n.Documentation,
			})
		}
		doc.Folders = append(doc.Folders, folder)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return apperrors.NewInternalError("encoding model document failed").WithCause(err)
	}
	return enc.Flush()
}
