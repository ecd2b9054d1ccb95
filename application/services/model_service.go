package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/application/ports"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/index"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	domainservices "github.com/Switchdoctorstu/Archimate-Ingester/domain/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/diag"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

// DefaultHistoryLimit caps the undo stack depth
const DefaultHistoryLimit = 40

// ModelStats summarises the session model
type ModelStats struct {
	Name          string `json:"name"`
	Elements      int    `json:"elements"`
	Relationships int    `json:"relationships"`
	Folders       int    `json:"folders"`
	UndoDepth     int    `json:"undo_depth"`
}

// ModelService owns the live model session: the model itself, both
// indices, and the undo history. Every mutating operation snapshots the
// model first and rebuilds the indices afterwards. All access is
// serialised through one mutex; the model is never shared outside the
// lock.
type ModelService struct {
	mu           sync.Mutex
	model        *model.Model
	elements     *index.ElementIndex
	relations    *index.RelationshipIndex
	history      []*model.Model
	historyLimit int

	// lines already handed out, for delta exports
	exportedInventory map[string]struct{}
	exportedTriples   map[string]struct{}

	registry     *registry.Registry
	staging      *StagingService
	consistency  *domainservices.ConsistencyEngine
	autocomplete *domainservices.AutocompleteEngine
	codec        ports.ModelCodec
	repo         ports.ModelRepository
	logger       *zap.Logger
}

// NewModelService creates a session around a fresh empty model
func NewModelService(
	reg *registry.Registry,
	staging *StagingService,
	consistency *domainservices.ConsistencyEngine,
	autocomplete *domainservices.AutocompleteEngine,
	codec ports.ModelCodec,
	repo ports.ModelRepository,
	historyLimit int,
	logger *zap.Logger,
) *ModelService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	s := &ModelService{
		model:             model.New("New Model"),
		historyLimit:      historyLimit,
		exportedInventory: make(map[string]struct{}),
		exportedTriples:   make(map[string]struct{}),
		registry:          reg,
		staging:           staging,
		consistency:       consistency,
		autocomplete:      autocomplete,
		codec:             codec,
		repo:              repo,
		logger:            logger,
	}
	s.rebuildIndexes()
	return s
}

// snapshot pushes a deep copy of the model onto the undo stack,
// evicting the oldest entry past the depth limit.
func (s *ModelService) snapshot() {
	s.history = append(s.history, s.model.Clone())
	if len(s.history) > s.historyLimit {
		s.history = s.history[1:]
	}
}

// rebuildIndexes rederives both indices from the model. Index warnings
// (duplicate names and the like) are returned for the caller to attach
// to its result.
func (s *ModelService) rebuildIndexes() *diag.Collector {
	dc := &diag.Collector{}
	s.elements = index.BuildElementIndex(s.model, dc)
	s.relations = index.BuildRelationshipIndex(s.model)
	return dc
}

// Undo restores the most recent snapshot
func (s *ModelService) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return apperrors.NewConflictError("nothing to undo")
	}
	s.model = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.rebuildIndexes()
	s.logger.Info("undo applied", zap.Int("remaining", len(s.history)))
	return nil
}

// ImportDocument replaces the session model with one decoded from r.
// The undo history restarts at the imported state.
func (s *ModelService) ImportDocument(r io.Reader) error {
	m, err := s.codec.Decode(r)
	if err != nil {
		return err
	}
	m.EnsureDefaultFolders()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
	s.history = nil
	dc := s.rebuildIndexes()
	for _, d := range dc.Warnings() {
		s.logger.Warn("import diagnostic", zap.String("message", d.Message))
	}
	el, rel := m.Counts()
	s.logger.Info("model imported",
		zap.String("name", m.Name),
		zap.Int("elements", el),
		zap.Int("relationships", rel),
	)
	return nil
}

// ExportDocument writes the session model to w
func (s *ModelService) ExportDocument(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codec.Encode(w, s.model)
}

// MergeStaging parses and merges a staged JSON batch. Invalid JSON
// fails without touching the model; item-level problems surface as
// diagnostics on the result.
func (s *ModelService) MergeStaging(data []byte) (*MergeResult, error) {
	dc := &diag.Collector{}
	payload, err := s.staging.Parse(data, dc)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot()
	result := s.staging.Merge(s.model, payload, s.elements, dc)
	s.rebuildIndexes()
	return result, nil
}

// RunConsistency cleans the model and returns the change report
func (s *ModelService) RunConsistency() *domainservices.CleanupReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot()
	report := s.consistency.Run(s.model)
	s.rebuildIndexes()
	return report
}

// RunAutocomplete applies the suggestion rules and returns what was added
func (s *ModelService) RunAutocomplete() *domainservices.AutocompleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot()
	result := s.autocomplete.Run(s.model)
	s.rebuildIndexes()
	return result
}

// Inventory lists every element as "{type} | {name}". With delta set,
// only lines added since the last MarkExported call are returned.
func (s *ModelService) Inventory(delta bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := []string{}
	for _, el := range s.model.Elements() {
		line := fmt.Sprintf("%s | %s", el.Type, el.Name)
		if delta {
			if _, ok := s.exportedInventory[line]; ok {
				continue
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Triples lists every relationship as "{source} -> {type} -> {target}"
// using element names. Relationships with unresolvable endpoints are
// skipped. With delta set, only lines added since the last MarkExported
// call are returned.
func (s *ModelService) Triples(delta bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := []string{}
	for _, rel := range s.model.Relationships() {
		src, srcOK := s.elements.ByID(rel.Source)
		tgt, tgtOK := s.elements.ByID(rel.Target)
		if !srcOK || !tgtOK {
			continue
		}
		line := fmt.Sprintf("%s -> %s -> %s", src.Name, rel.Type, tgt.Name)
		if delta {
			if _, ok := s.exportedTriples[line]; ok {
				continue
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// MarkExported records the current inventory and triples as already
// handed out, so later delta exports return only new content.
func (s *ModelService) MarkExported() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exportedInventory = make(map[string]struct{})
	for _, el := range s.model.Elements() {
		s.exportedInventory[fmt.Sprintf("%s | %s", el.Type, el.Name)] = struct{}{}
	}
	s.exportedTriples = make(map[string]struct{})
	for _, rel := range s.model.Relationships() {
		src, srcOK := s.elements.ByID(rel.Source)
		tgt, tgtOK := s.elements.ByID(rel.Target)
		if !srcOK || !tgtOK {
			continue
		}
		s.exportedTriples[fmt.Sprintf("%s -> %s -> %s", src.Name, rel.Type, tgt.Name)] = struct{}{}
	}
}

// Catalog returns element names grouped by type. A non-empty filter
// restricts the result to that type.
func (s *ModelService) Catalog(typeFilter string) map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	typeFilter = registry.StripPrefix(typeFilter)
	out := make(map[string][]string)
	for _, el := range s.model.Elements() {
		if typeFilter != "" && el.Type != typeFilter {
			continue
		}
		out[el.Type] = append(out[el.Type], el.Name)
	}
	return out
}

// KnownTypes lists the element types pickers usually offer and the
// full relationship type set.
func (s *ModelService) KnownTypes() map[string][]string {
	return map[string][]string{
		"elements":      registry.CommonTypes,
		"relationships": s.registry.RelationshipTypes(),
	}
}

// LookupElement resolves an element name, optionally constrained to a type
func (s *ModelService) LookupElement(name, typeHint string) (index.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elements.Lookup(name, registry.StripPrefix(typeHint))
}

// Neighbors returns the adjacency list of an element id
func (s *ModelService) Neighbors(id string) []index.Adjacency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.relations.Neighbors(id)
}

// Stats summarises the session model
func (s *ModelService) Stats() ModelStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, rel := s.model.Counts()
	return ModelStats{
		Name:          s.model.Name,
		Elements:      el,
		Relationships: rel,
		Folders:       len(s.model.Folders),
		UndoDepth:     len(s.history),
	}
}

// Persist writes the session model to the repository, guarding against
// concurrent writers via the stored version.
func (s *ModelService) Persist(ctx context.Context) error {
	if s.repo == nil {
		return apperrors.NewConflictError("no model store configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	version, err := s.repo.Version(ctx)
	if err != nil {
		return err
	}
	return s.repo.Export(ctx, s.model, version)
}

// Restore replaces the session model with the repository snapshot. The
// undo history restarts at the restored state.
func (s *ModelService) Restore(ctx context.Context) error {
	if s.repo == nil {
		return apperrors.NewConflictError("no model store configured")
	}

	m, err := s.repo.Import(ctx)
	if err != nil {
		return err
	}
	m.EnsureDefaultFolders()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = m
	s.history = nil
	s.rebuildIndexes()
	return nil
}
