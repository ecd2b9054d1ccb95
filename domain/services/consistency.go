// Package services holds the model-level domain services: the
// consistency engine that relocates, repairs and deduplicates model
// content, and the autocomplete engine that suggests missing
// relationships.
package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
)

// ConsistencyEngine enforces the rule registry over a model. A run
// makes four passes: relocate misfiled nodes, validate and repair
// relationships, remove duplicates, then report. Running twice in a row
// yields an empty second report.
type ConsistencyEngine struct {
	registry *registry.Registry
	logger   *zap.Logger
}

// NewConsistencyEngine creates a consistency engine
func NewConsistencyEngine(reg *registry.Registry, logger *zap.Logger) *ConsistencyEngine {
	return &ConsistencyEngine{
		registry: reg,
		logger:   logger,
	}
}

// Run cleans the model in place and returns the change report. The
// caller owns index rebuilding afterwards.
func (e *ConsistencyEngine) Run(m *model.Model) *CleanupReport {
	report := &CleanupReport{}

	e.relocate(m, report)
	e.validateAndRepair(m, report)
	e.deduplicate(m, report)

	e.logger.Info("consistency run complete",
		zap.Int("relocated", len(report.Relocated)),
		zap.Int("fixed", len(report.Fixed)),
		zap.Int("removed_illegal", len(report.RemovedIllegal)),
		zap.Int("removed_duplicates", len(report.RemovedDuplicates)),
	)
	return report
}

// relocate moves every node into its canonical folder: relationships
// into Relations, elements into their mapped folder (Other when the
// type is unmapped). Destination folders are created when missing.
func (e *ConsistencyEngine) relocate(m *model.Model, report *CleanupReport) {
	type move struct {
		node *model.Node
		from *model.Folder
	}
	var moves []move

	for _, f := range m.Folders {
		// Views hold diagram content, not model elements
		if f.Kind == model.FolderKindDiagrams {
			continue
		}
		for _, n := range f.Nodes {
			if n.IsRelationship() {
				if f.Kind != model.FolderKindRelations {
					moves = append(moves, move{node: n, from: f})
				}
				continue
			}
			if f.Name != e.registry.FolderFor(n.Type) {
				moves = append(moves, move{node: n, from: f})
			}
		}
	}

	for _, mv := range moves {
		var dest *model.Folder
		if mv.node.IsRelationship() {
			dest = m.RelationsFolder()
		} else {
			name := e.registry.FolderFor(mv.node.Type)
			dest = m.EnsureFolder(name, e.registry.FolderKindFor(name))
		}
		m.Move(mv.node, dest)
		report.Relocated = append(report.Relocated,
			fmt.Sprintf("%s '%s' moved from '%s' to '%s'",
				mv.node.Type, labelOf(mv.node), mv.from.Name, dest.Name))
	}
}

// validateAndRepair removes relationships with missing endpoints and
// repairs illegal triples. Repair first tries retyping in the same
// direction, then reversing the endpoints and retyping; in both cases
// the replacement is the first legal type in RepairPriority order.
// Relationships that cannot be made legal are removed.
func (e *ConsistencyEngine) validateAndRepair(m *model.Model, report *CleanupReport) {
	elements := make(map[string]*model.Node)
	for _, el := range m.Elements() {
		elements[el.ID] = el
	}

	for _, rel := range m.Relationships() {
		src, srcOK := elements[rel.Source]
		tgt, tgtOK := elements[rel.Target]
		if !srcOK || !tgtOK {
			m.Remove(rel.ID)
			report.RemovedIllegal = append(report.RemovedIllegal,
				fmt.Sprintf("%s %s removed: missing endpoint", rel.Type, rel.ID))
			continue
		}

		if e.registry.IsAllowed(src.Type, tgt.Type, rel.Type) {
			continue
		}

		oldType := rel.Type
		if newType, ok := e.pickLegalType(src.Type, tgt.Type); ok {
			rel.Type = newType
			report.Fixed = append(report.Fixed,
				fmt.Sprintf("'%s' -[%s]-> '%s' retyped to %s", src.Name, oldType, tgt.Name, newType))
			continue
		}
		if newType, ok := e.pickLegalType(tgt.Type, src.Type); ok {
			rel.Reverse()
			rel.Type = newType
			report.Fixed = append(report.Fixed,
				fmt.Sprintf("'%s' -[%s]-> '%s' reversed and retyped to %s", src.Name, oldType, tgt.Name, newType))
			continue
		}

		m.Remove(rel.ID)
		report.RemovedIllegal = append(report.RemovedIllegal,
			fmt.Sprintf("'%s' -[%s]-> '%s' removed: no legal alternative", src.Name, oldType, tgt.Name))
	}
}

// pickLegalType returns the highest-priority relationship type legal
// between the two element types.
func (e *ConsistencyEngine) pickLegalType(sourceType, targetType string) (string, bool) {
	legal := e.registry.LegalTypesBetween(sourceType, targetType)
	allowed := make(map[string]struct{}, len(legal))
	for _, t := range legal {
		allowed[t] = struct{}{}
	}
	for _, t := range registry.RepairPriority {
		if _, ok := allowed[t]; ok {
			return t, true
		}
	}
	return "", false
}

// deduplicate removes relationships sharing (source, target, type) with
// an earlier one; the first occurrence in folder order survives.
func (e *ConsistencyEngine) deduplicate(m *model.Model, report *CleanupReport) {
	seen := make(map[string]struct{})
	for _, rel := range m.Relationships() {
		key := rel.Source + "|" + rel.Target + "|" + rel.Type
		if _, dup := seen[key]; dup {
			m.Remove(rel.ID)
			report.RemovedDuplicates = append(report.RemovedDuplicates,
				fmt.Sprintf("%s %s -> %s (duplicate)", rel.Type, rel.Source, rel.Target))
			continue
		}
		seen[key] = struct{}{}
	}
}

func labelOf(n *model.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}
