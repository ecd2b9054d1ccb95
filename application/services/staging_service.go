package services

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/index"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/diag"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/utils"
)

// StagedElement is one element record of a staging payload
type StagedElement struct {
	Type        string `json:"type" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// StagedRelationship is one relationship record of a staging payload.
// Endpoints are element names, resolved against the element index at
// merge time.
type StagedRelationship struct {
	Type        string `json:"type" validate:"required"`
	Source      string `json:"source" validate:"required"`
	Target      string `json:"target" validate:"required"`
	Description string `json:"description,omitempty"`
}

// StagedPayload is a parsed staging batch
type StagedPayload struct {
	Elements      []StagedElement      `json:"elements"`
	Relationships []StagedRelationship `json:"relationships"`
}

// MergeResult summarises one staging merge
type MergeResult struct {
	ElementsCreated      int               `json:"elements_created"`
	ElementsSkipped      int               `json:"elements_skipped"`
	RelationshipsCreated int               `json:"relationships_created"`
	RelationshipsSkipped int               `json:"relationships_skipped"`
	Diagnostics          []diag.Diagnostic `json:"diagnostics,omitempty"`
}

// StagingService parses staging payloads and merges them into a model.
// Relationship legality is deliberately not checked here; the
// consistency engine owns that concern.
type StagingService struct {
	registry *registry.Registry
	logger   *zap.Logger
}

// NewStagingService creates a staging service
func NewStagingService(reg *registry.Registry, logger *zap.Logger) *StagingService {
	return &StagingService{
		registry: reg,
		logger:   logger,
	}
}

// rawPayload is the object payload shape before per-item validation
type rawPayload struct {
	Elements      []json.RawMessage `json:"elements"`
	Relationships []json.RawMessage `json:"relationships"`
}

// flatRecord is one record of the flat-array payload shape. The record
// kind is discriminated by which name fields are present.
type flatRecord struct {
	ElementType string `json:"element_type"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	SourceName  string `json:"source_name"`
	TargetName  string `json:"target_name"`
	Description string `json:"description"`
}

// Parse decodes a staging payload in either supported shape: an object
// with elements/relationships arrays, or a flat array of discriminated
// records. Invalid JSON fails the whole payload; individually malformed
// records are dropped with a warning.
func (s *StagingService) Parse(data []byte, dc *diag.Collector) (*StagedPayload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, apperrors.NewParseError("empty staging payload", nil)
	}

	switch trimmed[0] {
	case '{':
		return s.parseObject(trimmed, dc)
	case '[':
		return s.parseFlat(trimmed, dc)
	default:
		return nil, apperrors.NewParseError("staging payload must be a JSON object or array", nil)
	}
}

func (s *StagingService) parseObject(data []byte, dc *diag.Collector) (*StagedPayload, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewParseError("malformed staging payload", err)
	}

	payload := &StagedPayload{}
	for i, item := range raw.Elements {
		var el StagedElement
		if err := json.Unmarshal(item, &el); err != nil {
			dc.Warnf("element %d dropped: %v", i, err)
			continue
		}
		if err := utils.ValidateStruct(el); err != nil {
			dc.Warnf("element %d dropped: %v", i, err)
			continue
		}
		payload.Elements = append(payload.Elements, el)
	}
	for i, item := range raw.Relationships {
		var rec flatRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			dc.Warnf("relationship %d dropped: %v", i, err)
			continue
		}
		rel := StagedRelationship{
			Type:        rec.Type,
			Source:      firstNonEmpty(rec.Source, rec.SourceName),
			Target:      firstNonEmpty(rec.Target, rec.TargetName),
			Description: rec.Description,
		}
		if err := utils.ValidateStruct(rel); err != nil {
			dc.Warnf("relationship %d dropped: %v", i, err)
			continue
		}
		payload.Relationships = append(payload.Relationships, rel)
	}
	return payload, nil
}

func (s *StagingService) parseFlat(data []byte, dc *diag.Collector) (*StagedPayload, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.NewParseError("malformed staging payload", err)
	}

	payload := &StagedPayload{}
	for i, item := range items {
		var rec flatRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			dc.Warnf("record %d dropped: %v", i, err)
			continue
		}

		switch {
		case rec.SourceName != "" && rec.TargetName != "":
			rel := StagedRelationship{
				Type:        rec.Type,
				Source:      rec.SourceName,
				Target:      rec.TargetName,
				Description: rec.Description,
			}
			if err := utils.ValidateStruct(rel); err != nil {
				dc.Warnf("record %d dropped: %v", i, err)
				continue
			}
			payload.Relationships = append(payload.Relationships, rel)
		case rec.ElementType != "" && rec.Name != "":
			el := StagedElement{
				Type:        rec.ElementType,
				Name:        rec.Name,
				Description: rec.Description,
			}
			payload.Elements = append(payload.Elements, el)
		default:
			dc.Warnf("record %d dropped: neither element nor relationship shape", i)
		}
	}
	return payload, nil
}

// Merge applies a parsed payload to the model. Elements go first so
// relationships later in the same batch can reference them: each new
// element is inserted into the index immediately. Duplicate elements
// (case-insensitive name plus type) are skipped; relationships with
// unresolved or ambiguous endpoints are skipped with a warning.
func (s *StagingService) Merge(m *model.Model, payload *StagedPayload, ix *index.ElementIndex, dc *diag.Collector) *MergeResult {
	result := &MergeResult{}

	for _, staged := range payload.Elements {
		elementType := registry.StripPrefix(staged.Type)
		if s.registry.IsRelationshipType(elementType) {
			dc.Warnf("element '%s' dropped: %s is a relationship type", staged.Name, elementType)
			result.ElementsSkipped++
			continue
		}
		if ix.HasNameType(staged.Name, elementType) {
			dc.Infof("element '%s' (%s) already exists, skipped", staged.Name, elementType)
			result.ElementsSkipped++
			continue
		}

		el := model.NewElement(elementType, staged.Name)
		el.Documentation = staged.Description
		folderName := s.registry.FolderFor(elementType)
		m.EnsureFolder(folderName, s.registry.FolderKindFor(folderName)).Add(el)
		ix.Add(el.Name, el.ID, el.Type)
		result.ElementsCreated++
	}

	relations := m.RelationsFolder()
	for _, staged := range payload.Relationships {
		relType := registry.StripPrefix(staged.Type)
		if !s.registry.IsRelationshipType(relType) {
			dc.Warnf("relationship '%s' -> '%s' dropped: unknown type %s", staged.Source, staged.Target, staged.Type)
			result.RelationshipsSkipped++
			continue
		}

		src, err := ix.Lookup(staged.Source, "")
		if err != nil {
			dc.Warnf("relationship '%s' -> '%s' dropped: %v", staged.Source, staged.Target, err)
			result.RelationshipsSkipped++
			continue
		}
		tgt, err := ix.Lookup(staged.Target, "")
		if err != nil {
			dc.Warnf("relationship '%s' -> '%s' dropped: %v", staged.Source, staged.Target, err)
			result.RelationshipsSkipped++
			continue
		}

		rel := model.NewRelationship(relType, src.ID, tgt.ID)
		rel.Documentation = staged.Description
		relations.Add(rel)
		result.RelationshipsCreated++
	}

	result.Diagnostics = dc.Entries()
	s.logger.Info("staging merge complete",
		zap.Int("elements_created", result.ElementsCreated),
		zap.Int("elements_skipped", result.ElementsSkipped),
		zap.Int("relationships_created", result.RelationshipsCreated),
		zap.Int("relationships_skipped", result.RelationshipsSkipped),
	)
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
