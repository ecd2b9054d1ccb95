package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/index"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/diag"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

func newTestStaging(t *testing.T) *StagingService {
	t.Helper()
	return NewStagingService(registry.Default(), zap.NewNop())
}

func TestStagingService_Parse_ObjectShape(t *testing.T) {
	payload := []byte(`{
		"elements": [
			{"type": "BusinessActor", "name": "Customer", "description": "Buys things"},
			{"type": "ApplicationService", "name": "Billing"}
		],
		"relationships": [
			{"type": "ServingRelationship", "source": "Billing", "target": "Customer"}
		]
	}`)

	dc := &diag.Collector{}
	parsed, err := newTestStaging(t).Parse(payload, dc)
	require.NoError(t, err)

	require.Len(t, parsed.Elements, 2)
	assert.Equal(t, "Customer", parsed.Elements[0].Name)
	assert.Equal(t, "Buys things", parsed.Elements[0].Description)
	require.Len(t, parsed.Relationships, 1)
	assert.Equal(t, "Billing", parsed.Relationships[0].Source)
	assert.Equal(t, 0, dc.Len())
}

func TestStagingService_Parse_ObjectShape_NameFields(t *testing.T) {
	payload := []byte(`{
		"relationships": [
			{"type": "ServingRelationship", "source_name": "Billing", "target_name": "Customer"}
		]
	}`)

	parsed, err := newTestStaging(t).Parse(payload, &diag.Collector{})
	require.NoError(t, err)
	require.Len(t, parsed.Relationships, 1)
	assert.Equal(t, "Billing", parsed.Relationships[0].Source)
	assert.Equal(t, "Customer", parsed.Relationships[0].Target)
}

func TestStagingService_Parse_FlatShape(t *testing.T) {
	payload := []byte(`[
		{"element_type": "BusinessActor", "name": "Customer"},
		{"element_type": "ApplicationService", "name": "Billing", "description": "Invoices"},
		{"type": "ServingRelationship", "source_name": "Billing", "target_name": "Customer"}
	]`)

	dc := &diag.Collector{}
	parsed, err := newTestStaging(t).Parse(payload, dc)
	require.NoError(t, err)

	require.Len(t, parsed.Elements, 2)
	assert.Equal(t, "Invoices", parsed.Elements[1].Description)
	require.Len(t, parsed.Relationships, 1)
	assert.Equal(t, 0, dc.Len())
}

func TestStagingService_Parse_InvalidJSONFails(t *testing.T) {
	svc := newTestStaging(t)

	for _, payload := range []string{"", "   ", "not json", `{"elements": [`, `[{]`} {
		_, err := svc.Parse([]byte(payload), &diag.Collector{})
		require.Error(t, err, payload)
		assert.True(t, apperrors.IsParse(err), payload)
	}
}

func TestStagingService_Parse_DropsMalformedItems(t *testing.T) {
	payload := []byte(`{
		"elements": [
			{"type": "BusinessActor", "name": "Customer"},
			{"type": "BusinessActor"},
			{"type": "BusinessActor", "name": 42}
		],
		"relationships": [
			{"type": "ServingRelationship", "source": "A"}
		]
	}`)

	dc := &diag.Collector{}
	parsed, err := newTestStaging(t).Parse(payload, dc)
	require.NoError(t, err)

	assert.Len(t, parsed.Elements, 1)
	assert.Empty(t, parsed.Relationships)
	assert.Len(t, dc.Warnings(), 3)
}

func TestStagingService_Parse_FlatShape_DropsUnrecognisedRecords(t *testing.T) {
	payload := []byte(`[
		{"element_type": "BusinessActor", "name": "Customer"},
		{"colour": "blue"}
	]`)

	dc := &diag.Collector{}
	parsed, err := newTestStaging(t).Parse(payload, dc)
	require.NoError(t, err)

	assert.Len(t, parsed.Elements, 1)
	assert.Len(t, dc.Warnings(), 1)
}

func mergeTestModel(t *testing.T) (*model.Model, *index.ElementIndex) {
	t.Helper()
	m := model.New("Test")
	return m, index.BuildElementIndex(m, &diag.Collector{})
}

func TestStagingService_Merge_CreatesElementsInMappedFolders(t *testing.T) {
	m, ix := mergeTestModel(t)
	payload := &StagedPayload{
		Elements: []StagedElement{
			{Type: "BusinessActor", Name: "Customer", Description: "Buys things"},
			{Type: "archimate:Goal", Name: "Growth"},
			{Type: "Gizmo", Name: "Oddity"},
		},
	}

	result := newTestStaging(t).Merge(m, payload, ix, &diag.Collector{})

	assert.Equal(t, 3, result.ElementsCreated)
	assert.Equal(t, 0, result.ElementsSkipped)

	actor, err := ix.Lookup("Customer", "")
	require.NoError(t, err)
	node := m.NodeByID(actor.ID)
	require.NotNil(t, node)
	assert.Equal(t, "Buys things", node.Documentation)
	assert.True(t, m.FolderByName("Business").Contains(actor.ID))

	goal, err := ix.Lookup("Growth", "")
	require.NoError(t, err)
	assert.Equal(t, "Goal", goal.Type)
	assert.True(t, m.FolderByName("Motivation").Contains(goal.ID))

	oddity, err := ix.Lookup("Oddity", "")
	require.NoError(t, err)
	assert.True(t, m.FolderByName("Other").Contains(oddity.ID))
}

func TestStagingService_Merge_SkipsDuplicateElements(t *testing.T) {
	m, _ := mergeTestModel(t)
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "Customer"))
	ix := index.BuildElementIndex(m, &diag.Collector{})

	payload := &StagedPayload{
		Elements: []StagedElement{
			{Type: "BusinessActor", Name: "customer"},
			{Type: "ApplicationService", Name: "Customer"},
		},
	}

	result := newTestStaging(t).Merge(m, payload, ix, &diag.Collector{})

	// Same name and type skips; same name with a new type is created
	assert.Equal(t, 1, result.ElementsCreated)
	assert.Equal(t, 1, result.ElementsSkipped)
}

func TestStagingService_Merge_RejectsRelationshipTypedElements(t *testing.T) {
	m, ix := mergeTestModel(t)
	payload := &StagedPayload{
		Elements: []StagedElement{
			{Type: "ServingRelationship", Name: "Oops"},
		},
	}

	dc := &diag.Collector{}
	result := newTestStaging(t).Merge(m, payload, ix, dc)

	assert.Equal(t, 0, result.ElementsCreated)
	assert.Equal(t, 1, result.ElementsSkipped)
	assert.Len(t, dc.Warnings(), 1)
}

func TestStagingService_Merge_ResolvesBatchLocalEndpoints(t *testing.T) {
	m, ix := mergeTestModel(t)
	payload := &StagedPayload{
		Elements: []StagedElement{
			{Type: "ApplicationService", Name: "Billing"},
			{Type: "BusinessActor", Name: "Customer"},
		},
		Relationships: []StagedRelationship{
			{Type: "ServingRelationship", Source: "Billing", Target: "Customer", Description: "invoices"},
		},
	}

	result := newTestStaging(t).Merge(m, payload, ix, &diag.Collector{})

	assert.Equal(t, 2, result.ElementsCreated)
	assert.Equal(t, 1, result.RelationshipsCreated)

	rels := m.Relationships()
	require.Len(t, rels, 1)
	assert.Equal(t, "ServingRelationship", rels[0].Type)
	assert.Equal(t, "invoices", rels[0].Documentation)
	assert.True(t, m.RelationsFolder().Contains(rels[0].ID))

	billing, err := ix.Lookup("Billing", "")
	require.NoError(t, err)
	assert.Equal(t, billing.ID, rels[0].Source)
}

func TestStagingService_Merge_SkipsUnresolvedEndpoints(t *testing.T) {
	m, _ := mergeTestModel(t)
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "Customer"))
	ix := index.BuildElementIndex(m, &diag.Collector{})

	payload := &StagedPayload{
		Relationships: []StagedRelationship{
			{Type: "ServingRelationship", Source: "Nobody", Target: "Customer"},
		},
	}

	dc := &diag.Collector{}
	result := newTestStaging(t).Merge(m, payload, ix, dc)

	assert.Equal(t, 0, result.RelationshipsCreated)
	assert.Equal(t, 1, result.RelationshipsSkipped)
	assert.Len(t, dc.Warnings(), 1)
	assert.Empty(t, m.Relationships())
}

func TestStagingService_Merge_SkipsAmbiguousEndpoints(t *testing.T) {
	m, _ := mergeTestModel(t)
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "Report"))
	m.FolderByName("Application").Add(model.NewElement("DataObject", "Report"))
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "Customer"))
	ix := index.BuildElementIndex(m, &diag.Collector{})

	payload := &StagedPayload{
		Relationships: []StagedRelationship{
			{Type: "AssociationRelationship", Source: "Customer", Target: "Report"},
		},
	}

	result := newTestStaging(t).Merge(m, payload, ix, &diag.Collector{})

	assert.Equal(t, 0, result.RelationshipsCreated)
	assert.Equal(t, 1, result.RelationshipsSkipped)
}

func TestStagingService_Merge_SkipsUnknownRelationshipTypes(t *testing.T) {
	m, _ := mergeTestModel(t)
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "A"))
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "B"))
	ix := index.BuildElementIndex(m, &diag.Collector{})

	payload := &StagedPayload{
		Relationships: []StagedRelationship{
			{Type: "FancyRelationship", Source: "A", Target: "B"},
		},
	}

	result := newTestStaging(t).Merge(m, payload, ix, &diag.Collector{})

	assert.Equal(t, 0, result.RelationshipsCreated)
	assert.Equal(t, 1, result.RelationshipsSkipped)
}

func TestStagingService_Merge_NoLegalityCheck(t *testing.T) {
	m, ix := mergeTestModel(t)
	payload := &StagedPayload{
		Elements: []StagedElement{
			{Type: "BusinessActor", Name: "Customer"},
			{Type: "DataObject", Name: "Invoice"},
		},
		Relationships: []StagedRelationship{
			// Illegal triple; the consistency engine repairs it later
			{Type: "CompositionRelationship", Source: "Customer", Target: "Invoice"},
		},
	}

	result := newTestStaging(t).Merge(m, payload, ix, &diag.Collector{})

	assert.Equal(t, 1, result.RelationshipsCreated)
}
