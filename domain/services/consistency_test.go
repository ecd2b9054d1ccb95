package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
)

func newTestEngine(t *testing.T) *ConsistencyEngine {
	t.Helper()
	return NewConsistencyEngine(registry.Default(), zap.NewNop())
}

func TestConsistencyEngine_Run_CleanModel(t *testing.T) {
	m := model.New("Clean")
	actor := model.NewElement("BusinessActor", "Clerk")
	role := model.NewElement("BusinessRole", "Approver")
	m.FolderByName("Business").Add(actor)
	m.FolderByName("Business").Add(role)
	m.RelationsFolder().Add(model.NewRelationship(registry.RelServing, actor.ID, role.ID))

	report := newTestEngine(t).Run(m)

	assert.True(t, report.Clean())
	assert.Equal(t, 0, report.Total())
}

func TestConsistencyEngine_RelocatesMisfiledElements(t *testing.T) {
	m := model.New("Test")
	actor := model.NewElement("BusinessActor", "Clerk")
	m.FolderByName("Other").Add(actor)

	report := newTestEngine(t).Run(m)

	require.Len(t, report.Relocated, 1)
	assert.Contains(t, report.Relocated[0], "moved from 'Other' to 'Business'")
	assert.True(t, m.FolderByName("Business").Contains(actor.ID))
	assert.False(t, m.FolderByName("Other").Contains(actor.ID))
}

func TestConsistencyEngine_RelocatesRelationshipsToRelations(t *testing.T) {
	m := model.New("Test")
	actor := model.NewElement("BusinessActor", "Clerk")
	role := model.NewElement("BusinessRole", "Approver")
	m.FolderByName("Business").Add(actor)
	m.FolderByName("Business").Add(role)
	rel := model.NewRelationship(registry.RelServing, actor.ID, role.ID)
	m.FolderByName("Business").Add(rel)

	report := newTestEngine(t).Run(m)

	require.Len(t, report.Relocated, 1)
	assert.True(t, m.RelationsFolder().Contains(rel.ID))
}

func TestConsistencyEngine_KeepsUnmappedTypesInOther(t *testing.T) {
	m := model.New("Test")
	m.FolderByName("Other").Add(model.NewElement("Grouping", "Misc"))

	report := newTestEngine(t).Run(m)

	assert.Empty(t, report.Relocated)
}

func TestConsistencyEngine_SkipsDiagramFolders(t *testing.T) {
	m := model.New("Test")
	diagram := model.NewElement("ArchimateDiagramModel", "Overview")
	m.FolderByName("Views").Add(diagram)

	report := newTestEngine(t).Run(m)

	assert.Empty(t, report.Relocated)
	assert.True(t, m.FolderByName("Views").Contains(diagram.ID))
}

func TestConsistencyEngine_RemovesMissingEndpoints(t *testing.T) {
	m := model.New("Test")
	actor := model.NewElement("BusinessActor", "Clerk")
	m.FolderByName("Business").Add(actor)
	rel := model.NewRelationship(registry.RelServing, actor.ID, "id-missing")
	m.RelationsFolder().Add(rel)

	report := newTestEngine(t).Run(m)

	require.Len(t, report.RemovedIllegal, 1)
	assert.Contains(t, report.RemovedIllegal[0], "missing endpoint")
	assert.Nil(t, m.NodeByID(rel.ID))
}

func TestConsistencyEngine_RetypesByPriority(t *testing.T) {
	m := model.New("Test")
	capability := model.NewElement("Capability", "Online Sales")
	goal := model.NewElement("Goal", "Increase Revenue")
	m.FolderByName("Strategy").Add(capability)
	m.FolderByName("Motivation").Add(goal)
	// Flow is illegal here; Realization outranks Influence and Association
	rel := model.NewRelationship(registry.RelFlow, capability.ID, goal.ID)
	m.RelationsFolder().Add(rel)

	report := newTestEngine(t).Run(m)

	require.Len(t, report.Fixed, 1)
	assert.Contains(t, report.Fixed[0], "retyped to "+registry.RelRealization)
	assert.Equal(t, registry.RelRealization, rel.Type)
	assert.Equal(t, capability.ID, rel.Source)
	assert.Equal(t, goal.ID, rel.Target)
}

func TestConsistencyEngine_RetypesToAssociationAsFallback(t *testing.T) {
	m := model.New("Test")
	component := model.NewElement("ApplicationComponent", "Portal")
	actor := model.NewElement("BusinessActor", "Customer")
	m.FolderByName("Application").Add(component)
	m.FolderByName("Business").Add(actor)
	rel := model.NewRelationship(registry.RelComposition, component.ID, actor.ID)
	m.RelationsFolder().Add(rel)

	report := newTestEngine(t).Run(m)

	require.Len(t, report.Fixed, 1)
	assert.Equal(t, registry.RelAssociation, rel.Type)
}

func TestConsistencyEngine_RemovesDuplicates(t *testing.T) {
	m := model.New("Test")
	actor := model.NewElement("BusinessActor", "Clerk")
	role := model.NewElement("BusinessRole", "Approver")
	m.FolderByName("Business").Add(actor)
	m.FolderByName("Business").Add(role)

	first := model.NewRelationship(registry.RelServing, actor.ID, role.ID)
	second := model.NewRelationship(registry.RelServing, actor.ID, role.ID)
	other := model.NewRelationship(registry.RelAssociation, actor.ID, role.ID)
	m.RelationsFolder().Add(first)
	m.RelationsFolder().Add(second)
	m.RelationsFolder().Add(other)

	report := newTestEngine(t).Run(m)

	require.Len(t, report.RemovedDuplicates, 1)
	// First occurrence survives, differing types are not duplicates
	assert.NotNil(t, m.NodeByID(first.ID))
	assert.Nil(t, m.NodeByID(second.ID))
	assert.NotNil(t, m.NodeByID(other.ID))
}

func TestConsistencyEngine_RepairThenDeduplicate(t *testing.T) {
	m := model.New("Test")
	capability := model.NewElement("Capability", "Online Sales")
	goal := model.NewElement("Goal", "Increase Revenue")
	m.FolderByName("Strategy").Add(capability)
	m.FolderByName("Motivation").Add(goal)

	// A legal Realization plus an illegal Flow that repair turns into the
	// same Realization triple
	m.RelationsFolder().Add(model.NewRelationship(registry.RelRealization, capability.ID, goal.ID))
	m.RelationsFolder().Add(model.NewRelationship(registry.RelFlow, capability.ID, goal.ID))

	report := newTestEngine(t).Run(m)

	assert.Len(t, report.Fixed, 1)
	assert.Len(t, report.RemovedDuplicates, 1)
	assert.Len(t, m.Relationships(), 1)
}

func TestConsistencyEngine_RunIsIdempotent(t *testing.T) {
	m := model.New("Test")
	actor := model.NewElement("BusinessActor", "Clerk")
	goal := model.NewElement("Goal", "Growth")
	m.FolderByName("Other").Add(actor)
	m.FolderByName("Business").Add(goal)
	m.RelationsFolder().Add(model.NewRelationship(registry.RelFlow, actor.ID, goal.ID))
	m.RelationsFolder().Add(model.NewRelationship(registry.RelServing, actor.ID, "id-missing"))

	engine := newTestEngine(t)
	first := engine.Run(m)
	require.Greater(t, first.Total(), 0)

	second := engine.Run(m)
	assert.True(t, second.Clean(), second.Render())
}

func TestCleanupReport_Render(t *testing.T) {
	clean := &CleanupReport{}
	assert.Contains(t, clean.Render(), "No issues found.")

	report := &CleanupReport{
		Relocated: []string{"BusinessActor 'Clerk' moved from 'Other' to 'Business'"},
		Fixed:     []string{"'A' -[FlowRelationship]-> 'B' retyped to RealizationRelationship"},
	}
	rendered := report.Render()
	assert.Contains(t, rendered, "Model Consistency Report")
	assert.Contains(t, rendered, "Relocated elements (1):")
	assert.Contains(t, rendered, "Fixed relationships (1):")
	assert.Contains(t, rendered, "Total changes: 2")
	assert.NotContains(t, rendered, "Removed illegal")
}
