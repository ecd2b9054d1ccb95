package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
)

func relTestModel(t *testing.T) (*model.Model, *model.Node, *model.Node, *model.Node) {
	t.Helper()
	m := model.New("Test")
	actor := model.NewElement("BusinessActor", "Clerk")
	process := model.NewElement("BusinessProcess", "Invoicing")
	lonely := model.NewElement("Goal", "Growth")
	m.FolderByName("Business").Add(actor)
	m.FolderByName("Business").Add(process)
	m.FolderByName("Motivation").Add(lonely)
	return m, actor, process, lonely
}

func TestBuildRelationshipIndex_Adjacency(t *testing.T) {
	m, actor, process, lonely := relTestModel(t)
	m.RelationsFolder().Add(model.NewRelationship("ServingRelationship", actor.ID, process.ID))

	ix := BuildRelationshipIndex(m)

	out := ix.Neighbors(actor.ID)
	require.Len(t, out, 1)
	assert.Equal(t, process.ID, out[0].PeerID)
	assert.Equal(t, "ServingRelationship", out[0].Type)
	assert.Equal(t, DirectionOut, out[0].Direction)

	in := ix.Neighbors(process.ID)
	require.Len(t, in, 1)
	assert.Equal(t, actor.ID, in[0].PeerID)
	assert.Equal(t, DirectionIn, in[0].Direction)

	assert.Empty(t, ix.Neighbors(lonely.ID))
}

func TestBuildRelationshipIndex_Degrees(t *testing.T) {
	m, actor, process, lonely := relTestModel(t)
	m.RelationsFolder().Add(model.NewRelationship("ServingRelationship", actor.ID, process.ID))
	m.RelationsFolder().Add(model.NewRelationship("AssociationRelationship", actor.ID, process.ID))

	ix := BuildRelationshipIndex(m)

	assert.Equal(t, Degree{In: 0, Out: 2}, ix.DegreeOf(actor.ID))
	assert.Equal(t, Degree{In: 2, Out: 0}, ix.DegreeOf(process.ID))
	assert.Equal(t, Degree{}, ix.DegreeOf(lonely.ID))
}

func TestBuildRelationshipIndex_IgnoresUnknownEndpoints(t *testing.T) {
	m, actor, _, _ := relTestModel(t)
	m.RelationsFolder().Add(model.NewRelationship("FlowRelationship", actor.ID, "id-missing"))
	m.RelationsFolder().Add(model.NewRelationship("FlowRelationship", "id-ghost", "id-missing"))

	ix := BuildRelationshipIndex(m)

	// The known endpoint still gets its half of the adjacency
	require.Len(t, ix.Neighbors(actor.ID), 1)
	assert.Equal(t, Degree{Out: 1}, ix.DegreeOf(actor.ID))

	// Unknown ids never gain adjacency lists or degrees
	assert.Empty(t, ix.Neighbors("id-missing"))
	assert.Empty(t, ix.Neighbors("id-ghost"))
	assert.Equal(t, Degree{}, ix.DegreeOf("id-missing"))
}

func TestRelationshipIndex_HasRelationship(t *testing.T) {
	m, actor, process, lonely := relTestModel(t)
	m.RelationsFolder().Add(model.NewRelationship("ServingRelationship", actor.ID, process.ID))

	ix := BuildRelationshipIndex(m)

	assert.True(t, ix.HasRelationship(actor.ID, process.ID, "ServingRelationship"))
	assert.True(t, ix.HasRelationship(process.ID, actor.ID, "ServingRelationship"))
	assert.False(t, ix.HasRelationship(actor.ID, process.ID, "FlowRelationship"))
	assert.False(t, ix.HasRelationship(actor.ID, lonely.ID, "ServingRelationship"))
	assert.True(t, ix.HasRelationship(actor.ID, process.ID, "FlowRelationship", "ServingRelationship"))
}

func TestRelationshipIndex_Isolated(t *testing.T) {
	m, actor, process, lonely := relTestModel(t)
	m.RelationsFolder().Add(model.NewRelationship("ServingRelationship", actor.ID, process.ID))

	ix := BuildRelationshipIndex(m)

	assert.Equal(t, []string{lonely.ID}, ix.Isolated())
}
