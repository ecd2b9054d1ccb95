package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/pkg/diag"
	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

func buildTestModel(t *testing.T) (*model.Model, *model.Node, *model.Node) {
	t.Helper()
	m := model.New("Test")
	alice := model.NewElement("BusinessActor", "Alice")
	portal := model.NewElement("ApplicationComponent", "Customer Portal")
	m.FolderByName("Business").Add(alice)
	m.FolderByName("Application").Add(portal)
	return m, alice, portal
}

func TestBuildElementIndex(t *testing.T) {
	m, alice, portal := buildTestModel(t)

	dc := &diag.Collector{}
	ix := BuildElementIndex(m, dc)

	assert.Equal(t, 2, ix.Len())
	assert.Empty(t, dc.Warnings())

	entry, ok := ix.ByID(alice.ID)
	require.True(t, ok)
	assert.Equal(t, "Alice", entry.Name)
	assert.Equal(t, "BusinessActor", entry.Type)

	_, ok = ix.ByID(portal.ID)
	assert.True(t, ok)
}

func TestBuildElementIndex_SkipsRelationshipsAndUnnamed(t *testing.T) {
	m, alice, portal := buildTestModel(t)
	m.RelationsFolder().Add(model.NewRelationship("AssociationRelationship", alice.ID, portal.ID))
	m.FolderByName("Other").Add(model.NewElement("DataObject", ""))

	ix := BuildElementIndex(m, &diag.Collector{})
	assert.Equal(t, 2, ix.Len())
}

func TestBuildElementIndex_WarnsOnCollisions(t *testing.T) {
	m, _, _ := buildTestModel(t)
	// Same name, different type: allowed with a warning
	m.FolderByName("Application").Add(model.NewElement("ApplicationService", "Alice"))
	// Same name, same type: duplicate warning
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "alice"))

	dc := &diag.Collector{}
	ix := BuildElementIndex(m, dc)

	assert.Equal(t, 4, ix.Len())
	require.GreaterOrEqual(t, len(dc.Warnings()), 2)
}

func TestElementIndex_Lookup_NoHint(t *testing.T) {
	m, alice, _ := buildTestModel(t)
	ix := BuildElementIndex(m, &diag.Collector{})

	entry, err := ix.Lookup("alice", "")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, entry.ID)
	assert.Equal(t, "BusinessActor", entry.Type)
}

func TestElementIndex_Lookup_NotFound(t *testing.T) {
	m, _, _ := buildTestModel(t)
	ix := BuildElementIndex(m, &diag.Collector{})

	_, err := ix.Lookup("Nobody", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestElementIndex_Lookup_WithHint(t *testing.T) {
	m, _, _ := buildTestModel(t)
	m.FolderByName("Application").Add(model.NewElement("ApplicationService", "Alice"))
	ix := BuildElementIndex(m, &diag.Collector{})

	entry, err := ix.Lookup("Alice", "ApplicationService")
	require.NoError(t, err)
	assert.Equal(t, "ApplicationService", entry.Type)

	_, err = ix.Lookup("Alice", "DataObject")
	require.Error(t, err)
	assert.True(t, apperrors.IsTypeMismatch(err))
}

func TestElementIndex_Lookup_Ambiguous(t *testing.T) {
	m, _, _ := buildTestModel(t)
	m.FolderByName("Application").Add(model.NewElement("ApplicationService", "Alice"))
	ix := BuildElementIndex(m, &diag.Collector{})

	_, err := ix.Lookup("Alice", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsAmbiguous(err))
}

func TestElementIndex_Lookup_SameTypeDuplicatesNotAmbiguous(t *testing.T) {
	m, alice, _ := buildTestModel(t)
	m.FolderByName("Business").Add(model.NewElement("BusinessActor", "Alice"))
	ix := BuildElementIndex(m, &diag.Collector{})

	// Two entries of the same type resolve to the first one
	entry, err := ix.Lookup("Alice", "")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, entry.ID)
}

func TestElementIndex_HasNameType(t *testing.T) {
	m, _, _ := buildTestModel(t)
	ix := BuildElementIndex(m, &diag.Collector{})

	assert.True(t, ix.HasNameType("ALICE", "BusinessActor"))
	assert.False(t, ix.HasNameType("Alice", "ApplicationService"))
	assert.False(t, ix.HasNameType("Nobody", "BusinessActor"))
}

func TestElementIndex_Add(t *testing.T) {
	ix := NewElementIndex()
	ix.Add("Payments", "id-1", "ApplicationService")

	entry, err := ix.Lookup("payments", "")
	require.NoError(t, err)
	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, 1, ix.Len())
}
