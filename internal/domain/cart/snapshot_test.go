package cart

import (
	"encoding/json"
	"testing"

	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverFor(products ...*catalog.Product) Resolver {
	byID := map[string]*catalog.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (*catalog.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestSnapshot_WireFormat(t *testing.T) {
	e := NewEngine()
	e.AddItem(newProduct("tee", "40.00"), "M", "Red")
	e.OpenCart()

	data, err := json.Marshal(e.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[{"productId":"tee","size":"M","color":"Red","quantity":1}],"isOpen":true}`, string(data))
}

func TestRestore_RebuildsOrderAndDrawer(t *testing.T) {
	tee := newProduct("tee", "40.00")
	cap := newProduct("cap", "25.00")

	e := NewEngine()
	e.AddItem(tee, "M", "Red")
	e.AddItem(cap, "S", "Blue")
	e.UpdateQuantity("tee", "M", "Red", 2)
	e.OpenCart()

	restored := Restore(e.Snapshot(), resolverFor(tee, cap))

	assert.Equal(t, e.Lines(), restored.Lines())
	assert.True(t, restored.IsOpen())
	assert.Equal(t, "105.00", restored.TotalPrice().StringFixed(2))
}

func TestRestore_DropsUnknownProductsAndBadQuantities(t *testing.T) {
	tee := newProduct("tee", "40.00")
	snap := Snapshot{
		Lines: []SnapshotLine{
			{ProductID: "retired", Size: "M", Color: "Red", Quantity: 1},
			{ProductID: "tee", Size: "M", Color: "Red", Quantity: 0},
			{ProductID: "tee", Size: "L", Color: "Red", Quantity: 1},
		},
	}

	e := Restore(snap, resolverFor(tee))

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "L", lines[0].Size)
}

func TestRestore_MergesDuplicateKeys(t *testing.T) {
	tee := newProduct("tee", "40.00")
	snap := Snapshot{
		Lines: []SnapshotLine{
			{ProductID: "tee", Size: "M", Color: "Red", Quantity: 1},
			{ProductID: "tee", Size: "M", Color: "Red", Quantity: 2},
		},
	}

	e := Restore(snap, resolverFor(tee))

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestRestore_OpenFlagOverEmptyCartIsClosed(t *testing.T) {
	snap := Snapshot{
		Lines:  []SnapshotLine{{ProductID: "retired", Size: "M", Color: "Red", Quantity: 1}},
		IsOpen: true,
	}

	e := Restore(snap, resolverFor())

	assert.Equal(t, 0, e.Len())
	assert.False(t, e.IsOpen())
}
