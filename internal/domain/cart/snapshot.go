// internal/domain/cart/snapshot.go
package cart

import "github.com/logicbyfred/gallery-store/internal/domain/catalog"

// Resolver looks up a product while restoring a snapshot
type Resolver func(productID string) (*catalog.Product, bool)

// Snapshot captures the lines and drawer state for persistence
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Lines:  make([]SnapshotLine, 0, len(e.order)),
		IsOpen: e.isOpen,
	}
	for _, key := range e.order {
		line := e.lines[key]
		snap.Lines = append(snap.Lines, SnapshotLine{
			ProductID: key.ProductID,
			Size:      key.Size,
			Color:     key.Color,
			Quantity:  line.Quantity,
		})
	}
	return snap
}

// Restore rebuilds an engine from a snapshot. Lines whose product no longer
// resolves or whose quantity is not positive are dropped; repeated keys merge
// by summing their quantities.
func Restore(snap Snapshot, resolve Resolver) *Engine {
	e := NewEngine()
	for _, sl := range snap.Lines {
		if sl.Quantity <= 0 {
			continue
		}
		product, ok := resolve(sl.ProductID)
		if !ok || product == nil {
			continue
		}

		key := Key{ProductID: product.ID, Size: sl.Size, Color: sl.Color}
		if line, exists := e.lines[key]; exists {
			line.Quantity += sl.Quantity
			continue
		}
		e.lines[key] = &Line{Product: product, Size: sl.Size, Color: sl.Color, Quantity: sl.Quantity}
		e.order = append(e.order, key)
	}
	e.isOpen = snap.IsOpen && len(e.order) > 0
	return e
}
