// internal/domain/cart/engine.go
package cart

import (
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Observer is notified with the cart state after every mutation
type Observer func(State)

// Engine owns the line items and drawer visibility of one session.
//
// Every operation is total: unknown keys are absorbed as no-ops and nothing
// returns an error. An Engine is not safe for concurrent use.
type Engine struct {
	order     []Key
	lines     map[Key]*Line
	isOpen    bool
	observers []Observer
}

// NewEngine creates an empty, closed cart
func NewEngine() *Engine {
	return &Engine{
		lines: make(map[Key]*Line),
	}
}

// Subscribe registers an observer for post-mutation state
func (e *Engine) Subscribe(o Observer) {
	e.observers = append(e.observers, o)
}

// AddItem merges into the line with the same key or appends a new line with
// quantity 1. The selection is not checked against the product's sizes and
// colors.
func (e *Engine) AddItem(product *catalog.Product, size, color string) {
	if product == nil {
		return
	}

	key := Key{ProductID: product.ID, Size: size, Color: color}
	if line, ok := e.lines[key]; ok {
		line.Quantity++
	} else {
		e.lines[key] = &Line{Product: product, Size: size, Color: color, Quantity: 1}
		e.order = append(e.order, key)
	}
	e.commit()
}

// RemoveItem deletes the line with the given key if present
func (e *Engine) RemoveItem(productID, size, color string) {
	e.remove(Key{ProductID: productID, Size: size, Color: color})
	e.commit()
}

// UpdateQuantity sets an absolute quantity. Zero or less removes the line.
func (e *Engine) UpdateQuantity(productID, size, color string, quantity int) {
	key := Key{ProductID: productID, Size: size, Color: color}
	if quantity <= 0 {
		e.remove(key)
	} else if line, ok := e.lines[key]; ok {
		line.Quantity = quantity
	}
	e.commit()
}

// Clear removes every line
func (e *Engine) Clear() {
	e.order = nil
	e.lines = make(map[Key]*Line)
	e.commit()
}

// OpenCart opens the drawer
func (e *Engine) OpenCart() {
	e.isOpen = true
	e.commit()
}

// CloseCart closes the drawer
func (e *Engine) CloseCart() {
	e.isOpen = false
	e.commit()
}

// IsOpen reports drawer visibility
func (e *Engine) IsOpen() bool {
	return e.isOpen
}

// Len is the number of distinct lines
func (e *Engine) Len() int {
	return len(e.order)
}

// Line returns a copy of the line with the given key
func (e *Engine) Line(key Key) (Line, bool) {
	line, ok := e.lines[key]
	if !ok {
		return Line{}, false
	}
	return *line, true
}

// Lines returns copies of the lines in insertion order
func (e *Engine) Lines() []Line {
	lines := make([]Line, 0, len(e.order))
	for _, key := range e.order {
		lines = append(lines, *e.lines[key])
	}
	return lines
}

// TotalItems counts units across all lines
func (e *Engine) TotalItems() int {
	total := 0
	for _, line := range e.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price times quantity across all lines
func (e *Engine) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, key := range e.order {
		total = total.Add(e.lines[key].Subtotal())
	}
	return total
}

// State returns the observable cart state
func (e *Engine) State() State {
	return State{
		Lines:      e.Lines(),
		IsOpen:     e.isOpen,
		TotalItems: e.TotalItems(),
		TotalPrice: e.TotalPrice(),
	}
}

func (e *Engine) remove(key Key) {
	if _, ok := e.lines[key]; !ok {
		return
	}
	delete(e.lines, key)
	for i, candidate := range e.order {
		if candidate == key {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// commit runs after every mutation. An open drawer never stays open over an
// empty cart, and observers only ever see the corrected state.
func (e *Engine) commit() {
	if e.isOpen && len(e.order) == 0 {
		e.isOpen = false
	}

	if len(e.observers) == 0 {
		return
	}
	state := e.State()
	for _, o := range e.observers {
		o(state)
	}
}
