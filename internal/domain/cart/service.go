// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/sirupsen/logrus"
)

var (
	// ErrSessionRequired is returned when no session id accompanies a cart call
	ErrSessionRequired = errors.New("session ID required for cart")
	// ErrInvalidSelection is returned when size or color is not offered for the product
	ErrInvalidSelection = errors.New("selected size or color is not available for this product")
)

// Service handles session-scoped cart operations
type Service struct {
	store   *Store
	catalog catalog.Catalog
	logger  *logrus.Logger
}

// NewService creates a new cart service
func NewService(store *Store, cat catalog.Catalog, logger *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		logger:  logger,
	}
}

// AddItemRequest represents an add to cart request. An empty color
// selects the product's first colorway.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color"`
	Open      bool   `json:"open"`
}

// UpdateQuantityRequest represents an absolute quantity update
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the session's cart
func (s *Service) GetCart(ctx context.Context, sessionID string) (State, error) {
	if sessionID == "" {
		return State{}, ErrSessionRequired
	}

	snap, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return State{}, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	engine, err := s.restore(ctx, snap)
	if err != nil {
		return State{}, err
	}
	return engine.State(), nil
}

// GetItemCount returns the number of units in the cart
func (s *Service) GetItemCount(ctx context.Context, sessionID string) (int, error) {
	state, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return state.TotalItems, nil
}

// AddItem validates the selection against the catalog and adds one unit
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (State, error) {
	prod, err := s.catalog.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return State{}, err
	}
	color := req.Color
	if color == "" {
		color = prod.DefaultColor()
	}
	if !prod.HasSize(req.Size) || !prod.HasColor(color) {
		return State{}, ErrInvalidSelection
	}

	state, err := s.mutate(ctx, sessionID, func(e *Engine) {
		e.AddItem(prod, req.Size, color)
		if req.Open {
			e.OpenCart()
		}
	})
	if err != nil {
		return State{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"product_id": prod.ID,
		"size":       req.Size,
		"color":      color,
	}).Info("Item added to cart")
	return state, nil
}

// RemoveItem removes a line. Unknown keys are ignored.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, key Key) (State, error) {
	return s.mutate(ctx, sessionID, func(e *Engine) {
		e.RemoveItem(key.ProductID, key.Size, key.Color)
	})
}

// UpdateQuantity sets a line's quantity; zero or less removes it
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, key Key, quantity int) (State, error) {
	return s.mutate(ctx, sessionID, func(e *Engine) {
		e.UpdateQuantity(key.ProductID, key.Size, key.Color, quantity)
	})
}

// OpenCart opens the drawer
func (s *Service) OpenCart(ctx context.Context, sessionID string) (State, error) {
	return s.mutate(ctx, sessionID, func(e *Engine) {
		e.OpenCart()
	})
}

// CloseCart closes the drawer
func (s *Service) CloseCart(ctx context.Context, sessionID string) (State, error) {
	return s.mutate(ctx, sessionID, func(e *Engine) {
		e.CloseCart()
	})
}

// ClearCart removes every line. The drawer closes with the last line.
func (s *Service) ClearCart(ctx context.Context, sessionID string) (State, error) {
	return s.mutate(ctx, sessionID, func(e *Engine) {
		e.Clear()
	})
}

// mutate applies fn to the session's engine and persists the result
func (s *Service) mutate(ctx context.Context, sessionID string, fn func(*Engine)) (State, error) {
	if sessionID == "" {
		return State{}, ErrSessionRequired
	}

	var state State
	_, err := s.store.Update(ctx, sessionID, func(snap *Snapshot) error {
		engine, err := s.restore(ctx, *snap)
		if err != nil {
			return err
		}

		wasOpen := engine.IsOpen()
		engine.Subscribe(func(st State) {
			if wasOpen && !st.IsOpen && len(st.Lines) == 0 {
				s.logger.WithField("session_id", sessionID).Debug("Cart emptied, drawer closed")
			}
			wasOpen = st.IsOpen
		})

		fn(engine)
		*snap = engine.Snapshot()
		state = engine.State()
		return nil
	})
	if err != nil {
		return State{}, fmt.Errorf("failed to update cart: %w", err)
	}
	return state, nil
}

// restore resolves every product referenced by the snapshot. Products that
// have left the catalog are dropped; any other lookup failure aborts so a
// transient outage never empties a cart.
func (s *Service) restore(ctx context.Context, snap Snapshot) (*Engine, error) {
	products := make(map[string]*catalog.Product)
	for _, line := range snap.Lines {
		if _, seen := products[line.ProductID]; seen {
			continue
		}
		prod, err := s.catalog.GetProductByID(ctx, line.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			s.logger.WithField("product_id", line.ProductID).Warn("Dropping cart line for unknown product")
			products[line.ProductID] = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cart product: %w", err)
		}
		products[line.ProductID] = prod
	}

	return Restore(snap, func(id string) (*catalog.Product, bool) {
		prod := products[id]
		return prod, prod != nil
	}), nil
}
