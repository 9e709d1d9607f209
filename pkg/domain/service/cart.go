package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

// CartService owns the client-side shopping cart. The cart lives in this
// process, independent of authentication, and every mutation writes the full
// snapshot through the cart store so a restart picks it up again.
type CartService interface {
	AddToCart(product model.Product)
	UpdateQuantity(productID string, quantity int)
	RemoveFromCart(productID string)
	ClearCart()
	Lines() []model.CartLine
	Total() decimal.Decimal
	Checkout(ctx context.Context) error
}

func NewCartService(store model.CartStore, auth model.AuthGateway, orders model.OrderRepository, dispatcher EventDispatcher) CartService {
	s := &cartService{
		store:      store,
		auth:       auth,
		orders:     orders,
		dispatcher: dispatcher,
	}

	lines, err := store.Load()
	if err != nil {
		log.WithError(err).Warn("Could not hydrate cart, starting empty")
		lines = nil
	}
	s.lines = lines

	return s
}

type cartService struct {
	store      model.CartStore
	auth       model.AuthGateway
	orders     model.OrderRepository
	dispatcher EventDispatcher

	mu    sync.Mutex
	lines []model.CartLine
}

func (s *cartService) AddToCart(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity++
			s.persist()
			_ = s.dispatcher.Dispatch(model.ItemAddedToCart{ProductID: product.ID, Quantity: s.lines[i].Quantity})
			return
		}
	}

	s.lines = append(s.lines, model.CartLine{Product: product, Quantity: 1})
	s.persist()
	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{ProductID: product.ID, Quantity: 1})
}

// UpdateQuantity stores the given quantity verbatim, zero and negative
// values included.
// TODO: decide whether quantity <= 0 should remove the line instead.
func (s *cartService) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

func (s *cartService) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			_ = s.dispatcher.Dispatch(model.ItemRemovedFromCart{ProductID: productID})
			return
		}
	}
}

func (s *cartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *cartService) clearLocked() {
	s.lines = nil
	s.persist()
	_ = s.dispatcher.Dispatch(model.CartCleared{})
}

func (s *cartService) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Total is recomputed from the current lines on every call, never cached.
func (s *cartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.lines)
}

func total(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// Checkout places an order for the current cart: one orders row, then the
// order_items batch, then the cart is cleared. The two inserts are not
// covered by a transaction; when the items insert fails the already written
// order row stays behind and the error is returned as is.
func (s *cartService) Checkout(ctx context.Context) error {
	session, err := s.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return model.ErrUnauthenticated
	}

	s.mu.Lock()
	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	s.mu.Unlock()

	order, err := s.orders.Insert(ctx, model.Order{
		UserID:     session.UserID,
		TotalPrice: total(lines),
	})
	if err != nil {
		return err
	}

	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if err := s.orders.InsertItems(ctx, items); err != nil {
		return err
	}

	s.mu.Lock()
	s.clearLocked()
	s.mu.Unlock()

	_ = s.dispatcher.Dispatch(model.OrderPlaced{
		OrderID:    order.ID,
		UserID:     session.UserID,
		TotalPrice: order.TotalPrice,
		ItemCount:  len(items),
	})
	return nil
}

// persist is called with the lock held after every mutation. A failed write
// is logged and otherwise ignored; the in-memory cart stays authoritative.
func (s *cartService) persist() {
	snapshot := make([]model.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	if err := s.store.Save(snapshot); err != nil {
		log.WithError(err).Error("Failed to persist cart snapshot")
	}
}
