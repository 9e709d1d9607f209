package transport_test

import (
	"context"
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

type nopCartStore struct{}

func (nopCartStore) Load() ([]model.CartLine, error) { return nil, nil }
func (nopCartStore) Save([]model.CartLine) error     { return nil }

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(service.Event) error { return nil }

type stubAuthGateway struct {
	mu      sync.Mutex
	session *model.Session
	subs    []func(*model.Session)
}

func (s *stubAuthGateway) CurrentSession(context.Context) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

func (s *stubAuthGateway) OnSessionChange(fn func(*model.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	return func() {}
}

func (s *stubAuthGateway) SignIn(_ context.Context, _, _ string) (*model.Session, error) {
	return s.session, nil
}

func (s *stubAuthGateway) SignUp(_ context.Context, _, _, _ string) (*model.Session, error) {
	return s.session, nil
}

func (s *stubAuthGateway) SignOut(context.Context) error {
	s.mu.Lock()
	s.session = nil
	subs := make([]func(*model.Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

type stubProductRepository struct {
	products []model.Product
	err      error
}

func (s *stubProductRepository) List(_ context.Context, search string) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubProductRepository) Find(_ context.Context, id string) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (s *stubProductRepository) Create(context.Context, model.Product) error { return s.err }
func (s *stubProductRepository) Update(context.Context, model.Product) error { return s.err }
func (s *stubProductRepository) Delete(context.Context, string) error        { return s.err }

type stubOrderRepository struct {
	err error
}

func (s *stubOrderRepository) Insert(_ context.Context, order model.Order) (model.Order, error) {
	if s.err != nil {
		return model.Order{}, s.err
	}
	order.ID = "order-1"
	return order, nil
}

func (s *stubOrderRepository) InsertItems(context.Context, []model.OrderItem) error { return s.err }
func (s *stubOrderRepository) ListByUser(context.Context, string) ([]model.Order, error) {
	return nil, s.err
}

func (s *stubOrderRepository) ListSummaries(context.Context) ([]model.OrderSummary, error) {
	return nil, s.err
}

func (s *stubOrderRepository) Find(context.Context, string) (*model.OrderDetail, error) {
	return nil, model.ErrOrderNotFound
}

func (s *stubOrderRepository) FindItems(context.Context, string) ([]model.OrderItemDetail, error) {
	return nil, s.err
}

func (s *stubOrderRepository) UpdateStatus(context.Context, string, string) error { return s.err }

type stubAddressRepository struct {
	addresses []model.ShippingAddress
	err       error
}

func (s *stubAddressRepository) ListByProfile(context.Context, string) ([]model.ShippingAddress, error) {
	return s.addresses, s.err
}

func (s *stubAddressRepository) Insert(_ context.Context, address model.ShippingAddress) (model.ShippingAddress, error) {
	if s.err != nil {
		return model.ShippingAddress{}, s.err
	}
	address.ID = "addr-1"
	s.addresses = append(s.addresses, address)
	return address, nil
}

type stubProfileRepository struct {
	profiles map[string]*model.Profile
}

func (s *stubProfileRepository) Find(_ context.Context, id string) (*model.Profile, error) {
	if profile, ok := s.profiles[id]; ok {
		return profile, nil
	}
	return nil, model.ErrProfileNotFound
}
