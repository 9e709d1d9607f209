package tests

import (
	"context"
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

type mockCartStore struct {
	loadLines []model.CartLine
	loadErr   error
	saveErr   error
	saves     [][]model.CartLine
}

func (m *mockCartStore) Load() ([]model.CartLine, error) { return m.loadLines, m.loadErr }
func (m *mockCartStore) Save(lines []model.CartLine) error {
	m.saves = append(m.saves, lines)
	return m.saveErr
}

type mockAuthGateway struct {
	mu      sync.Mutex
	session *model.Session
	err     error
	subs    []func(*model.Session)
}

func (m *mockAuthGateway) CurrentSession(context.Context) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.err
}

func (m *mockAuthGateway) OnSessionChange(fn func(*model.Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
	return func() {}
}

func (m *mockAuthGateway) SignIn(_ context.Context, _, _ string) (*model.Session, error) {
	m.mu.Lock()
	session := m.session
	m.mu.Unlock()
	m.emit(session)
	return session, nil
}

func (m *mockAuthGateway) SignUp(_ context.Context, _, _, _ string) (*model.Session, error) {
	return m.session, nil
}

func (m *mockAuthGateway) SignOut(context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	m.emit(nil)
	return nil
}

// emit delivers a session change to every subscriber, the way the data
// service client does after sign-in, token refresh or sign-out.
func (m *mockAuthGateway) emit(session *model.Session) {
	m.mu.Lock()
	m.session = session
	subs := make([]func(*model.Session), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(session)
	}
}

type mockOrderRepository struct {
	calls         []string
	insertErr     error
	itemsErr      error
	insertedOrder model.Order
	insertedItems []model.OrderItem
}

func (m *mockOrderRepository) Insert(_ context.Context, order model.Order) (model.Order, error) {
	m.calls = append(m.calls, "insert order")
	if m.insertErr != nil {
		return model.Order{}, m.insertErr
	}
	order.ID = "order-1"
	m.insertedOrder = order
	return order, nil
}

func (m *mockOrderRepository) InsertItems(_ context.Context, items []model.OrderItem) error {
	m.calls = append(m.calls, "insert items")
	if m.itemsErr != nil {
		return m.itemsErr
	}
	m.insertedItems = items
	return nil
}

func (m *mockOrderRepository) ListByUser(context.Context, string) ([]model.Order, error) {
	return nil, nil
}

func (m *mockOrderRepository) ListSummaries(context.Context) ([]model.OrderSummary, error) {
	return nil, nil
}

func (m *mockOrderRepository) Find(context.Context, string) (*model.OrderDetail, error) {
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) FindItems(context.Context, string) ([]model.OrderItemDetail, error) {
	return nil, nil
}

func (m *mockOrderRepository) UpdateStatus(context.Context, string, string) error { return nil }

type mockProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*model.Profile
	err      error
}

func (m *mockProfileRepository) Find(_ context.Context, id string) (*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if profile, ok := m.profiles[id]; ok {
		return profile, nil
	}
	return nil, model.ErrProfileNotFound
}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() { m.events = nil }
