package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

// MockTransactionRepository is a mock implementation of
// usecase.TransactionRepository. Each method delegates to its Func field when
// set; otherwise a shared in-memory map backs the call.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	nextID       int64
	transactions map[int64]domain.Transaction

	CreateFunc  func(ctx context.Context, transaction *domain.Transaction) (int64, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Transaction, error)
	UpdateFunc  func(ctx context.Context, transaction *domain.Transaction) error
	DeleteFunc  func(ctx context.Context, id int64) error
	ListFunc    func(ctx context.Context) ([]domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[int64]domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *transaction
	stored.ID = m.nextID
	m.transactions[stored.ID] = stored
	return stored.ID, nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	transaction, ok := m.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return &transaction, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[transaction.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.transactions[transaction.ID] = *transaction
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	transactions := make([]domain.Transaction, 0, len(m.transactions))
	for _, transaction := range m.transactions {
		transactions = append(transactions, transaction)
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].ID < transactions[j].ID
	})
	return transactions, nil
}
