package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cseboard/internal/customer"
	"cseboard/internal/customer/repository"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memStore is an in-memory record store with the same semantics as the SQL
// store: one row per Org, updates touch only the named columns.
type memStore struct {
	mu   sync.Mutex
	rows map[string]customer.Fields

	existsCalls int
	getCalls    int
	inserts     []repository.InsertRecordOptions
	updates     []repository.UpdateRecordOptions

	failExists error
	failGet    error
	failList   error
	failWrite  error

	// afterGet, when set, is called once by the next GetOneRecord.
	afterGet func()
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]customer.Fields)}
}

func (m *memStore) Exists(ctx context.Context, org string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.existsCalls++
	if m.failExists != nil {
		return false, m.failExists
	}
	_, ok := m.rows[org]
	return ok, nil
}

func (m *memStore) GetOneRecord(ctx context.Context, opt repository.GetOneRecordOptions) (customer.Record, error) {
	m.mu.Lock()
	m.getCalls++
	if m.failGet != nil {
		m.mu.Unlock()
		return customer.Record{}, m.failGet
	}
	f, ok := m.rows[opt.Org]
	afterGet := m.afterGet
	m.afterGet = nil
	m.mu.Unlock()

	// Runs after the row was read, outside the lock, so writes can proceed.
	if afterGet != nil {
		afterGet()
	}
	if !ok {
		return customer.Record{}, nil
	}
	return customer.Record{Org: opt.Org, Fields: f}, nil
}

func (m *memStore) ListOrgs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList != nil {
		return nil, m.failList
	}
	orgs := make([]string, 0, len(m.rows))
	for org := range m.rows {
		orgs = append(orgs, org)
	}
	sort.Strings(orgs)
	return orgs, nil
}

func (m *memStore) InsertRecord(ctx context.Context, opt repository.InsertRecordOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts = append(m.inserts, opt)
	if m.failWrite != nil {
		return m.failWrite
	}
	if _, ok := m.rows[opt.Org]; ok {
		return errors.New("duplicate key")
	}
	var f customer.Fields
	for _, c := range opt.Columns {
		f.Set(c.Name, customer.Ptr(c.Value))
	}
	m.rows[opt.Org] = f
	return nil
}

func (m *memStore) UpdateRecord(ctx context.Context, opt repository.UpdateRecordOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, opt)
	if m.failWrite != nil {
		return m.failWrite
	}
	f := m.rows[opt.Org]
	for _, c := range opt.Columns {
		f.Set(c.Name, customer.Ptr(c.Value))
	}
	m.rows[opt.Org] = f
	return nil
}

func (m *memStore) writes() int {
	return len(m.inserts) + len(m.updates)
}
