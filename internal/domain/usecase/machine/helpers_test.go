package machine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/vending-machine/mocks/port/core"
)

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// quietLogger accepts any log call
func quietLogger() *coremocks.MockLogger {
	logger := &coremocks.MockLogger{}
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

// frozenClock always reports fixedTime
func frozenClock() *coremocks.MockTimeProvider {
	clock := &coremocks.MockTimeProvider{}
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(time.Duration(0)).Maybe()
	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(context.WithTimeout).Maybe()
	return clock
}

// fakeCatalog is a map-backed product repository
type fakeCatalog struct {
	mu    sync.Mutex
	items map[uint64]*entity.Product
}

func newFakeCatalog(products ...*entity.Product) *fakeCatalog {
	c := &fakeCatalog{items: make(map[uint64]*entity.Product)}
	for _, p := range products {
		c.items[p.ID] = p.Clone()
	}
	return c
}

func (c *fakeCatalog) GetByID(_ context.Context, id uint64) (*entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.items[id]
	if !ok {
		return nil, errs.ErrProductNotFound
	}
	return p.Clone(), nil
}

func (c *fakeCatalog) List(_ context.Context) ([]*entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*entity.Product, 0, len(c.items))
	for _, p := range c.items {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *fakeCatalog) Create(_ context.Context, p *entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[p.ID]; ok {
		return errs.ErrDuplicateProduct
	}
	c.items[p.ID] = p.Clone()
	return nil
}

func (c *fakeCatalog) Update(_ context.Context, p *entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[p.ID]; !ok {
		return errs.ErrProductNotFound
	}
	c.items[p.ID] = p.Clone()
	return nil
}

func (c *fakeCatalog) stock(id uint64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[id].Stock
}

// fakeJournal keeps entries in memory
type fakeJournal struct {
	mu      sync.Mutex
	entries []*entity.Sale
}

func (j *fakeJournal) Record(_ context.Context, sale *entity.Sale) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, sale)
	return nil
}

func (j *fakeJournal) List(_ context.Context, limit int) ([]*entity.Sale, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]*entity.Sale, 0, limit)
	for i := len(j.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.entries[i])
	}
	return out, nil
}

func (j *fakeJournal) kinds() []entity.SaleKind {
	j.mu.Lock()
	defer j.mu.Unlock()
	kinds := make([]entity.SaleKind, 0, len(j.entries))
	for _, e := range j.entries {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func mustProduct(id uint64, name string, price int64, stock int) *entity.Product {
	p, err := entity.NewProduct(id, name, price, stock)
	if err != nil {
		panic(err)
	}
	return p
}

// newTestMachine builds a machine over fakes
func newTestMachine(bank entity.CoinPack, products ...*entity.Product) (*Machine, *fakeCatalog, *fakeJournal) {
	catalog := newFakeCatalog(products...)
	journal := &fakeJournal{}
	m := NewMachine(catalog, journal, entity.NewCoinBank(bank), frozenClock(), quietLogger())
	return m, catalog, journal
}
