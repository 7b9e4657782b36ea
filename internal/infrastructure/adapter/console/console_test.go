package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/usecase/machine"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/seed"
	timeprovider "github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/config"
	usecasemocks "github.com/amirhossein-jamali/vending-machine/mocks/port/usecase"
)

// newService wires the real engine with the default catalog
func newService(t *testing.T, bank entity.CoinPack) *machine.Service {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()

	products, err := repository.NewProductRepository(log)
	require.NoError(t, err)
	catalog, err := seed.Products(config.CatalogConfig{})
	require.NoError(t, err)
	_, err = seed.LoadCatalog(ctx, products, catalog)
	require.NoError(t, err)

	journal, err := repository.NewMemorySaleJournal(log)
	require.NoError(t, err)

	m := machine.NewMachine(products, journal, entity.NewCoinBank(bank), clock, log)
	d := machine.NewDispatcher(log, clock, 8)
	s := machine.NewService(m, d, clock, log, time.Second)
	t.Cleanup(s.Shutdown)
	return s
}

func runScript(t *testing.T, svc *machine.Service, password, script string) string {
	t.Helper()

	var out bytes.Buffer
	c := NewConsole(svc, strings.NewReader(script), &out, logger.NewNoopLogger(), Options{
		Currency:      "rub",
		AdminPassword: password,
	})
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsole_PurchaseSession(t *testing.T) {
	svc := newService(t, seed.DefaultBank())

	out := runScript(t, svc, "admin", "1\n2\n100\n3\n2\ny\n5\n4\n0\n")

	assert.Contains(t, out, "Apple juice")
	assert.Contains(t, out, "Accepted 100 rub. Your balance: 100 rub")
	assert.Contains(t, out, `Confirm purchase of "Apple juice" for 80 rub? (y/n): `)
	assert.Contains(t, out, "Purchase successful. Your balance: 20 rub")
	assert.Contains(t, out, "No coins inserted.")
	assert.Contains(t, out, "Your change:\n  2 x 10 rub\n")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, products[1].Stock)
}

func TestConsole_BadInputKeepsLooping(t *testing.T) {
	svc := newService(t, seed.DefaultBank())

	out := runScript(t, svc, "admin", "9\n2\nabc\n2\n20\n3\n7\n4\n0\n")

	assert.Contains(t, out, "Unknown command.")
	assert.Contains(t, out, "Please enter a number.")
	assert.Contains(t, out, "This coin is not accepted.")
	assert.Contains(t, out, "Product not found.")
	assert.Contains(t, out, "No change to return.")
	assert.Contains(t, out, "Goodbye!")
}

func TestConsole_PurchaseNotConfirmed(t *testing.T) {
	svc := newService(t, seed.DefaultBank())

	out := runScript(t, svc, "admin", "2\n100\n3\n1\nn\n5\n0\n")

	assert.Contains(t, out, "Purchase not confirmed.")
	assert.Contains(t, out, "Inserted now:\n  1 x 100 rub\n")
}

func TestConsole_ChangeUnavailable(t *testing.T) {
	svc := newService(t, entity.CoinPack{})

	out := runScript(t, svc, "admin", "2\n100\n3\n5\ny\n0\n")

	assert.Contains(t, out, "Cannot dispense change, purchase cancelled.")
	assert.Contains(t, out, "Returned inserted coins:\n  1 x 100 rub\n")
}

func TestConsole_AdminMode(t *testing.T) {
	svc := newService(t, seed.DefaultBank())

	out := runScript(t, svc, "admin", "6\nnope\n6\nadmin\n1\n4\n2\n4\n50\n3\n2\n3\n5\n9\n0\n0\n")

	assert.Contains(t, out, "Wrong password.")
	assert.Contains(t, out, "Done. Chips now has 5 items.")
	assert.Contains(t, out, "Added.")
	assert.Contains(t, out, "  13 x 50 rub\n")
	assert.Contains(t, out, "Collected: 0 rub")
	assert.Contains(t, out, "bank_deposit")
	assert.Contains(t, out, "product_restocked")
	assert.Contains(t, out, "Unknown command.")
}

func TestConsole_AdminDisabled(t *testing.T) {
	svc := newService(t, seed.DefaultBank())

	out := runScript(t, svc, "", "6\n0\n")

	assert.Contains(t, out, "Admin mode is disabled.")
}

func TestConsole_EndOfInput(t *testing.T) {
	uc := usecasemocks.NewMockVendingUseCase(t)
	uc.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{}, nil)
	uc.EXPECT().Balance(mock.Anything).Return(nil, context.DeadlineExceeded)

	var out bytes.Buffer
	c := NewConsole(uc, strings.NewReader("1\n"), &out, logger.NewNoopLogger(), Options{})

	assert.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "Something went wrong, please try again.")
}

func TestConsole_CanceledContext(t *testing.T) {
	uc := usecasemocks.NewMockVendingUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := NewConsole(uc, strings.NewReader("1\n"), &out, logger.NewNoopLogger(), Options{})

	assert.NoError(t, c.Run(ctx))
	assert.Empty(t, out.String())
}
