package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

// describe turns a domain error into a line for the user
func describe(err error) string {
	var (
		funds  *errs.InsufficientFundsError
		change *errs.ChangeUnavailableError
	)

	switch {
	case errors.As(err, &funds):
		return fmt.Sprintf("Insufficient funds. Your balance is %d, the price is %d.", funds.Available, funds.Price)
	case errors.As(err, &change):
		if len(change.Returned) > 0 {
			return "Cannot dispense change, purchase cancelled."
		}
		return "Cannot pay out the full amount right now. Please try later."
	case errors.Is(err, errs.ErrInvalidDenomination):
		return "This coin is not accepted."
	case errors.Is(err, errs.ErrProductNotFound):
		return "Product not found."
	case errors.Is(err, errs.ErrOutOfStock):
		return "Product is sold out."
	case errors.Is(err, errs.ErrNoBalance):
		return "No change to return."
	case errors.Is(err, errs.ErrInvalidQuantity):
		return "Quantity must be a positive number."
	case errors.Is(err, errs.ErrInvalidProductID):
		return "Product ID must be a positive number."
	case errors.Is(err, errs.ErrInvalidRequest):
		return "Please enter a number."
	case errors.Is(err, errs.ErrJournalUnavailable):
		return "Journal is not available."
	default:
		return "Something went wrong, please try again."
	}
}

func (c *Console) printCoins(pack entity.CoinPack) {
	for _, line := range pack.Entries() {
		c.printf("  %d x %s\n", line.Count, c.amount(line.Denomination.Value()))
	}
}

func (c *Console) printBalance(ctx context.Context) {
	view, err := c.useCase.Balance(ctx)
	if err != nil {
		c.fail("balance", err)
		return
	}
	c.printf("Your balance: %s\n", c.amount(view.Available))
}

func (c *Console) showProducts(ctx context.Context) {
	products, err := c.useCase.ListProducts(ctx)
	if err != nil {
		c.fail("list products", err)
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tProduct\tPrice\tLeft")
	for _, p := range products {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	_ = w.Flush()

	c.printBalance(ctx)
}

func (c *Console) insertCoin(ctx context.Context) {
	c.printf("Accepted coins: %s (%s)\n", c.acceptedCoins(), c.currency)
	input, ok := c.prompt("Denomination: ")
	if !ok {
		return
	}

	d, err := entity.ParseDenomination(input)
	if err != nil {
		c.fail("insert coin", err)
		return
	}

	available, err := c.useCase.InsertCoin(ctx, d)
	if err != nil {
		c.fail("insert coin", err)
		return
	}
	c.printf("Accepted %s. Your balance: %s\n", c.amount(d.Value()), c.amount(available))
}

func (c *Console) buy(ctx context.Context) {
	c.showProducts(ctx)
	input, ok := c.prompt("Product ID: ")
	if !ok {
		return
	}

	productID, err := entity.ParseProductID(input)
	if err != nil {
		c.fail("buy", err)
		return
	}

	quote, err := c.useCase.QuotePurchase(ctx, productID)
	if err != nil {
		c.fail("buy", err)
		return
	}

	answer, ok := c.prompt(fmt.Sprintf("Confirm purchase of %q for %s? (y/n): ", quote.Name, c.amount(quote.Price)))
	if !ok {
		return
	}
	confirm := strings.EqualFold(answer, "y")

	result, err := c.useCase.Purchase(ctx, productID, confirm)
	if err != nil {
		c.fail("buy", err)

		var change *errs.ChangeUnavailableError
		if errors.As(err, &change) && len(change.Returned) > 0 {
			c.printf("Returned inserted coins:\n")
			c.printCoins(returnedPack(change.Returned))
		}
		return
	}

	if !result.Completed {
		c.printf("Purchase not confirmed.\n")
		return
	}
	c.printf("Purchase successful. Your balance: %s\n", c.amount(result.Balance))
}

func returnedPack(returned map[int64]int) entity.CoinPack {
	pack := make(entity.CoinPack, len(returned))
	for value, count := range returned {
		pack[entity.Denomination(value)] = count
	}
	return pack
}

func (c *Console) takeChange(ctx context.Context) {
	change, err := c.useCase.TakeMoney(ctx)
	if err != nil {
		c.fail("take change", err)
		return
	}

	c.printf("Your change:\n")
	c.printCoins(change.Coins)
	c.printf("Your balance: %s\n", c.amount(0))
}

func (c *Console) showInserted(ctx context.Context) {
	view, err := c.useCase.Balance(ctx)
	if err != nil {
		c.fail("show inserted", err)
		return
	}

	if view.Tray.IsEmpty() {
		c.printf("No coins inserted.\n")
	} else {
		c.printf("Inserted now:\n")
		c.printCoins(view.Tray)
	}
	c.printf("Your balance: %s\n", c.amount(view.Available))
}
