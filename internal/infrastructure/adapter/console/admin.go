package console

import (
	"context"
	"crypto/subtle"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

func (c *Console) adminMode(ctx context.Context) {
	if c.adminPassword == "" {
		c.printf("Admin mode is disabled.\n")
		return
	}

	password, ok := c.prompt("Password: ")
	if !ok {
		return
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(c.adminPassword)) != 1 {
		c.logger.Warn("Admin authentication failed", map[string]any{"source": "console"})
		c.printf("Wrong password.\n")
		return
	}

	for {
		if ctx.Err() != nil {
			return
		}

		c.printf("\n[ADMIN] 1) Restock product  2) Bank coins  3) Collect revenue  4) Add coins  5) Journal  0) Exit\n")
		command, ok := c.prompt("Choice: ")
		if !ok {
			return
		}

		switch command {
		case "0":
			return
		case "1":
			c.restock(ctx)
		case "2":
			c.showBank(ctx)
		case "3":
			c.collectRevenue(ctx)
		case "4":
			c.addCoins(ctx)
		case "5":
			c.showJournal(ctx)
		default:
			c.printf("Unknown command.\n")
		}
	}
}

func (c *Console) restock(ctx context.Context) {
	input, ok := c.prompt("Product ID: ")
	if !ok {
		return
	}
	productID, err := entity.ParseProductID(input)
	if err != nil {
		c.fail("restock", err)
		return
	}

	input, ok = c.prompt("Add items: ")
	if !ok {
		return
	}
	qty, err := entity.ParseQuantity(input)
	if err != nil {
		c.fail("restock", err)
		return
	}

	product, err := c.useCase.Restock(ctx, productID, qty)
	if err != nil {
		c.fail("restock", err)
		return
	}
	c.printf("Done. %s now has %d items.\n", product.Name, product.Stock)
}

func (c *Console) showBank(ctx context.Context) {
	bank, err := c.useCase.BankSnapshot(ctx)
	if err != nil {
		c.fail("bank", err)
		return
	}

	c.printf("Coins in the bank:\n")
	for _, d := range entity.DescendingDenominations() {
		c.printf("  %d x %s\n", bank[d], c.amount(d.Value()))
	}
	c.printf("Total: %s\n", c.amount(bank.Total()))
}

func (c *Console) collectRevenue(ctx context.Context) {
	revenue, err := c.useCase.CollectRevenue(ctx)
	if err != nil {
		c.fail("collect revenue", err)
		return
	}
	c.printf("Collected: %s\n", c.amount(revenue))
}

func (c *Console) addCoins(ctx context.Context) {
	c.printf("Accepted coins: %s (%s)\n", c.acceptedCoins(), c.currency)
	input, ok := c.prompt("Denomination: ")
	if !ok {
		return
	}
	d, err := entity.ParseDenomination(input)
	if err != nil {
		c.fail("add coins", err)
		return
	}

	input, ok = c.prompt("Count: ")
	if !ok {
		return
	}
	qty, err := entity.ParseQuantity(input)
	if err != nil {
		c.fail("add coins", err)
		return
	}

	if _, err := c.useCase.AdminDeposit(ctx, d, qty); err != nil {
		c.fail("add coins", err)
		return
	}
	c.printf("Added.\n")
}

func (c *Console) showJournal(ctx context.Context) {
	sales, err := c.useCase.Journal(ctx, c.journalLimit)
	if err != nil {
		c.fail("journal", err)
		return
	}
	if len(sales) == 0 {
		c.printf("Journal is empty.\n")
		return
	}

	for _, s := range sales {
		c.printf("%s  %-18s product=%d amount=%d balance=%d\n",
			s.CreatedAt.Format("2006-01-02 15:04:05"), s.Kind, s.ProductID, s.Amount, s.BalanceAfter)
	}
}
