package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
)

// Options configures the console
type Options struct {
	Currency      string
	AdminPassword string // empty disables admin mode
	JournalLimit  int
}

// Console is the interactive text menu of the machine
type Console struct {
	useCase       usecase.VendingUseCase
	in            *bufio.Scanner
	out           io.Writer
	logger        coreport.Logger
	currency      string
	adminPassword string
	journalLimit  int
}

// NewConsole creates a console reading commands from in and writing to out
func NewConsole(useCase usecase.VendingUseCase, in io.Reader, out io.Writer, logger coreport.Logger, opts Options) *Console {
	if opts.Currency == "" {
		opts.Currency = entity.DefaultCurrency
	}
	if opts.JournalLimit <= 0 {
		opts.JournalLimit = 10
	}

	return &Console{
		useCase:       useCase,
		in:            bufio.NewScanner(in),
		out:           out,
		logger:        logger,
		currency:      opts.Currency,
		adminPassword: opts.AdminPassword,
		journalLimit:  opts.JournalLimit,
	}
}

// Run shows the main menu until the user quits, input ends or ctx is done
func (c *Console) Run(ctx context.Context) error {
	c.logger.Info("Console session started", nil)
	defer c.logger.Info("Console session ended", nil)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.printf("\n==== Vending machine ====\n")
		c.printf("1) Show products\n")
		c.printf("2) Insert coin\n")
		c.printf("3) Buy product\n")
		c.printf("4) Take change\n")
		c.printf("5) Show inserted coins\n")
		c.printf("6) Admin mode\n")
		c.printf("0) Exit\n")

		command, ok := c.prompt("Choice: ")
		if !ok {
			return c.in.Err()
		}

		switch command {
		case "0":
			c.printf("Goodbye!\n")
			return nil
		case "1":
			c.showProducts(ctx)
		case "2":
			c.insertCoin(ctx)
		case "3":
			c.buy(ctx)
		case "4":
			c.takeChange(ctx)
		case "5":
			c.showInserted(ctx)
		case "6":
			c.adminMode(ctx)
		default:
			c.printf("Unknown command.\n")
		}
	}
}

// prompt prints label and reads one trimmed line; false on end of input
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) amount(v int64) string {
	return entity.FormatAmount(v, c.currency)
}

func (c *Console) acceptedCoins() string {
	values := make([]string, 0, 6)
	for _, d := range entity.AllowedDenominations() {
		values = append(values, fmt.Sprintf("%d", d.Value()))
	}
	return strings.Join(values, ", ")
}

// fail prints the user message for err and logs it
func (c *Console) fail(operation string, err error) {
	c.printf("%s\n", describe(err))
	c.logger.Debug("Console operation failed", map[string]any{
		"operation": operation,
		"error":     err,
	})
}
