package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles the service endpoints behind the admin password
type AdminHandler struct {
	useCase      usecase.VendingUseCase
	logger       coreport.Logger
	currency     string
	journalLimit int
}

// NewAdminHandler creates a new admin handler instance.
// journalLimit is the page size used when the request gives none.
func NewAdminHandler(useCase usecase.VendingUseCase, logger coreport.Logger, currency string, journalLimit int) *AdminHandler {
	if journalLimit <= 0 {
		journalLimit = 20
	}
	journalLimit = min(journalLimit, usecase.MaxJournalLimit)
	return &AdminHandler{
		useCase:      useCase,
		logger:       logger,
		currency:     currency,
		journalLimit: journalLimit,
	}
}

// GetBank handles GET /admin/bank
func (h *AdminHandler) GetBank(c *gin.Context) {
	bank, err := h.useCase.BankSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "bank snapshot", err)
		return
	}

	c.JSON(http.StatusOK, dto.BankResponse{Coins: dto.CoinLines(bank), Total: bank.Total()})
}

// Restock handles POST /admin/products/:id/restock
func (h *AdminHandler) Restock(c *gin.Context) {
	productID, err := entity.ParseProductID(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "restock", err)
		return
	}

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	product, err := h.useCase.Restock(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, "restock", err)
		return
	}

	h.logger.Info("Product restocked", map[string]any{
		"product_id": product.ID,
		"added":      req.Quantity,
		"stock":      product.Stock,
	})
	c.JSON(http.StatusOK, dto.NewProductDTO(product))
}

// Deposit handles POST /admin/coins
func (h *AdminHandler) Deposit(c *gin.Context) {
	var req dto.AdminDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	d, err := entity.NewDenomination(req.Denomination)
	if err != nil {
		respondError(c, h.logger, "deposit", err)
		return
	}

	bank, err := h.useCase.AdminDeposit(c.Request.Context(), d, req.Quantity)
	if err != nil {
		respondError(c, h.logger, "deposit", err)
		return
	}

	c.JSON(http.StatusOK, dto.BankResponse{Coins: dto.CoinLines(bank), Total: bank.Total()})
}

// GetRevenue handles GET /admin/revenue
func (h *AdminHandler) GetRevenue(c *gin.Context) {
	revenue, err := h.useCase.Revenue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "revenue", err)
		return
	}

	c.JSON(http.StatusOK, dto.RevenueResponse{Revenue: revenue, Currency: h.currency})
}

// CollectRevenue handles POST /admin/revenue/collect
func (h *AdminHandler) CollectRevenue(c *gin.Context) {
	revenue, err := h.useCase.CollectRevenue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "collect revenue", err)
		return
	}

	h.logger.Info("Revenue collected", map[string]any{"amount": revenue})
	c.JSON(http.StatusOK, dto.RevenueResponse{Revenue: revenue, Collected: true, Currency: h.currency})
}

// GetJournal handles GET /admin/journal?limit=
func (h *AdminHandler) GetJournal(c *gin.Context) {
	limit := h.journalLimit
	if raw, ok := c.GetQuery("limit"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "limit must be a whole number")
			return
		}
		if parsed <= 0 || parsed > usecase.MaxJournalLimit {
			badRequest(c, fmt.Sprintf("limit must be between 1 and %d", usecase.MaxJournalLimit))
			return
		}
		limit = parsed
	}

	sales, err := h.useCase.Journal(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "journal", err)
		return
	}

	entries := make([]dto.SaleDTO, 0, len(sales))
	for _, s := range sales {
		entries = append(entries, dto.NewSaleDTO(s))
	}
	c.JSON(http.StatusOK, dto.JournalResponse{Entries: entries})
}
