package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/dto"
)

// VendingHandler handles the customer facing endpoints
type VendingHandler struct {
	useCase  usecase.VendingUseCase
	logger   coreport.Logger
	currency string
}

// NewVendingHandler creates a new vending handler instance
func NewVendingHandler(useCase usecase.VendingUseCase, logger coreport.Logger, currency string) *VendingHandler {
	return &VendingHandler{
		useCase:  useCase,
		logger:   logger,
		currency: currency,
	}
}

// ListProducts handles GET /products
func (h *VendingHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list products", err)
		return
	}

	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// InsertCoin handles POST /coins
func (h *VendingHandler) InsertCoin(c *gin.Context) {
	var req dto.InsertCoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	d, err := entity.NewDenomination(req.Denomination)
	if err != nil {
		respondError(c, h.logger, "insert coin", err)
		return
	}

	available, err := h.useCase.InsertCoin(c.Request.Context(), d)
	if err != nil {
		respondError(c, h.logger, "insert coin", err)
		return
	}

	c.JSON(http.StatusOK, dto.InsertCoinResponse{
		Denomination: d.Value(),
		Available:    available,
	})
}

// GetBalance handles GET /balance
func (h *VendingHandler) GetBalance(c *gin.Context) {
	view, err := h.useCase.Balance(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(view, h.currency))
}

// GetTray handles GET /tray
func (h *VendingHandler) GetTray(c *gin.Context) {
	view, err := h.useCase.Balance(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "tray", err)
		return
	}

	c.JSON(http.StatusOK, dto.TrayResponse{
		Coins: dto.CoinLines(view.Tray),
		Total: view.TrayTotal,
	})
}

// Purchase handles POST /purchase.
// Without confirm the product is only quoted and the response has completed=false.
func (h *VendingHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.useCase.Purchase(c.Request.Context(), req.ProductID, req.Confirm)
	if err != nil {
		respondError(c, h.logger, "purchase", err)
		return
	}

	if result.Completed {
		h.logger.Info("Product sold", map[string]any{
			"product_id": result.ProductID,
			"price":      result.Price,
			"balance":    result.Balance,
		})
	}
	c.JSON(http.StatusOK, dto.NewPurchaseResponse(result))
}

// TakeChange handles POST /change
func (h *VendingHandler) TakeChange(c *gin.Context) {
	change, err := h.useCase.TakeMoney(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "take change", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChangeResponse{
		Amount: change.Amount,
		Coins:  dto.CoinLines(change.Coins),
	})
}
