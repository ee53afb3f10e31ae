package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/domain"
	"github.com/MMN3003/swapproxy/src/swap/usecase"
)

// Handler binds usecase + logger
type Handler struct {
	service *usecase.Service
	logger  *logger.Logger
}

func NewHandler(s *usecase.Service, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/quote", h.GetQuote)
	api.POST("/swap", h.ExecuteSwap)
	api.POST("/swap/full", h.FullSwap)
	api.GET("/tokens/:chainId", h.ListTokens)
	api.GET("/chains", h.ListChains)
	api.GET("/balance", h.GetBalance)
	api.GET("/gas", h.GetGasEstimate)
}

// GetQuote godoc
//
//	@Summary		Get a cross-chain quote
//	@Description	Proxies the aggregator quote and returns its body unchanged
//	@Tags			swap
//	@Produce		json
//	@Param			srcChain		query		int		true	"Source chain id"
//	@Param			destChain		query		int		true	"Destination chain id"
//	@Param			srcTokenAddress	query		string	true	"Source token address"
//	@Param			dstTokenAddress	query		string	true	"Destination token address"
//	@Param			amount			query		string	true	"Amount in base units"
//	@Param			walletAddress	query		string	true	"Wallet address"
//	@Success		200				{object}	object
//	@Failure		400				{object}	object{error=string}
//	@Failure		502				{object}	object{error=string}
//	@Router			/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	var q QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Errorf("GetQuote bind err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), q.ToIntent())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", quote.Raw)
}

// ExecuteSwap godoc
//
//	@Summary		Execute a quoted swap
//	@Description	Submits the quote reference with its intent; returns the aggregator body unchanged
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExecuteSwapBody	true	"Intent plus quoteId"
//	@Success		200		{object}	object
//	@Failure		400		{object}	object{error=string}
//	@Failure		502		{object}	object{error=string}
//	@Router			/swap [post]
func (h *Handler) ExecuteSwap(c *gin.Context) {
	var req ExecuteSwapBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("ExecuteSwap bind err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Execute(c.Request.Context(), req.ToIntent(), req.ToQuote())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", res.Raw)
}

// FullSwap godoc
//
//	@Summary		Quote and execute in one call
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwapIntentBody	true	"Swap intent"
//	@Success		200		{object}	FullSwapResponse
//	@Failure		400		{object}	object{error=string}
//	@Failure		502		{object}	object{error=string}
//	@Router			/swap/full [post]
func (h *Handler) FullSwap(c *gin.Context) {
	var req SwapIntentBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("FullSwap bind err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Swap(c.Request.Context(), req.ToIntent())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromSwapResult(res))
}

// ListTokens godoc
//
//	@Summary		List tokens of a chain
//	@Tags			reference
//	@Produce		json
//	@Param			chainId	path		int	true	"Chain id"
//	@Success		200		{array}		domain.Token
//	@Failure		400		{object}	object{error=string}
//	@Router			/tokens/{chainId} [get]
func (h *Handler) ListTokens(c *gin.Context) {
	chainID, err := strconv.Atoi(c.Param("chainId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chainId must be an integer"})
		return
	}
	tokens, err := h.service.ListTokens(c.Request.Context(), chainID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// ListChains godoc
//
//	@Summary	List supported chains
//	@Tags		reference
//	@Produce	json
//	@Success	200	{array}		domain.Chain
//	@Failure	502	{object}	object{error=string}
//	@Router		/chains [get]
func (h *Handler) ListChains(c *gin.Context) {
	chains, err := h.service.ListChains(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chains)
}

// GetBalance godoc
//
//	@Summary	Token balance of a wallet
//	@Tags		reference
//	@Produce	json
//	@Param		chainId			query		int		true	"Chain id"
//	@Param		tokenAddress	query		string	true	"Token address"
//	@Param		walletAddress	query		string	true	"Wallet address"
//	@Success	200				{object}	object
//	@Failure	400				{object}	object{error=string}
//	@Router		/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	var q BalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	raw, err := h.service.Balance(c.Request.Context(), q.ToDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// GetGasEstimate godoc
//
//	@Summary	Gas estimate for a same-chain swap
//	@Tags		reference
//	@Produce	json
//	@Param		chainId				query		int		true	"Chain id"
//	@Param		fromTokenAddress	query		string	true	"Token sold"
//	@Param		toTokenAddress		query		string	true	"Token bought"
//	@Param		amount				query		string	true	"Amount in base units"
//	@Success	200					{object}	domain.GasEstimate
//	@Failure	400					{object}	object{error=string}
//	@Router		/gas [get]
func (h *Handler) GetGasEstimate(c *gin.Context) {
	var q GasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	est, err := h.service.GasEstimate(c.Request.Context(), q.ToDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// writeError maps the domain taxonomy onto status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		vErr  *domain.ValidationError
		upErr *domain.UpstreamError
		tErr  *domain.TransportError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.As(err, &upErr):
		status := upErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": upErr.Error()})
	case errors.As(err, &tErr):
		h.logger.Errorf("%s: upstream unreachable: %v", c.FullPath(), tErr.Err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Proxy error: " + tErr.Err.Error()})
	default:
		h.logger.Errorf("%s err: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
