package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/idxboard/internal/domain/dto"
	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/middleware"
	"github.com/guttosm/idxboard/internal/service"
)

// Client-facing failure messages. Causes are only logged.
const (
	msgFetchData      = "Failed to fetch data from MongoDB"
	msgFetchSummary   = "Failed to fetch financial summary from MongoDB"
	msgSummaryMissing = "Financial data not found for the specified stock and year"
	msgFetchNews      = "Failed to fetch news"
)

// Handler provides the dashboard HTTP handlers.
//
// Responsibilities:
//   - Read optional query parameters
//   - Delegate to the dashboard service
//   - Wrap results in the response envelope with the matching HTTP status
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// GetStockData godoc
// @Summary      Snapshot of every ticker
// @Description  First open, last close, summed volume and last date per ticker over the price history
// @Tags         stocks
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=models.MarketData}  "Success"
// @Failure      500  {object}  dto.Envelope                          "Internal Error"
// @Router       /api/stock-data [get]
func (h *Handler) GetStockData(c *gin.Context) {
	data, err := h.svc.StockSnapshot(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, msgFetchData, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

// GetStockChart godoc
// @Summary      Close-price chart for a ticker
// @Description  Summed close per day, month or year, sorted ascending, plus the ticker snapshot
// @Tags         stocks
// @Produce      json
// @Param        period  query     string  false  "daily, monthly or annually (unknown values read daily)"  example(daily)
// @Param        stock   query     string  false  "Ticker"  example(AALI)
// @Success      200     {object}  dto.Envelope{data=models.MarketData}  "Success"
// @Failure      500     {object}  dto.Envelope                          "Internal Error"
// @Router       /api/stock-chart [get]
func (h *Handler) GetStockChart(c *gin.Context) {
	g := models.ParseGranularity(c.DefaultQuery("period", string(models.Daily)))
	ticker := normalizeTicker(c.Query("stock"))

	data, err := h.svc.StockChart(c.Request.Context(), g, ticker)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, msgFetchData, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

// GetFinancialSummary godoc
// @Summary      Financial statement of an issuer
// @Description  One period's statement; missing numbers are 0 and missing currency is IDR
// @Tags         financials
// @Produce      json
// @Param        year   query     string  false  "2021, 2022, 2023, 2024 or 2025-q1 (unknown values read 2025-q1)"  example(2024)
// @Param        stock  query     string  false  "Issuer ticker (defaults to the configured stock)"  example(AALI)
// @Success      200    {object}  dto.Envelope{data=models.FinancialSummary}  "Success"
// @Failure      404    {object}  dto.Envelope                                "Not Found"
// @Failure      500    {object}  dto.Envelope                                "Internal Error"
// @Router       /api/financial-summary [get]
func (h *Handler) GetFinancialSummary(c *gin.Context) {
	periodKey := strings.ToLower(strings.TrimSpace(c.Query("year")))
	ticker := normalizeTicker(c.Query("stock"))

	summary, err := h.svc.FinancialSummary(c.Request.Context(), periodKey, ticker)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, msgFetchSummary, err)
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, dto.Fail(msgSummaryMissing))
		return
	}
	c.JSON(http.StatusOK, dto.OK(summary))
}

// GetNews godoc
// @Summary      Latest news
// @Description  Up to 20 most recent news items, newest first
// @Tags         news
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=models.NewsFeed}  "Success"
// @Failure      500  {object}  dto.Envelope                        "Internal Error"
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	feed, err := h.svc.News(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, msgFetchNews, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(feed))
}

func normalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
