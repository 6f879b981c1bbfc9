package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/dto"
	"github.com/gudangapp/gudang-api/internal/application/report"
	"github.com/gudangapp/gudang-api/internal/domain"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

const defaultRecentLimit = 100

// ReportHandler serves the derived read-only views (protected).
type ReportHandler struct {
	uc *report.ReportUseCase
}

func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Movements godoc
// @Summary      List ledger movements
// @Description  Without filters returns the most recent movements. With
// @Description  type, from and to, returns movements of that type inside
// @Description  the inclusive date range, oldest first.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type   query  string  false  "in or out; requires from and to"
// @Param        from   query  string  false  "YYYY-MM-DD"
// @Param        to     query  string  false  "YYYY-MM-DD"
// @Param        limit  query  int     false  "cap for the unfiltered listing (default 100)"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	trxType := c.Query("type")
	if trxType == "" {
		limit := defaultRecentLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return writeError(c, fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidInput))
			}
			limit = n
		}
		movs, err := h.uc.RecentMovements(c.Context(), limit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(toTransactionResponses(movs))
	}

	if trxType != entity.TrxTypeIn && trxType != entity.TrxTypeOut {
		return writeError(c, fmt.Errorf("%w: type must be %q or %q", domain.ErrInvalidInput, entity.TrxTypeIn, entity.TrxTypeOut))
	}
	from, err := parseQueryDate(c.Query("from"))
	if err != nil {
		return writeError(c, err)
	}
	to, err := parseQueryDate(c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	if from == nil || to == nil {
		return writeError(c, fmt.Errorf("%w: from and to are required with type", domain.ErrInvalidInput))
	}

	movs, err := h.uc.LoadMovements(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	filtered := report.FilterByTypeAndRange(movs, trxType, *from, *to)
	return c.JSON(toTransactionResponses(filtered))
}

// Totals godoc
// @Summary      Movement totals per period
// @Description  Groups movements by week or month and by (item, unit, type),
// @Description  summing quantities. from/to bound the range inclusively.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        granularity  query  string  false  "week (default) or month"
// @Param        from         query  string  false  "YYYY-MM-DD"
// @Param        to           query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   report.PeriodTotal
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/totals [get]
func (h *ReportHandler) Totals(c *fiber.Ctx) error {
	g := report.Granularity(c.Query("granularity", string(report.GranularityWeek)))
	if g != report.GranularityWeek && g != report.GranularityMonth {
		return writeError(c, fmt.Errorf("%w: granularity must be week or month", domain.ErrInvalidInput))
	}
	from, err := parseQueryDate(c.Query("from"))
	if err != nil {
		return writeError(c, err)
	}
	to, err := parseQueryDate(c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}

	movs, err := h.uc.LoadMovements(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report.TotalsByPeriod(movs, g, from, to))
}

// ItemTotals godoc
// @Summary      All-time totals per item
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   report.ItemTotal
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/item-totals [get]
func (h *ReportHandler) ItemTotals(c *fiber.Ctx) error {
	movs, err := h.uc.LoadMovements(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report.TotalsByItem(movs))
}

// StockPDF godoc
// @Summary      Printable stock report
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockReportPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(data)
}

func toTransactionResponses(movs []report.Movement) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(movs))
	for i := range movs {
		out = append(out, dto.FromTransaction(&movs[i].Transaction))
	}
	return out
}

func parseQueryDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: dates must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return &t, nil
}
