package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/statement"
	"github.com/nimeshpoudel7/enhancefund/internal/usecase/credit"
)

type CreditHandler struct{ uc *credit.Usecase }

func NewCreditHandler(uc *credit.Usecase) *CreditHandler { return &CreditHandler{uc: uc} }

type assessRecordsReq struct {
	Records []assessRecord `json:"records" validate:"required,min=1,dive"`
}
type assessRecord struct {
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount"      validate:"required"`
}

// Assess scores a borrower's bank statement. Accepts either a multipart
// "statement" file with extracted statement text, or a JSON list of
// already-parsed records.
func (h *CreditHandler) Assess(c echo.Context) error {
	borrowerID := userID(c)
	if borrowerID == "" {
		return missingIdentity(c)
	}

	if fh, err := c.FormFile("statement"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable statement file"})
		}
		defer f.Close()
		dto, err := h.uc.AssessDocument(c.Request().Context(), f)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}

	var req assessRecordsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	records := make([]statement.Record, 0, len(req.Records))
	for _, r := range req.Records {
		date, _ := time.Parse("2006-01-02", r.Date)
		records = append(records, statement.Record{
			Date:        date,
			Description: r.Description,
			Amount:      r.Amount,
		})
	}
	dto, err := h.uc.AssessRecords(records)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
