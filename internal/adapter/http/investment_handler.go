package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nimeshpoudel7/enhancefund/internal/usecase/investment"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	LoanID string  `json:"loan_id" validate:"required,hex32"`
	Amount float64 `json:"amount"  validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	investorID := userID(c)
	if investorID == "" {
		return missingIdentity(c)
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Invest(c.Request().Context(), investment.InvestInput{
		InvestorID: investorID,
		LoanID:     req.LoanID,
		Amount:     req.Amount,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) ExpectedReturn(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed loan_id path param"})
	}
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil || amount <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount query param must be a positive number"})
	}
	years := 1.0
	if raw := c.QueryParam("years"); raw != "" {
		years, err = strconv.ParseFloat(raw, 64)
		if err != nil || years <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "years query param must be a positive number"})
		}
	}
	dto, err := h.uc.ExpectedReturn(c.Request().Context(), loanID, amount, years)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) MyInvestments(c echo.Context) error {
	investorID := userID(c)
	if investorID == "" {
		return missingIdentity(c)
	}
	dtos, err := h.uc.MyInvestments(c.Request().Context(), investorID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"investments": dtos})
}

func (h *InvestmentHandler) Portfolio(c echo.Context) error {
	investorID := userID(c)
	if investorID == "" {
		return missingIdentity(c)
	}
	dto, err := h.uc.Portfolio(c.Request().Context(), investorID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) CloseMatured(c echo.Context) error {
	investorID := userID(c)
	if investorID == "" {
		return missingIdentity(c)
	}
	dtos, err := h.uc.CloseMatured(c.Request().Context(), investorID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"closed": dtos})
}
