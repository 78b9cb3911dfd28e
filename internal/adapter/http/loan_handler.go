package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Amount     float64 `json:"amount"      validate:"required,gt=0,dec2"`
	TermMonths int     `json:"term_months" validate:"required,gte=1,lte=360"`
	Frequency  string  `json:"frequency"   validate:"required,frequency"`
	Purpose    string  `json:"purpose"     validate:"required"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	borrowerID := userID(c)
	if borrowerID == "" {
		return missingIdentity(c)
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID: borrowerID,
		Amount:     req.Amount,
		TermMonths: req.TermMonths,
		Frequency:  loanDomain.Frequency(req.Frequency),
		Purpose:    req.Purpose,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) MyLoans(c echo.Context) error {
	borrowerID := userID(c)
	if borrowerID == "" {
		return missingIdentity(c)
	}
	dtos, err := h.uc.ListByBorrower(c.Request().Context(), borrowerID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": dtos})
}

func (h *LoanHandler) Marketplace(c echo.Context) error {
	dtos, err := h.uc.Marketplace(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": dtos})
}

func (h *LoanHandler) Repayments(c echo.Context) error {
	borrowerID := userID(c)
	if borrowerID == "" {
		return missingIdentity(c)
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed loan_id path param"})
	}
	dtos, err := h.uc.Repayments(c.Request().Context(), borrowerID, loanID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"repayments": dtos})
}

type repaymentCheckoutReq struct {
	RepaymentID string `json:"repayment_id" validate:"required,hex32"`
}

func (h *LoanHandler) RepaymentCheckout(c echo.Context) error {
	borrowerID := userID(c)
	if borrowerID == "" {
		return missingIdentity(c)
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed loan_id path param"})
	}
	var req repaymentCheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RepaymentCheckout(c.Request().Context(), loan.RepaymentCheckoutInput{
		BorrowerID:  borrowerID,
		LoanID:      loanID,
		RepaymentID: req.RepaymentID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type confirmRepaymentReq struct {
	RepaymentID string `json:"repayment_id" validate:"required,hex32"`
	PaymentID   string `json:"payment_id"   validate:"required"`
}

func (h *LoanHandler) ConfirmRepayment(c echo.Context) error {
	borrowerID := userID(c)
	if borrowerID == "" {
		return missingIdentity(c)
	}
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed loan_id path param"})
	}
	var req confirmRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ConfirmRepayment(c.Request().Context(), loan.ConfirmRepaymentInput{
		BorrowerID:  borrowerID,
		LoanID:      loanID,
		RepaymentID: req.RepaymentID,
		PaymentID:   req.PaymentID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
