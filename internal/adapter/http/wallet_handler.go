package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	walletDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
	"github.com/nimeshpoudel7/enhancefund/internal/usecase/wallet"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

// role is fixed per route group so borrower and investor wallets stay
// separate even for the same user id.
func roleParam(c echo.Context) (walletDomain.Role, bool) {
	switch walletDomain.Role(c.Param("role")) {
	case walletDomain.RoleBorrower:
		return walletDomain.RoleBorrower, true
	case walletDomain.RoleInvestor:
		return walletDomain.RoleInvestor, true
	}
	return "", false
}

type addFundsReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *WalletHandler) AddFunds(c echo.Context) error {
	uid := userID(c)
	if uid == "" {
		return missingIdentity(c)
	}
	var req addFundsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddFunds(c.Request().Context(), uid, req.Amount)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type confirmDepositReq struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

func (h *WalletHandler) ConfirmDeposit(c echo.Context) error {
	uid := userID(c)
	if uid == "" {
		return missingIdentity(c)
	}
	role, ok := roleParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be borrower or investor"})
	}
	var req confirmDepositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ConfirmDeposit(c.Request().Context(), wallet.ConfirmDepositInput{
		UserID:    uid,
		Role:      role,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) Balance(c echo.Context) error {
	uid := userID(c)
	if uid == "" {
		return missingIdentity(c)
	}
	role, ok := roleParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be borrower or investor"})
	}
	dto, err := h.uc.Balance(c.Request().Context(), uid, role)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type withdrawReq struct {
	Amount             float64 `json:"amount"              validate:"required,gt=0,dec2"`
	DestinationAccount string  `json:"destination_account" validate:"required"`
}

func (h *WalletHandler) Withdraw(c echo.Context) error {
	uid := userID(c)
	if uid == "" {
		return missingIdentity(c)
	}
	role, ok := roleParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be borrower or investor"})
	}
	var req withdrawReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Withdraw(c.Request().Context(), wallet.WithdrawInput{
		UserID:             uid,
		Role:               role,
		Amount:             req.Amount,
		DestinationAccount: req.DestinationAccount,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) Transactions(c echo.Context) error {
	uid := userID(c)
	if uid == "" {
		return missingIdentity(c)
	}
	dtos, err := h.uc.Transactions(c.Request().Context(), uid)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"transactions": dtos})
}
