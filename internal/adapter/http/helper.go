package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/statement"
	walletDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
	loanUC "github.com/nimeshpoudel7/enhancefund/internal/usecase/loan"
	walletUC "github.com/nimeshpoudel7/enhancefund/internal/usecase/wallet"
)

// ---- helpers ----

const userIDHeader = "Ax-User-Id"

// userID pulls the caller identity from the Ax-User-Id header.
// Returns "" when the header is absent or malformed.
func userID(c echo.Context) string {
	id := strings.TrimSpace(c.Request().Header.Get(userIDHeader))
	if !reHex32.MatchString(id) {
		return ""
	}
	return id
}

func missingIdentity(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or malformed " + userIDHeader + " header"})
}

// Map domain errors → HTTP codes. Unknown errors become 500 without
// leaking internals.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrRepaymentNotFound),
		errors.Is(err, walletDomain.ErrBalanceNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrDuplicateLoan),
		errors.Is(err, loanDomain.ErrAlreadyFulfilled),
		errors.Is(err, loanDomain.ErrExceedsRemaining),
		errors.Is(err, loanDomain.ErrAlreadyPaid),
		errors.Is(err, loanDomain.ErrRepaymentMismatch),
		errors.Is(err, walletDomain.ErrInsufficientBalance),
		errors.Is(err, loanUC.ErrPaymentIncomplete),
		errors.Is(err, walletUC.ErrPaymentIncomplete),
		errors.Is(err, statement.ErrUnrecognizedFormat),
		errors.Is(err, statement.ErrNoTransactions):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, gateway.ErrGateway):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "payment gateway unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
