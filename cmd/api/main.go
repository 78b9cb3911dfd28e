package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/nimeshpoudel7/enhancefund/internal/adapter/http"
	"github.com/nimeshpoudel7/enhancefund/internal/adapter/middleware"
	"github.com/nimeshpoudel7/enhancefund/internal/adapter/repository/mysql"
	"github.com/nimeshpoudel7/enhancefund/internal/config"
	"github.com/nimeshpoudel7/enhancefund/internal/infrastructure/cache"
	"github.com/nimeshpoudel7/enhancefund/internal/infrastructure/db"
	"github.com/nimeshpoudel7/enhancefund/internal/infrastructure/notify"
	"github.com/nimeshpoudel7/enhancefund/internal/infrastructure/payment"
	stmtparser "github.com/nimeshpoudel7/enhancefund/internal/infrastructure/statement"
	creditUC "github.com/nimeshpoudel7/enhancefund/internal/usecase/credit"
	investUC "github.com/nimeshpoudel7/enhancefund/internal/usecase/investment"
	loanUC "github.com/nimeshpoudel7/enhancefund/internal/usecase/loan"
	walletUC "github.com/nimeshpoudel7/enhancefund/internal/usecase/wallet"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	gw := payment.NewClient(cfg.GatewayBaseURL, cfg.GatewaySecretKey)
	notifier := notify.LogNotifier{}
	tx := mysql.NewGormUoW(gdb)

	loans := loanUC.NewUsecase(tx, gw, notifier)
	investments := investUC.NewUsecase(tx, notifier)
	wallets := walletUC.NewUsecase(tx, gw, notifier)
	credits := creditUC.NewUsecase(stmtparser.NewTextParser())

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loans)
	ih := httpadp.NewInvestmentHandler(investments)
	wh := httpadp.NewWalletHandler(wallets)
	ch := httpadp.NewCreditHandler(credits)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/loans", lh.CreateLoan, idem)
	e.GET("/loans", lh.MyLoans)
	e.GET("/loans/marketplace", lh.Marketplace)
	e.GET("/loans/:loan_id/repayments", lh.Repayments)
	e.POST("/loans/:loan_id/repayments/checkout", lh.RepaymentCheckout, idem)
	e.POST("/loans/:loan_id/repayments/confirm", lh.ConfirmRepayment, idem)

	e.POST("/investments", ih.Invest, idem)
	e.GET("/investments", ih.MyInvestments)
	e.GET("/investments/portfolio", ih.Portfolio)
	e.GET("/investments/expected-return/:loan_id", ih.ExpectedReturn)
	e.POST("/investments/close-matured", ih.CloseMatured, idem)

	e.POST("/wallet/funds", wh.AddFunds, idem)
	e.POST("/wallet/:role/deposit/confirm", wh.ConfirmDeposit, idem)
	e.GET("/wallet/:role/balance", wh.Balance)
	e.POST("/wallet/:role/withdraw", wh.Withdraw, idem)
	e.GET("/wallet/transactions", wh.Transactions)

	e.POST("/credit/assessment", ch.Assess)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
