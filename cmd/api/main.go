package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/eventops/eventops-backend-go/internal/config"
	appHTTP "github.com/eventops/eventops-backend-go/internal/handler/http"
	"github.com/eventops/eventops-backend-go/internal/pkg/database"
	"github.com/eventops/eventops-backend-go/internal/pkg/jwt"
	"github.com/eventops/eventops-backend-go/internal/pkg/staterate"
	"github.com/eventops/eventops-backend-go/internal/repository/postgresql"
	payrollService "github.com/eventops/eventops-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	eventRepo := postgresql.NewEventRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	stateRateRepo := postgresql.NewStateRateRepository(db)

	// Wage-rule overrides are loaded once at boot; the built-in table
	// covers everything else.
	overrides, err := stateRateRepo.GetAll(context.Background())
	if err != nil {
		log.Println("Warning: failed to load state wage rule overrides, using built-ins:", err)
		overrides = nil
	}
	rateTable := staterate.NewTable(cfg.Payroll.DefaultBaseRate, overrides)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	payrollSvc := payrollService.NewPayrollService(
		eventRepo,
		rosterRepo,
		timeEntryRepo,
		paymentRepo,
		rateTable,
		cfg.Payroll,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, rateTable)

	router := appHTTP.NewRouter(
		JWTService,
		payrollHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
