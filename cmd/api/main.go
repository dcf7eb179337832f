package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/config"
	appHTTP "github.com/cmlabs-hris/payroll-adjust-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/repository/postgresql"
	leaveService "github.com/cmlabs-hris/payroll-adjust-go/internal/service/leave"
	retroService "github.com/cmlabs-hris/payroll-adjust-go/internal/service/retro"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveTransactionRepo := postgresql.NewLeaveTransactionRepository(db)
	payPeriodRepo := postgresql.NewPayPeriodRepository(db)
	employeePayrollRepo := postgresql.NewEmployeePayrollRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	retroConfigRepo := postgresql.NewRetroConfigRepository(db)
	retroCalculationRepo := postgresql.NewRetroCalculationRepository(db)

	impactCalculator := leaveService.NewImpactCalculator(leaveRequestRepo, leaveTypeRepo)
	leavePayrollService := leaveService.NewPayrollService(impactCalculator, leaveTransactionRepo, payPeriodRepo, compensationRepo)
	retroPayService := retroService.NewService(retroConfigRepo, retroCalculationRepo, payPeriodRepo, employeePayrollRepo)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	leaveHandler := appHTTP.NewLeaveHandler(leavePayrollService)
	retroHandler := appHTTP.NewRetroHandler(retroPayService)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, leaveHandler, retroHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
