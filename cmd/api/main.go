package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/presensiku/payroll-backend-go/internal/config"
	appHTTP "github.com/presensiku/payroll-backend-go/internal/handler/http"
	"github.com/presensiku/payroll-backend-go/internal/pkg/database"
	"github.com/presensiku/payroll-backend-go/internal/pkg/jwt"
	"github.com/presensiku/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensiku/payroll-backend-go/internal/service/attendance"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
	employeeService "github.com/presensiku/payroll-backend-go/internal/service/employee"
	leaveService "github.com/presensiku/payroll-backend-go/internal/service/leave"
	overtimeService "github.com/presensiku/payroll-backend-go/internal/service/overtime"
	payrollService "github.com/presensiku/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := calendar.NewResolver(holidayRepo)

	holidaySvc := calendar.NewHolidayService(holidayRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, resolver, cfg.Office)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo, resolver)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, overtimeRepo, attendanceSvc, resolver)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewOvertimeHandler(overtimeSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
		os.Exit(1)
	}
}
