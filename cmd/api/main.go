package main

import (
	"fmt"
	"net/http"

	"github.com/andeanwork/asistencia-backend-go/internal/config"
	appHTTP "github.com/andeanwork/asistencia-backend-go/internal/handler/http"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/cron"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/database"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/jwt"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/timezone"
	"github.com/andeanwork/asistencia-backend-go/internal/repository/postgresql"
	dashboardService "github.com/andeanwork/asistencia-backend-go/internal/service/dashboard"
	punchService "github.com/andeanwork/asistencia-backend-go/internal/service/punch"
	reportService "github.com/andeanwork/asistencia-backend-go/internal/service/report"
	worktimeService "github.com/andeanwork/asistencia-backend-go/internal/service/worktime"
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

	tz := timezone.New(cfg.Time.Zone, cfg.Time.FallbackOffsetSeconds)

	scheduleRepo := postgresql.NewScheduleRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	engine := worktimeService.NewEngine(tz, scheduleRepo, punchRepo, holidayRepo, absenceRepo)
	querySvc := worktimeService.NewQueryService(tz, engine, employeeRepo)
	punchSvc := punchService.NewPunchService(tz, punchRepo)
	dashboardSvc := dashboardService.NewDashboardService(tz, engine, employeeRepo)
	reportSvc := reportService.NewReportService(tz, engine, employeeRepo)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	worktimeHandler := appHTTP.NewWorktimeHandler(querySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewScheduleQualityJobs(scheduleRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		cfg.App.LogLevel,
		punchHandler,
		worktimeHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
