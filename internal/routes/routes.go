package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/kirienkoandrew/HairCut-1/internal/audit"
	"github.com/kirienkoandrew/HairCut-1/internal/config"
	"github.com/kirienkoandrew/HairCut-1/internal/handlers"
	"github.com/kirienkoandrew/HairCut-1/internal/infra/cache"
	infraRepo "github.com/kirienkoandrew/HairCut-1/internal/infra/repository"
	"github.com/kirienkoandrew/HairCut-1/internal/middleware"
	"github.com/kirienkoandrew/HairCut-1/internal/notify"
	"github.com/kirienkoandrew/HairCut-1/internal/timezone"
	ucScheduling "github.com/kirienkoandrew/HairCut-1/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(notify.LogNotifier{})

	dayCache := cache.NewDayScheduleCache(rdb, 5*time.Minute)

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	createBookingUC := ucScheduling.NewCreateBooking(
		schedulingRepo,
		auditDispatcher,
		dayCache,
		loc,
	)

	listBookingsUC := ucScheduling.NewListBookings(schedulingRepo, loc)

	monthGridUC := ucScheduling.NewMonthGrid(schedulingRepo, loc)

	dayScheduleUC := ucScheduling.NewDaySchedule(schedulingRepo, dayCache, loc)

	clientHistoryUC := ucScheduling.NewClientHistory(schedulingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, notifyDispatcher)
	masterHandler := handlers.NewMasterHandler(schedulingRepo, auditDispatcher, cfg.Timezone)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		listBookingsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		monthGridUC,
		dayScheduleUC,
	)

	clientHandler := handlers.NewClientHandler(clientHistoryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// MASTER AREA
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		me.Use(middleware.RequireMaster(schedulingRepo))
		{
			me.GET("/master", masterHandler.GetMe)
			me.PUT("/master/work-window", masterHandler.UpdateWorkWindow)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			me.POST("/appointments", appointmentHandler.Create)
			me.GET("/appointments", appointmentHandler.List)

			me.GET("/calendar/month", availabilityHandler.Month)
			me.GET("/calendar/day", availabilityHandler.Day)

			me.GET("/clients/:id", clientHandler.History)
			me.GET("/clients/:id/appointments", clientHandler.Appointments)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.PATCH("/masters/:id/activate", masterHandler.Activate)
			admin.PATCH("/masters/:id/reject", masterHandler.Reject)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
