package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"dayflow-backend/config"
	"dayflow-backend/config/middleware"
	"dayflow-backend/handlers"
	"dayflow-backend/pkg/paseto"
	"dayflow-backend/repository"

	_ "dayflow-backend/docs"
)

// Handlers bundles everything Register needs so tests can mount the same
// route table over fake repositories.
type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Attendance *handlers.AttendanceHandler
	Leave      *handlers.LeaveRequestHandler
	Tokens     *paseto.Maker
}

// SetupRoutes wires the Mongo-backed repositories and handlers and registers
// the route table.
func SetupRoutes(app *fiber.App, cfg *config.AppConfig) error {
	tokens, err := paseto.NewMaker(cfg.PasetoSecret)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRequestRepository()

	Register(app, &Handlers{
		Auth:       handlers.NewAuthHandler(userRepo, tokens),
		User:       handlers.NewUserHandler(userRepo, attendanceRepo, leaveRepo),
		Attendance: handlers.NewAttendanceHandler(attendanceRepo, cfg.SingleCheckInPerDay),
		Leave:      handlers.NewLeaveRequestHandler(leaveRepo),
		Tokens:     tokens,
	})

	log.Println("All application routes registered")
	return nil
}

func Register(app *fiber.App, h *Handlers) {
	authRequired := middleware.AuthMiddleware(h.Tokens)
	adminOnly := middleware.AdminMiddleware()

	// Health check & docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Dayflow HR API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Authentication & profile
	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Get("/profile", authRequired, h.Auth.GetProfile)
	authGroup.Put("/profile", authRequired, h.Auth.UpdateProfile)

	// Employee directory
	userGroup := api.Group("/users", authRequired)
	userGroup.Get("/me", h.User.GetMe)
	userGroup.Post("/change-password", h.Auth.ChangePassword)
	userGroup.Get("/", adminOnly, h.User.GetAllUsers)

	// Attendance
	attendanceGroup := api.Group("/attendance", authRequired)
	attendanceGroup.Post("/checkin", h.Attendance.CheckIn)
	attendanceGroup.Get("/me", h.Attendance.GetMyAttendance)
	attendanceGroup.Get("/", adminOnly, h.Attendance.GetAllAttendance)

	// Leave request lifecycle
	leaveGroup := api.Group("/leave", authRequired)
	leaveGroup.Post("/", h.Leave.Apply)
	leaveGroup.Get("/", h.Leave.List)
	leaveGroup.Put("/:id/approve", adminOnly, h.Leave.Approve)
	leaveGroup.Put("/:id/reject", adminOnly, h.Leave.Reject)

	// Admin dashboard
	adminGroup := api.Group("/admin", authRequired, adminOnly)
	adminGroup.Get("/dashboard-stats", h.User.GetDashboardStats)
}
