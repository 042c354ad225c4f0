package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"dayflow-backend/models"
	"dayflow-backend/repository"
)

type UserHandler struct {
	userRepo       repository.UserRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
}

func NewUserHandler(userRepo repository.UserRepository, attendanceRepo repository.AttendanceRepository, leaveRepo repository.LeaveRequestRepository) *UserHandler {
	return &UserHandler{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// GetAllUsers godoc
// @Summary List all accounts (admin)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 403 {object} models.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userRepo.GetAllUsers(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list users"})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetMe godoc
// @Summary Get own account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetDashboardStats godoc
// @Summary Dashboard counters (admin)
// @Description Employee count, today's check-ins and pending leave requests.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/dashboard-stats [get]
func (h *UserHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	totalEmployees, err := h.userRepo.CountUsersByRole(ctx, models.RoleEmployee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard stats"})
	}

	today := time.Now().Format("2006-01-02")
	checkedInToday, err := h.attendanceRepo.CountAttendanceByDate(ctx, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard stats"})
	}

	pendingLeave, err := h.leaveRepo.CountPendingRequests(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard stats"})
	}

	return c.Status(fiber.StatusOK).JSON(models.DashboardStats{
		TotalEmployees:       totalEmployees,
		CheckedInToday:       checkedInToday,
		PendingLeaveRequests: pendingLeave,
	})
}
