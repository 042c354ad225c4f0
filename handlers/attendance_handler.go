package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dayflow-backend/models"
	"dayflow-backend/repository"
)

type AttendanceHandler struct {
	repo repository.AttendanceRepository

	// singleCheckInPerDay turns the duplicate check-in tolerance off.
	singleCheckInPerDay bool
}

func NewAttendanceHandler(repo repository.AttendanceRepository, singleCheckInPerDay bool) *AttendanceHandler {
	return &AttendanceHandler{
		repo:                repo,
		singleCheckInPerDay: singleCheckInPerDay,
	}
}

// CheckIn godoc
// @Summary Check in for today
// @Description Creates an attendance record for the caller with today's date and the current time.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Attendance
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Already checked in today (only when the single check-in policy is enabled)"
// @Router /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	today := now.Format("2006-01-02")

	if h.singleCheckInPerDay {
		existing, err := h.repo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Check-in failed"})
		}
		if existing != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already checked in today"})
		}
	}

	attendance := &models.Attendance{
		ID:        primitive.NewObjectID(),
		UserID:    claims.UserID,
		Date:      today,
		CheckIn:   now.Format("15:04:05"),
		Status:    models.AttendanceStatusPresent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := h.repo.CreateAttendance(ctx, attendance); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Check-in failed"})
	}

	return c.Status(fiber.StatusOK).JSON(attendance)
}

// GetMyAttendance godoc
// @Summary Get own attendance records
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Attendance
// @Failure 401 {object} models.ErrorResponse
// @Router /attendance/me [get]
func (h *AttendanceHandler) GetMyAttendance(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	records, err := h.repo.FindAttendanceByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance history"})
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

// GetAllAttendance godoc
// @Summary List all attendance records (admin)
// @Description Every record with the owning account's directory fields expanded.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithUser
// @Failure 403 {object} models.ErrorResponse
// @Router /attendance [get]
func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	records, err := h.repo.GetAllAttendancesWithUserDetails(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance records"})
	}

	return c.Status(fiber.StatusOK).JSON(records)
}
