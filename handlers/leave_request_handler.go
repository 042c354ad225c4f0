package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dayflow-backend/models"
	util "dayflow-backend/pkg/utils"
	"dayflow-backend/repository"
)

type LeaveRequestHandler struct {
	leaveRepo repository.LeaveRequestRepository
}

func NewLeaveRequestHandler(leaveRepo repository.LeaveRequestRepository) *LeaveRequestHandler {
	return &LeaveRequestHandler{
		leaveRepo: leaveRepo,
	}
}

// Apply godoc
// @Summary Apply for leave
// @Description Creates a leave request owned by the caller with status pending.
// @Tags Leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leave body models.LeaveRequestCreatePayload true "Leave request data"
// @Success 201 {object} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse "Missing or malformed fields"
// @Failure 401 {object} models.ErrorResponse
// @Router /leave [post]
func (h *LeaveRequestHandler) Apply(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields", "errors": errs})
	}

	now := time.Now()
	request := &models.LeaveRequest{
		ID:        primitive.NewObjectID(),
		UserID:    claims.UserID,
		Type:      payload.Type,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Reason:    payload.Reason,
		Status:    models.LeaveStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.leaveRepo.Create(ctx, request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply leave"})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// List godoc
// @Summary List leave requests
// @Description Admins get every request with the owner expanded; everyone else gets only their own. Newest first.
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequestWithUser
// @Failure 401 {object} models.ErrorResponse
// @Router /leave [get]
func (h *LeaveRequestHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if claims.IsAdmin() {
		requests, err := h.leaveRepo.FindAllWithUserDetails(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load leave requests"})
		}
		return c.Status(fiber.StatusOK).JSON(requests)
	}

	requests, err := h.leaveRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load leave requests"})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// Approve godoc
// @Summary Approve a leave request (admin)
// @Description Sets status to approved and records the reviewer. Overwrites whatever status the request had.
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 200 {object} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse "Malformed ID"
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Unknown ID"
// @Router /leave/{id}/approve [put]
func (h *LeaveRequestHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, models.LeaveStatusApproved)
}

// Reject godoc
// @Summary Reject a leave request (admin)
// @Description Sets status to rejected, records the reviewer and persists an optional comment.
// @Tags Leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Param review body models.LeaveReviewPayload false "Optional rejection comment"
// @Success 200 {object} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse "Malformed ID"
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Unknown ID"
// @Router /leave/{id}/reject [put]
func (h *LeaveRequestHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, models.LeaveStatusRejected)
}

// review is the shared approve/reject path. Both transitions are terminal in
// intent but not guarded: a second review overwrites the first, last write
// wins.
func (h *LeaveRequestHandler) review(c *fiber.Ctx, status string) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	reqID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave request ID"})
	}

	var payload models.LeaveReviewPayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
		}
		if errs := util.ValidateStruct(payload); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.leaveRepo.UpdateStatus(ctx, reqID, status, claims.UserID, payload.Note)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave request"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave not found"})
	}

	request, err := h.leaveRepo.FindByID(ctx, reqID)
	if err != nil || request == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load updated leave request"})
	}

	return c.Status(fiber.StatusOK).JSON(request)
}
