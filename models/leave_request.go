package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeaveTypePaid   = "paid"
	LeaveTypeSick   = "sick"
	LeaveTypeUnpaid = "unpaid"

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest moves forward only: pending -> approved or pending -> rejected.
// Reviewer fields stay nil until a request leaves pending.
type LeaveRequest struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID  `json:"userId" bson:"user_id,omitempty"`
	Type       string              `json:"type" bson:"type,omitempty"`
	StartDate  string              `json:"startDate" bson:"start_date,omitempty"`
	EndDate    string              `json:"endDate" bson:"end_date,omitempty"`
	Reason     string              `json:"reason,omitempty" bson:"reason,omitempty"`
	Status     string              `json:"status" bson:"status,omitempty"`
	ReviewedBy *primitive.ObjectID `json:"reviewedBy,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt *time.Time          `json:"reviewedAt,omitempty" bson:"reviewed_at,omitempty"`
	Note       string              `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  time.Time           `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updated_at,omitempty"`
}

type LeaveRequestCreatePayload struct {
	Type      string `json:"type" validate:"required,oneof=paid sick unpaid"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02,datenotbefore=StartDate"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

// LeaveReviewPayload is the optional reject body; the client collects a
// comment when an admin turns a request down.
type LeaveReviewPayload struct {
	Note string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type LeaveRequestWithUser struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id"`
	UserID         primitive.ObjectID  `json:"userId" bson:"user_id"`
	Type           string              `json:"type" bson:"type"`
	StartDate      string              `json:"startDate" bson:"start_date"`
	EndDate        string              `json:"endDate" bson:"end_date"`
	Reason         string              `json:"reason,omitempty" bson:"reason,omitempty"`
	Status         string              `json:"status" bson:"status"`
	ReviewedBy     *primitive.ObjectID `json:"reviewedBy,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time          `json:"reviewedAt,omitempty" bson:"reviewed_at,omitempty"`
	Note           string              `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"created_at"`
	UserEmployeeID string              `json:"userEmployeeId" bson:"user_employee_id"`
	UserFirstName  string              `json:"userFirstName" bson:"user_first_name"`
	UserLastName   string              `json:"userLastName" bson:"user_last_name"`
	UserEmail      string              `json:"userEmail" bson:"user_email"`
}
