package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID string             `json:"employeeId" bson:"employee_id,omitempty"`
	FirstName  string             `json:"firstName" bson:"first_name,omitempty"`
	LastName   string             `json:"lastName" bson:"last_name,omitempty"`
	Email      string             `json:"email" bson:"email,omitempty"`
	Password   string             `json:"-" bson:"password,omitempty"`
	Role       string             `json:"role" bson:"role,omitempty"`
	Phone      string             `json:"phone" bson:"phone,omitempty"`
	Address    string             `json:"address" bson:"address,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	EmployeeID string `json:"employeeId" validate:"required,min=3,max=20"`
	FirstName  string `json:"firstName" validate:"required,min=2,max=100"`
	LastName   string `json:"lastName" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role       string `json:"role" validate:"omitempty,oneof=admin employee"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address    string `json:"address" validate:"omitempty,min=5,max=255"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdatePayload struct {
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address string `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=50,hasuppercase"`
}

// Claims is the authenticated identity extracted from a bearer token by the
// auth middleware and stored in the request Locals.
type Claims struct {
	UserID primitive.ObjectID `json:"userId"`
	Email  string             `json:"email"`
	Role   string             `json:"role"`
}

// IsAdmin is the single role predicate the authorization layer relies on.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

type DashboardStats struct {
	TotalEmployees       int64 `json:"totalEmployees"`
	CheckedInToday       int64 `json:"checkedInToday"`
	PendingLeaveRequests int64 `json:"pendingLeaveRequests"`
}
