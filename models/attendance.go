package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusLeave   = "leave"
)

type Attendance struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"user_id,omitempty"`
	Date      string             `json:"date" bson:"date,omitempty"`
	CheckIn   string             `json:"checkIn" bson:"check_in,omitempty"`
	CheckOut  string             `json:"checkOut,omitempty" bson:"check_out,omitempty"`
	Status    string             `json:"status" bson:"status,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at,omitempty"`
}

// AttendanceWithUser is the admin listing shape: one attendance record with
// the owning account's directory fields expanded by a $lookup.
type AttendanceWithUser struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         primitive.ObjectID `json:"userId" bson:"user_id"`
	Date           string             `json:"date" bson:"date"`
	CheckIn        string             `json:"checkIn" bson:"check_in"`
	CheckOut       string             `json:"checkOut,omitempty" bson:"check_out,omitempty"`
	Status         string             `json:"status" bson:"status"`
	UserEmployeeID string             `json:"userEmployeeId" bson:"user_employee_id"`
	UserFirstName  string             `json:"userFirstName" bson:"user_first_name"`
	UserLastName   string             `json:"userLastName" bson:"user_last_name"`
}
