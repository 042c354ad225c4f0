package util

import (
	"testing"

	"dayflow-backend/models"
)

func TestValidateLeaveRequestCreatePayload(t *testing.T) {
	cases := []struct {
		name    string
		payload models.LeaveRequestCreatePayload
		valid   bool
	}{
		{
			name: "valid request",
			payload: models.LeaveRequestCreatePayload{
				Type: models.LeaveTypePaid, StartDate: "2026-03-10", EndDate: "2026-03-12", Reason: "family visit",
			},
			valid: true,
		},
		{
			name: "single day is valid",
			payload: models.LeaveRequestCreatePayload{
				Type: models.LeaveTypeSick, StartDate: "2026-03-10", EndDate: "2026-03-10",
			},
			valid: true,
		},
		{
			name:    "missing everything",
			payload: models.LeaveRequestCreatePayload{},
			valid:   false,
		},
		{
			name: "unknown type",
			payload: models.LeaveRequestCreatePayload{
				Type: "sabbatical", StartDate: "2026-03-10", EndDate: "2026-03-12",
			},
			valid: false,
		},
		{
			name: "end before start",
			payload: models.LeaveRequestCreatePayload{
				Type: models.LeaveTypeUnpaid, StartDate: "2026-03-12", EndDate: "2026-03-10",
			},
			valid: false,
		},
		{
			name: "malformed date",
			payload: models.LeaveRequestCreatePayload{
				Type: models.LeaveTypePaid, StartDate: "10-03-2026", EndDate: "2026-03-12",
			},
			valid: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateStruct(tc.payload)
			if tc.valid && len(errs) != 0 {
				t.Errorf("expected valid, got errors: %+v", errs)
			}
			if !tc.valid && len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}

func TestValidateRegisterPayloadPasswordRules(t *testing.T) {
	base := models.UserRegisterPayload{
		EmployeeID: "EMP011",
		FirstName:  "Lina",
		LastName:   "Haddad",
		Email:      "lina.haddad@dayflow.io",
	}

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong password", "Password123", true},
		{"no uppercase", "password123", false},
		{"too short", "Pass1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := base
			payload.Password = tc.password
			errs := ValidateStruct(payload)
			if tc.valid && len(errs) != 0 {
				t.Errorf("expected valid, got errors: %+v", errs)
			}
			if !tc.valid && len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}

func TestValidateRegisterPayloadRejectsBadRole(t *testing.T) {
	payload := models.UserRegisterPayload{
		EmployeeID: "EMP011",
		FirstName:  "Lina",
		LastName:   "Haddad",
		Email:      "lina.haddad@dayflow.io",
		Password:   "Password123",
		Role:       "superuser",
	}

	if errs := ValidateStruct(payload); len(errs) == 0 {
		t.Error("expected a role validation error, got none")
	}
}
