package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"dayflow-backend/models"
)

func checkIn(t *testing.T, env *testEnv, token string) models.Attendance {
	t.Helper()

	resp := env.request(t, http.MethodPost, "/api/attendance/checkin", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check-in: got status %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var record models.Attendance
	decodeJSON(t, resp, &record)
	return record
}

func TestCheckInCreatesPresentRecord(t *testing.T) {
	env := newTestEnv(t, false)
	employee := env.addUser(t, "EMP002", "Priya", "Sharma", "priya.sharma@dayflow.io", "Password123", models.RoleEmployee)

	record := checkIn(t, env, env.tokenFor(t, employee))

	if record.UserID != employee.ID {
		t.Errorf("record owner = %s, want caller %s", record.UserID.Hex(), employee.ID.Hex())
	}
	if record.Status != models.AttendanceStatusPresent {
		t.Errorf("status = %q, want %q", record.Status, models.AttendanceStatusPresent)
	}
	if record.Date != time.Now().Format("2006-01-02") {
		t.Errorf("date = %q, want today's date", record.Date)
	}
	if _, err := time.Parse("15:04:05", record.CheckIn); err != nil {
		t.Errorf("checkIn = %q, want HH:MM:SS", record.CheckIn)
	}
	if record.CheckOut != "" {
		t.Errorf("check_out = %q, want empty on check-in", record.CheckOut)
	}
}

// With the single check-in policy disabled every check-in appends a new
// record, including a second one on the same day.
func TestDoubleCheckInSameDayCreatesTwoRecords(t *testing.T) {
	env := newTestEnv(t, false)
	employee := env.addUser(t, "EMP002", "Priya", "Sharma", "priya.sharma@dayflow.io", "Password123", models.RoleEmployee)
	token := env.tokenFor(t, employee)

	checkIn(t, env, token)
	checkIn(t, env, token)

	resp := env.request(t, http.MethodGet, "/api/attendance/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list own attendance: got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var records []models.Attendance
	decodeJSON(t, resp, &records)
	if len(records) != 2 {
		t.Errorf("record count = %d, want 2", len(records))
	}
}

func TestCheckInConflictWhenSingleCheckInPolicyEnabled(t *testing.T) {
	env := newTestEnv(t, true)
	employee := env.addUser(t, "EMP002", "Priya", "Sharma", "priya.sharma@dayflow.io", "Password123", models.RoleEmployee)
	token := env.tokenFor(t, employee)

	checkIn(t, env, token)

	resp := env.request(t, http.MethodPost, "/api/attendance/checkin", token, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second check-in: got status %d, want %d", resp.StatusCode, http.StatusConflict)
	}

	var body map[string]string
	decodeJSON(t, resp, &body)
	if body["error"] != "Already checked in today" {
		t.Errorf("error message = %q, want duplicate check-in message", body["error"])
	}
}

func TestGetMyAttendanceReturnsOnlyOwnRecords(t *testing.T) {
	env := newTestEnv(t, false)
	alice := env.addUser(t, "EMP002", "Priya", "Sharma", "priya.sharma@dayflow.io", "Password123", models.RoleEmployee)
	bob := env.addUser(t, "EMP003", "Daniel", "Kim", "daniel.kim@dayflow.io", "Password123", models.RoleEmployee)

	checkIn(t, env, env.tokenFor(t, alice))
	checkIn(t, env, env.tokenFor(t, bob))

	resp := env.request(t, http.MethodGet, "/api/attendance/me", env.tokenFor(t, alice), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var records []models.Attendance
	decodeJSON(t, resp, &records)
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].UserID != alice.ID {
		t.Errorf("leaked a record owned by %s", records[0].UserID.Hex())
	}
}

func TestGetAllAttendanceRequiresAdmin(t *testing.T) {
	env := newTestEnv(t, false)
	employee := env.addUser(t, "EMP002", "Priya", "Sharma", "priya.sharma@dayflow.io", "Password123", models.RoleEmployee)
	admin := env.addUser(t, "EMP001", "Amara", "Okafor", "admin@dayflow.io", "Password123", models.RoleAdmin)

	checkIn(t, env, env.tokenFor(t, employee))

	resp := env.request(t, http.MethodGet, "/api/attendance/", env.tokenFor(t, employee), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("employee access: got status %d, want %d", resp.StatusCode, http.StatusForbidden)
	}

	resp = env.request(t, http.MethodGet, "/api/attendance/", env.tokenFor(t, admin), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin access: got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var records []models.AttendanceWithUser
	decodeJSON(t, resp, &records)
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	if records[0].UserEmployeeID != "EMP002" || records[0].UserFirstName != "Priya" {
		t.Errorf("admin list must expand the owner's directory fields, got %+v", records[0])
	}
}
