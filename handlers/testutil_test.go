package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dayflow-backend/handlers"
	"dayflow-backend/models"
	"dayflow-backend/pkg/paseto"
	"dayflow-backend/pkg/password"
	"dayflow-backend/repository"
	"dayflow-backend/router"
)

const testSecret = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=" // base64 of 32 bytes

// ---- fake repositories -----------------------------------------------------

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	u, ok := r.users[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if v, ok := updateData["phone"].(string); ok {
		u.Phone = v
	}
	if v, ok := updateData["address"].(string); ok {
		u.Address = v
	}
	if v, ok := updateData["password"].(string); ok {
		u.Password = v
	}
	u.UpdatedAt = time.Now()
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) CountUsersByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeAttendanceRepo struct {
	records []*models.Attendance
	users   *fakeUserRepo
}

func (r *fakeAttendanceRepo) CreateAttendance(_ context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	stored := *attendance
	r.records = append(r.records, &stored)
	return &mongo.InsertOneResult{InsertedID: attendance.ID}, nil
}

func (r *fakeAttendanceRepo) FindAttendanceByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	results := []models.Attendance{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			results = append(results, *rec)
		}
	}
	return results, nil
}

func (r *fakeAttendanceRepo) FindAttendanceByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	for _, rec := range r.records {
		if rec.UserID == userID && rec.Date == date {
			found := *rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) GetAllAttendancesWithUserDetails(_ context.Context) ([]models.AttendanceWithUser, error) {
	results := []models.AttendanceWithUser{}
	for _, rec := range r.records {
		owner := r.users.users[rec.UserID]
		if owner == nil {
			continue
		}
		results = append(results, models.AttendanceWithUser{
			ID:             rec.ID,
			UserID:         rec.UserID,
			Date:           rec.Date,
			CheckIn:        rec.CheckIn,
			CheckOut:       rec.CheckOut,
			Status:         rec.Status,
			UserEmployeeID: owner.EmployeeID,
			UserFirstName:  owner.FirstName,
			UserLastName:   owner.LastName,
		})
	}
	return results, nil
}

func (r *fakeAttendanceRepo) CountAttendanceByDate(_ context.Context, date string) (int64, error) {
	var count int64
	for _, rec := range r.records {
		if rec.Date == date {
			count++
		}
	}
	return count, nil
}

type fakeLeaveRepo struct {
	requests []*models.LeaveRequest
	users    *fakeUserRepo
}

func (r *fakeLeaveRepo) Create(_ context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error) {
	stored := *req
	r.requests = append(r.requests, &stored)
	return &mongo.InsertOneResult{InsertedID: req.ID}, nil
}

func (r *fakeLeaveRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			found := *req
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeLeaveRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error) {
	results := []models.LeaveRequest{}
	for _, req := range r.requests {
		if req.UserID == userID {
			results = append(results, *req)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (r *fakeLeaveRepo) FindAllWithUserDetails(_ context.Context) ([]models.LeaveRequestWithUser, error) {
	results := []models.LeaveRequestWithUser{}
	for _, req := range r.requests {
		owner := r.users.users[req.UserID]
		if owner == nil {
			continue
		}
		results = append(results, models.LeaveRequestWithUser{
			ID:             req.ID,
			UserID:         req.UserID,
			Type:           req.Type,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			Reason:         req.Reason,
			Status:         req.Status,
			ReviewedBy:     req.ReviewedBy,
			ReviewedAt:     req.ReviewedAt,
			Note:           req.Note,
			CreatedAt:      req.CreatedAt,
			UserEmployeeID: owner.EmployeeID,
			UserFirstName:  owner.FirstName,
			UserLastName:   owner.LastName,
			UserEmail:      owner.Email,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, reviewer primitive.ObjectID, note string) (*mongo.UpdateResult, error) {
	for _, req := range r.requests {
		if req.ID == id {
			now := time.Now()
			req.Status = status
			req.ReviewedBy = &reviewer
			req.ReviewedAt = &now
			req.Note = note
			req.UpdatedAt = now
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{MatchedCount: 0}, nil
}

func (r *fakeLeaveRepo) CountPendingRequests(_ context.Context) (int64, error) {
	var count int64
	for _, req := range r.requests {
		if req.Status == models.LeaveStatusPending {
			count++
		}
	}
	return count, nil
}

// ---- test environment ------------------------------------------------------

type testEnv struct {
	app        *fiber.App
	tokens     *paseto.Maker
	userRepo   *fakeUserRepo
	attendance *fakeAttendanceRepo
	leave      *fakeLeaveRepo
}

func newTestEnv(t *testing.T, singleCheckInPerDay bool) *testEnv {
	t.Helper()

	tokens, err := paseto.NewMaker(testSecret)
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}

	userRepo := newFakeUserRepo()
	attendanceRepo := &fakeAttendanceRepo{users: userRepo}
	leaveRepo := &fakeLeaveRepo{users: userRepo}

	app := fiber.New()
	router.Register(app, &router.Handlers{
		Auth:       handlers.NewAuthHandler(userRepo, tokens),
		User:       handlers.NewUserHandler(userRepo, attendanceRepo, leaveRepo),
		Attendance: handlers.NewAttendanceHandler(attendanceRepo, singleCheckInPerDay),
		Leave:      handlers.NewLeaveRequestHandler(leaveRepo),
		Tokens:     tokens,
	})

	return &testEnv{
		app:        app,
		tokens:     tokens,
		userRepo:   userRepo,
		attendance: attendanceRepo,
		leave:      leaveRepo,
	}
}

func (e *testEnv) addUser(t *testing.T, employeeID, firstName, lastName, email, plainPassword, role string) *models.User {
	t.Helper()

	hashed, err := password.HashPassword(plainPassword)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	user := &models.User{
		EmployeeID: employeeID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Password:   hashed,
		Role:       role,
	}
	if _, err := e.userRepo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := e.tokens.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
