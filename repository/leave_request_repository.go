package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dayflow-backend/config"
	"dayflow-backend/models"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error)
	FindAllWithUserDetails(ctx context.Context) ([]models.LeaveRequestWithUser, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, reviewer primitive.ObjectID, note string) (*mongo.UpdateResult, error)
	CountPendingRequests(ctx context.Context) (int64, error)
}

type leaveRequestRepository struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository() LeaveRequestRepository {
	return &leaveRequestRepository{
		collection: config.GetCollection(config.LeaveRequestCollection),
	}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return res, nil
}

func (r *leaveRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave request by ID: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave requests by user ID: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequest{}, nil
	}
	return requests, nil
}

// FindAllWithUserDetails returns every request, newest first, with the owner's
// directory fields expanded for the admin listing.
func (r *leaveRequestRepository) FindAllWithUserDetails(ctx context.Context) ([]models.LeaveRequestWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "type", Value: 1},
			{Key: "start_date", Value: 1},
			{Key: "end_date", Value: 1},
			{Key: "reason", Value: 1},
			{Key: "status", Value: 1},
			{Key: "reviewed_by", Value: 1},
			{Key: "reviewed_at", Value: 1},
			{Key: "note", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "user_employee_id", Value: "$userDetails.employee_id"},
			{Key: "user_first_name", Value: "$userDetails.first_name"},
			{Key: "user_last_name", Value: "$userDetails.last_name"},
			{Key: "user_email", Value: "$userDetails.email"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LeaveRequestWithUser
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode aggregated leave requests: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequestWithUser{}, nil
	}
	return requests, nil
}

// UpdateStatus overwrites the request status unconditionally (last write
// wins, no prior-status check) and records the reviewing admin. An empty
// note clears any comment left by an earlier review.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, reviewer primitive.ObjectID, note string) (*mongo.UpdateResult, error) {
	now := time.Now()
	set := bson.M{
		"status":      status,
		"reviewed_by": reviewer,
		"reviewed_at": now,
		"updated_at":  now,
	}
	update := bson.M{"$set": set}
	if note != "" {
		set["note"] = note
	} else {
		update["$unset"] = bson.M{"note": ""}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave request status: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) CountPendingRequests(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.LeaveStatusPending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}
