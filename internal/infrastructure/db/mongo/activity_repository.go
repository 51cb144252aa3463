package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/content-api/internal/core/domain"
)

const activityCollection = "post_activity"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PostID     string             `bson:"post_id"`
	ActorID    string             `bson:"actor_id"`
	Verb       string             `bson:"verb"`
	OccurredAt int64              `bson:"occurred_at"`
}

func (r *MongoActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	doc := mongoActivity{
		PostID:     activity.PostID,
		ActorID:    activity.ActorID,
		Verb:       string(activity.Verb),
		OccurredAt: activity.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *MongoActivityRepository) ListByPost(ctx context.Context, postID string, limit int) ([]*domain.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.Activity
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, &domain.Activity{
			ID:         ma.ID.Hex(),
			PostID:     ma.PostID,
			ActorID:    ma.ActorID,
			Verb:       domain.ActivityVerb(ma.Verb),
			OccurredAt: unixToTime(ma.OccurredAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return entries, nil
}
