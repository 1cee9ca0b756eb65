package stats

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userStatsCollection  = "user_stats"
	hotelStatsCollection = "hotel_stats"
	processedCollection  = "processed_events"
)

type userStatsDoc struct {
	ID               string     `bson:"_id"`
	Reservations     int64      `bson:"reservations"`
	Cancellations    int64      `bson:"cancellations"`
	BookedDays       int64      `bson:"booked_days"`
	RatingsSubmitted int64      `bson:"ratings_submitted"`
	LastActivityAt   *time.Time `bson:"last_activity_at,omitempty"`
}

type hotelStatsDoc struct {
	ID            string     `bson:"_id"`
	Reservations  int64      `bson:"reservations"`
	Cancellations int64      `bson:"cancellations"`
	BookedDays    int64      `bson:"booked_days"`
	Ratings       int64      `bson:"ratings"`
	RatingSum     int64      `bson:"rating_sum"`
	UpdatedAt     *time.Time `bson:"updated_at,omitempty"`
}

// MongoStore keeps per-user and per-hotel counters. Documents are keyed by
// the uuid string so they are readable from the mongo shell.
type MongoStore struct {
	users     *mongo.Collection
	hotels    *mongo.Collection
	processed *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:     db.Collection(userStatsCollection),
		hotels:    db.Collection(hotelStatsCollection),
		processed: db.Collection(processedCollection),
	}
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errs.Wrap(err, "mongo: connect")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errs.Wrap(err, "mongo: ping")
	}
	return client, nil
}

func (s *MongoStore) UserStats(ctx context.Context, userID uuid.UUID) (*queries.UserStats, error) {
	var doc userStatsDoc
	err := s.users.FindOne(ctx, bson.M{"_id": userID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &queries.UserStats{UserID: userID}, nil
		}
		return nil, errs.Wrap(err, "mongo: find user stats")
	}
	return &queries.UserStats{
		UserID:           userID,
		Reservations:     doc.Reservations,
		Cancellations:    doc.Cancellations,
		BookedDays:       doc.BookedDays,
		RatingsSubmitted: doc.RatingsSubmitted,
		LastActivityAt:   doc.LastActivityAt,
	}, nil
}

func (s *MongoStore) HotelStats(ctx context.Context, hotelID uuid.UUID) (*queries.HotelStats, error) {
	var doc hotelStatsDoc
	err := s.hotels.FindOne(ctx, bson.M{"_id": hotelID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &queries.HotelStats{HotelID: hotelID}, nil
		}
		return nil, errs.Wrap(err, "mongo: find hotel stats")
	}
	return &queries.HotelStats{
		HotelID:       hotelID,
		Reservations:  doc.Reservations,
		Cancellations: doc.Cancellations,
		BookedDays:    doc.BookedDays,
		Ratings:       doc.Ratings,
		RatingSum:     doc.RatingSum,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}

// MarkProcessed records an event id. It reports false when the id was
// already recorded, which is how redelivered events are skipped.
func (s *MongoStore) MarkProcessed(ctx context.Context, eventID uuid.UUID, at time.Time) (bool, error) {
	_, err := s.processed.InsertOne(ctx, bson.M{"_id": eventID.String(), "processed_at": at})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, errs.Wrap(err, "mongo: mark event processed")
	}
	return true, nil
}

func (s *MongoStore) IncUser(ctx context.Context, userID uuid.UUID, delta Delta, at time.Time) error {
	update := bson.M{
		"$inc": bson.M{
			"reservations":      delta.Reservations,
			"cancellations":     delta.Cancellations,
			"booked_days":       delta.BookedDays,
			"ratings_submitted": delta.Ratings,
		},
		"$max": bson.M{"last_activity_at": at},
	}
	_, err := s.users.UpdateByID(ctx, userID.String(), update, options.Update().SetUpsert(true))
	if err != nil {
		return errs.Wrap(err, "mongo: update user stats")
	}
	return nil
}

func (s *MongoStore) IncHotel(ctx context.Context, hotelID uuid.UUID, delta Delta, at time.Time) error {
	update := bson.M{
		"$inc": bson.M{
			"reservations":  delta.Reservations,
			"cancellations": delta.Cancellations,
			"booked_days":   delta.BookedDays,
			"ratings":       delta.Ratings,
			"rating_sum":    delta.RatingSum,
		},
		"$max": bson.M{"updated_at": at},
	}
	_, err := s.hotels.UpdateByID(ctx, hotelID.String(), update, options.Update().SetUpsert(true))
	if err != nil {
		return errs.Wrap(err, "mongo: update hotel stats")
	}
	return nil
}
