// File: database/repository/service/service_mongo.go
package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlotNotFound is returned when a booking update targets a slot
// label the service does not have.
var ErrSlotNotFound = errors.New("slot label not found")

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepo{coll: db.Collection("services")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll returns every service document.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// AddBookedDate appends a booked date to one slot in a single atomic
// update, addressed by the slot's label. Other slots are untouched.
func (r *MongoServiceRepo) AddBookedDate(id primitive.ObjectID, slotLabel, date string) error {
	update := bson.M{"$push": bson.M{"availableSlot.$[s].bookedDates": date}}
	return r.updateSlot(bson.M{"_id": id}, slotLabel, update)
}

// RemoveBookedDate pulls a booked date from one slot, addressed by
// service name and slot label.
func (r *MongoServiceRepo) RemoveBookedDate(name, slotLabel, date string) error {
	update := bson.M{"$pull": bson.M{"availableSlot.$[s].bookedDates": date}}
	return r.updateSlot(bson.M{"name": name}, slotLabel, update)
}

func (r *MongoServiceRepo) updateSlot(filter bson.M, slotLabel string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"s.slot": slotLabel}},
	})

	slotFilter := bson.M{"availableSlot.slot": slotLabel}
	for k, v := range filter {
		slotFilter[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, slotFilter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to update slot %q: %w", slotLabel, err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing service from a missing slot label.
		count, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to look up service: %w", err)
		}
		if count == 0 {
			return mongo.ErrNoDocuments
		}
		return ErrSlotNotFound
	}
	return nil
}
