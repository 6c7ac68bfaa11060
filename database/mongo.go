package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"greenwave-ticketing/model"
)

const mongoOpTimeout = 10 * time.Second

// MongoStore keeps the three snapshot blobs as Mongo collections. Loads are
// whole-collection reads; saves drop and rewrite each collection, matching
// the all-or-nothing snapshot contract.
type MongoStore struct {
	attendees   *mongo.Collection
	exhibitions *mongo.Collection
	sales       *mongo.Collection
}

func NewMongoStore(connString string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connString))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	db := client.Database("greenwave-ticketing")
	return &MongoStore{
		attendees:   db.Collection("attendees"),
		exhibitions: db.Collection("exhibitions"),
		sales:       db.Collection("sales"),
	}, nil
}

func (s *MongoStore) Load() Snapshot {
	snapshot := Snapshot{
		Attendees:   []*model.Attendee{},
		Exhibitions: []*model.Exhibition{},
		Sales:       []model.SaleEvent{},
	}

	var attendees []*model.Attendee
	if readAll(s.attendees, &attendees) && attendees != nil {
		snapshot.Attendees = attendees
	}
	var exhibitions []*model.Exhibition
	if readAll(s.exhibitions, &exhibitions) && exhibitions != nil {
		snapshot.Exhibitions = exhibitions
	}
	var sales []model.SaleEvent
	if readAll(s.sales, &sales) && sales != nil {
		snapshot.Sales = sales
	}
	return snapshot
}

func (s *MongoStore) Save(snapshot Snapshot) error {
	attendees := make([]interface{}, 0, len(snapshot.Attendees))
	for _, attendee := range snapshot.Attendees {
		attendees = append(attendees, attendee)
	}
	exhibitions := make([]interface{}, 0, len(snapshot.Exhibitions))
	for _, exhibition := range snapshot.Exhibitions {
		exhibitions = append(exhibitions, exhibition)
	}
	sales := make([]interface{}, 0, len(snapshot.Sales))
	for _, sale := range snapshot.Sales {
		sales = append(sales, sale)
	}

	if err := rewriteAll(s.attendees, attendees); err != nil {
		return err
	}
	if err := rewriteAll(s.exhibitions, exhibitions); err != nil {
		return err
	}
	return rewriteAll(s.sales, sales)
}

// readAll decodes every document in the collection into target and reports
// whether the read completed. A false result means the caller should treat
// the collection as empty.
func readAll(collection *mongo.Collection, target interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	cur, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return false
	}
	return cur.All(ctx, target) == nil
}

func rewriteAll(collection *mongo.Collection, documents []interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	if err := collection.Drop(ctx); err != nil {
		return err
	}
	if len(documents) == 0 {
		return nil
	}
	_, err := collection.InsertMany(ctx, documents)
	return err
}
