package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sauhard04/propertyDekho/models"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(collection *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{collection: collection}
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, user)
	return err
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type MongoPropertyStore struct {
	collection *mongo.Collection
}

func NewMongoPropertyStore(collection *mongo.Collection) *MongoPropertyStore {
	return &MongoPropertyStore{collection: collection}
}

func (s *MongoPropertyStore) Insert(ctx context.Context, property *models.Property) error {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, property)
	return err
}

func (s *MongoPropertyStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *MongoPropertyStore) FindAll(ctx context.Context) ([]models.Property, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoPropertyStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Property, error) {
	return s.find(ctx, bson.M{"owner": owner})
}

func (s *MongoPropertyStore) find(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}
	return properties, cursor.Err()
}

func (s *MongoPropertyStore) Update(ctx context.Context, property *models.Property) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": property.ID}, property)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPropertyStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPropertyStore) AssignOwnerless(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	// A nil filter value matches documents where owner is null or absent,
	// which covers rows written before ownership existed.
	res, err := s.collection.UpdateMany(ctx,
		bson.M{"owner": nil},
		bson.M{"$set": bson.M{"owner": owner}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

type MongoClientStore struct {
	collection *mongo.Collection
}

func NewMongoClientStore(collection *mongo.Collection) *MongoClientStore {
	return &MongoClientStore{collection: collection}
}

func (s *MongoClientStore) Insert(ctx context.Context, client *models.Client) error {
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, client)
	return err
}

func (s *MongoClientStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *MongoClientStore) FindAll(ctx context.Context) ([]models.Client, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	for cursor.Next(ctx) {
		var client models.Client
		if err := cursor.Decode(&client); err != nil {
			continue
		}
		clients = append(clients, client)
	}
	return clients, cursor.Err()
}

func (s *MongoClientStore) Update(ctx context.Context, client *models.Client) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoClientStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoMeetingStore struct {
	collection *mongo.Collection
}

func NewMongoMeetingStore(collection *mongo.Collection) *MongoMeetingStore {
	return &MongoMeetingStore{collection: collection}
}

func (s *MongoMeetingStore) Insert(ctx context.Context, meeting *models.Meeting) error {
	if meeting.ID.IsZero() {
		meeting.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, meeting)
	return err
}

func (s *MongoMeetingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (s *MongoMeetingStore) FindAll(ctx context.Context) ([]models.Meeting, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	for cursor.Next(ctx) {
		var meeting models.Meeting
		if err := cursor.Decode(&meeting); err != nil {
			continue
		}
		meetings = append(meetings, meeting)
	}
	return meetings, cursor.Err()
}

func (s *MongoMeetingStore) Update(ctx context.Context, meeting *models.Meeting) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": meeting.ID}, meeting)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoMeetingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoTransactionStore struct {
	collection *mongo.Collection
}

func NewMongoTransactionStore(collection *mongo.Collection) *MongoTransactionStore {
	return &MongoTransactionStore{collection: collection}
}

func (s *MongoTransactionStore) Insert(ctx context.Context, txn *models.Transaction) error {
	if txn.ID.IsZero() {
		txn.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, txn)
	return err
}

func (s *MongoTransactionStore) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Transaction, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"buyer": user},
		bson.M{"seller": user},
	}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	for cursor.Next(ctx) {
		var txn models.Transaction
		if err := cursor.Decode(&txn); err != nil {
			continue
		}
		transactions = append(transactions, txn)
	}
	return transactions, cursor.Err()
}

func (s *MongoTransactionStore) Update(ctx context.Context, txn *models.Transaction) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": txn.ID}, txn)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
