package store

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/models"
)

// In-memory stores backing the handler tests. They implement the same
// interfaces as the Mongo stores with map + RWMutex semantics.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MemoryUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryPropertyStore struct {
	mu         sync.RWMutex
	properties map[primitive.ObjectID]models.Property
}

func NewMemoryPropertyStore() *MemoryPropertyStore {
	return &MemoryPropertyStore{properties: make(map[primitive.ObjectID]models.Property)}
}

func (s *MemoryPropertyStore) Insert(_ context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	s.properties[property.ID] = *property
	return nil
}

func (s *MemoryPropertyStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	property, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &property, nil
}

func (s *MemoryPropertyStore) FindAll(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	properties := []models.Property{}
	for _, property := range s.properties {
		properties = append(properties, property)
	}
	return properties, nil
}

func (s *MemoryPropertyStore) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	properties := []models.Property{}
	for _, property := range s.properties {
		if property.Owner != nil && *property.Owner == owner {
			properties = append(properties, property)
		}
	}
	return properties, nil
}

func (s *MemoryPropertyStore) Update(_ context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[property.ID]; !ok {
		return ErrNotFound
	}
	s.properties[property.ID] = *property
	return nil
}

func (s *MemoryPropertyStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return ErrNotFound
	}
	delete(s.properties, id)
	return nil
}

func (s *MemoryPropertyStore) AssignOwnerless(_ context.Context, owner primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var adopted int64
	for id, property := range s.properties {
		if property.Owner == nil {
			o := owner
			property.Owner = &o
			s.properties[id] = property
			adopted++
		}
	}
	return adopted, nil
}

type MemoryClientStore struct {
	mu      sync.RWMutex
	clients map[primitive.ObjectID]models.Client
}

func NewMemoryClientStore() *MemoryClientStore {
	return &MemoryClientStore{clients: make(map[primitive.ObjectID]models.Client)}
}

func (s *MemoryClientStore) Insert(_ context.Context, client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	s.clients[client.ID] = *client
	return nil
}

func (s *MemoryClientStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	client, ok := s.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

func (s *MemoryClientStore) FindAll(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := []models.Client{}
	for _, client := range s.clients {
		clients = append(clients, client)
	}
	return clients, nil
}

func (s *MemoryClientStore) Update(_ context.Context, client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[client.ID]; !ok {
		return ErrNotFound
	}
	s.clients[client.ID] = *client
	return nil
}

func (s *MemoryClientStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

type MemoryMeetingStore struct {
	mu       sync.RWMutex
	meetings map[primitive.ObjectID]models.Meeting
}

func NewMemoryMeetingStore() *MemoryMeetingStore {
	return &MemoryMeetingStore{meetings: make(map[primitive.ObjectID]models.Meeting)}
}

func (s *MemoryMeetingStore) Insert(_ context.Context, meeting *models.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if meeting.ID.IsZero() {
		meeting.ID = primitive.NewObjectID()
	}
	s.meetings[meeting.ID] = *meeting
	return nil
}

func (s *MemoryMeetingStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meeting, ok := s.meetings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &meeting, nil
}

func (s *MemoryMeetingStore) FindAll(_ context.Context) ([]models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meetings := []models.Meeting{}
	for _, meeting := range s.meetings {
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}

func (s *MemoryMeetingStore) Update(_ context.Context, meeting *models.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meetings[meeting.ID]; !ok {
		return ErrNotFound
	}
	s.meetings[meeting.ID] = *meeting
	return nil
}

func (s *MemoryMeetingStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meetings[id]; !ok {
		return ErrNotFound
	}
	delete(s.meetings, id)
	return nil
}

type MemoryTransactionStore struct {
	mu           sync.RWMutex
	transactions map[primitive.ObjectID]models.Transaction
}

func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{transactions: make(map[primitive.ObjectID]models.Transaction)}
}

func (s *MemoryTransactionStore) Insert(_ context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn.ID.IsZero() {
		txn.ID = primitive.NewObjectID()
	}
	s.transactions[txn.ID] = *txn
	return nil
}

func (s *MemoryTransactionStore) FindByUser(_ context.Context, user primitive.ObjectID) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transactions := []models.Transaction{}
	for _, txn := range s.transactions {
		if txn.Buyer == user || txn.Seller == user {
			transactions = append(transactions, txn)
		}
	}
	return transactions, nil
}

func (s *MemoryTransactionStore) Update(_ context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[txn.ID]; !ok {
		return ErrNotFound
	}
	s.transactions[txn.ID] = *txn
	return nil
}

// All returns every stored transaction; test helper.
func (s *MemoryTransactionStore) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transactions := []models.Transaction{}
	for _, txn := range s.transactions {
		transactions = append(transactions, txn)
	}
	return transactions
}
