package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID           string     `bson:"_id"`
	Username     string     `bson:"username"`
	Name         string     `bson:"name"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"passwordHash"`
	Role         string     `bson:"role"`
	IsActive     bool       `bson:"isActive"`
	CreatedAt    time.Time  `bson:"createdAt"`
	LastLoginAt  *time.Time `bson:"lastLoginAt,omitempty"`
}

func (d userDoc) toDomain() domain.User {
	u := domain.User{
		ID:           d.ID,
		Username:     d.Username,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt.UTC(),
	}
	if d.LastLoginAt != nil {
		t := d.LastLoginAt.UTC()
		u.LastLoginAt = &t
	}
	return u
}

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.coll.InsertOne(ctx, userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    truncate(u.CreatedAt),
	})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("mongo: create user: %w", err)
	}
	return nil
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	res, err := r.coll.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"lastLoginAt": truncate(at)}})
	if err != nil {
		return fmt.Errorf("mongo: touch last login: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
