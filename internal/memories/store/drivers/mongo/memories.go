package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/pkg/idx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type memoryDoc struct {
	ID        string    `bson:"_id"`
	Date      string    `bson:"date"`
	Place     string    `bson:"place"`
	Title     string    `bson:"title"`
	Story     string    `bson:"story"`
	UserID    string    `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d memoryDoc) toDomain() domain.Memory {
	return domain.Memory{
		ID:        d.ID,
		Date:      d.Date,
		Place:     d.Place,
		Title:     d.Title,
		Story:     d.Story,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type memoriesRepo struct {
	coll *mongo.Collection
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *memoriesRepo) InsertMemory(ctx context.Context, m domain.Memory) (domain.Memory, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.CreatedAt = truncate(m.CreatedAt)
	if m.ID == "" {
		m.ID = idx.NewAt(m.CreatedAt).String()
	}

	_, err := r.coll.InsertOne(ctx, memoryDoc{
		ID:        m.ID,
		Date:      m.Date,
		Place:     m.Place,
		Title:     m.Title,
		Story:     m.Story,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return domain.Memory{}, fmt.Errorf("mongo: insert memory: %w", err)
	}
	return m, nil
}

func (r *memoriesRepo) ListMemories(ctx context.Context) ([]domain.Memory, error) {
	return r.find(ctx, bson.M{})
}

func (r *memoriesRepo) ListMemoriesByOwner(ctx context.Context, ownerID string) ([]domain.Memory, error) {
	return r.find(ctx, bson.M{"userId": ownerID})
}

func (r *memoriesRepo) find(ctx context.Context, filter bson.M) ([]domain.Memory, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("mongo: list memories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []memoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode memories: %w", err)
	}

	out := make([]domain.Memory, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
