package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/pkg/idx"
)

const memoryColumns = `id, date, place, title, story, user_id, created_at`

type memoriesRepo struct {
	db *sql.DB
}

func (r *memoriesRepo) InsertMemory(ctx context.Context, m domain.Memory) (domain.Memory, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.CreatedAt = fromMillis(toMillis(m.CreatedAt))
	if m.ID == "" {
		m.ID = idx.NewAt(m.CreatedAt).String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memories (`+memoryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Date, m.Place, m.Title, m.Story, m.UserID, toMillis(m.CreatedAt),
	)
	if err != nil {
		return domain.Memory{}, mapConstraint(err)
	}
	return m, nil
}

func (r *memoriesRepo) ListMemories(ctx context.Context) ([]domain.Memory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memoryColumns+` FROM memories ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return scanMemories(rows)
}

func (r *memoriesRepo) ListMemoriesByOwner(ctx context.Context, ownerID string) ([]domain.Memory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE user_id = ? ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return scanMemories(rows)
}

func scanMemories(rows *sql.Rows) ([]domain.Memory, error) {
	defer rows.Close()

	out := []domain.Memory{}
	for rows.Next() {
		var (
			m         domain.Memory
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.Date, &m.Place, &m.Title, &m.Story, &m.UserID, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = fromMillis(createdAt)
		out = append(out, m)
	}
	return out, rows.Err()
}
