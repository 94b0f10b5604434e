package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
)

const userColumns = `id, username, name, email, password_hash, role, is_active, created_at, last_login_at`

type usersRepo struct {
	db *sql.DB
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		role      string
		active    int64
		createdAt int64
		lastLogin sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.PasswordHash, &role, &active, &createdAt, &lastLogin)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.IsActive = active != 0
	u.CreatedAt = fromMillis(createdAt)
	u.LastLoginAt = mapNullMillis(lastLogin)
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	active := 0
	if u.IsActive {
		active = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, name, email, password_hash, role, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Name, u.Email, u.PasswordHash, string(u.Role), active, toMillis(u.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, toMillis(at), userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
