package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
)

type usersRepo struct {
	db DBTX
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserByID, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserByUsername, username))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	created := nowOr(u.CreatedAt)
	updated := created
	if !u.UpdatedAt.IsZero() {
		updated = u.UpdatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, createUser,
		u.ID,
		u.Username,
		mapOptionalString(u.Email),
		u.FirstName,
		u.LastName,
		u.PasswordHash,
		u.Active,
		created,
		updated,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	res, err := r.db.ExecContext(ctx, updateUserHash, newHash, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u     domain.User
		email sql.NullString
	)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Email = mapNullStringPtr(email)
	return u, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
