package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var pushToken sql.NullString
	query := `SELECT id, name, email, push_token FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &pushToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "user", ID: id}
	}
	if err != nil {
		return nil, err
	}
	u.PushToken = pushToken.String
	return u, nil
}
