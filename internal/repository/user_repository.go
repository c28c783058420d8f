package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/strokerox/agenciaHG/internal/model"
	"github.com/strokerox/agenciaHG/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts an agency user and returns its ID. The password is hashed
// here so no caller ever holds both the plain text and the DB handle.
func (r *UserRepo) Create(ctx context.Context, nombre, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO usuarios (nombre, email, password, rol) VALUES (?,?,?,?)",
		nombre, email, hash, role)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id_usuario, nombre, email, password, rol FROM usuarios WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Role)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id_usuario, nombre, email, password, rol FROM usuarios WHERE id_usuario=? LIMIT 1",
		id).Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Role)
	return u, err
}
