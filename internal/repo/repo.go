package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Project is one saved beam configuration. Input holds the analysis
// request exactly as the owner submitted it.
type Project struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveProject(ctx context.Context, userID int, name string, input []byte) (int, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID, id int) (Project, error)
	DeleteProject(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveProject(ctx context.Context, userID int, name string, input []byte) (int, error) {
	var id int
	query := "INSERT INTO projects (user_id, name, input) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, string(input)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := "SELECT id, name, created_at FROM projects WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID, id int) (Project, error) {
	var p Project
	var input []byte

	query := "SELECT id, name, input, created_at FROM projects WHERE id=$1 AND user_id=$2"

	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&p.ID, &p.Name, &input, &p.CreatedAt)
	if err != nil {
		return Project{}, err
	}
	p.Input = json.RawMessage(input)
	return p, nil
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
