package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"listkeeper/internal/domain"
	"listkeeper/internal/repository"
)

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	checked INTEGER NOT NULL DEFAULT 0,
	related_to TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(related_to) REFERENCES todo_lists(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_todos_related_to ON todos(related_to);
`

type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTodosTable); err != nil {
		return fmt.Errorf("create todos table: %w", err)
	}
	return nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (string, error) {
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO todos (id, title, checked, related_to, created_at)
VALUES (?, ?, ?, ?, ?)`,
		todo.ID,
		todo.Title,
		todo.Checked,
		todo.RelatedTo,
		todo.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert todo: %w", err)
	}
	return todo.ID, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, checked, related_to, created_at
FROM todos
WHERE id = ?`,
		id,
	)
	return scanTodo(row)
}

func (r *TodoRepository) ListByList(ctx context.Context, listID string) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, checked, related_to, created_at
FROM todos
WHERE related_to = ?
ORDER BY created_at ASC, id ASC`, listID)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Checked, &todo.RelatedTo, &todo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE todos SET checked = ? WHERE id = ?`, checked, id)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("todo rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("todo: %w", repository.ErrNotFound)
	}
	return nil
}

func scanTodo(row interface {
	Scan(dest ...any) error
}) (*domain.Todo, error) {
	var todo domain.Todo
	if err := row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Checked,
		&todo.RelatedTo,
		&todo.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan todo: %w", err)
	}
	return &todo, nil
}
