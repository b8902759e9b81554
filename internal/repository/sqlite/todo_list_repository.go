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

const createTodoListsTable = `
CREATE TABLE IF NOT EXISTS todo_lists (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	owner TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(owner) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_todo_lists_owner ON todo_lists(owner);
`

type TodoListRepository struct {
	db *sql.DB
}

func NewTodoListRepository(db *sql.DB) repository.TodoListRepository {
	return &TodoListRepository{db: db}
}

func (r *TodoListRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTodoListsTable); err != nil {
		return fmt.Errorf("create todo_lists table: %w", err)
	}
	return nil
}

func (r *TodoListRepository) Create(ctx context.Context, list *domain.TodoList) (string, error) {
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO todo_lists (id, name, owner, created_at)
VALUES (?, ?, ?, ?)`,
		list.ID,
		list.Name,
		list.Owner,
		list.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert todo list: %w", err)
	}
	return list.ID, nil
}

func (r *TodoListRepository) GetByID(ctx context.Context, id string) (*domain.TodoList, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, owner, created_at
FROM todo_lists
WHERE id = ?`,
		id,
	)

	var list domain.TodoList
	if err := row.Scan(&list.ID, &list.Name, &list.Owner, &list.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo list: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan todo list: %w", err)
	}
	return &list, nil
}

func (r *TodoListRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.TodoList, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, owner, created_at
FROM todo_lists
WHERE owner = ?
ORDER BY created_at ASC, id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query todo lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.TodoList
	for rows.Next() {
		var list domain.TodoList
		if err := rows.Scan(&list.ID, &list.Name, &list.Owner, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todo lists: %w", err)
	}
	return lists, nil
}
