package repository

import (
	"context"

	"listkeeper/internal/domain"
)

// TodoListRepository exposes persistence operations for TodoList records.
type TodoListRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, list *domain.TodoList) (string, error)
	GetByID(ctx context.Context, id string) (*domain.TodoList, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.TodoList, error)
}

// TodoRepository exposes persistence operations for Todo records.
type TodoRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, todo *domain.Todo) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	ListByList(ctx context.Context, listID string) ([]domain.Todo, error)
	SetChecked(ctx context.Context, id string, checked bool) error
}
