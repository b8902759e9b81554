package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"listkeeper/internal/domain"
	"listkeeper/internal/repository"
)

var (
	// ErrInvalidInput indicates a request field failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrNotOwner indicates the caller does not own the resource. The HTTP
	// boundary maps this and ErrNotFound to the same response so callers
	// cannot probe for existence.
	ErrNotOwner = errors.New("not the resource owner")
)

// TodoService coordinates list and item operations for an authenticated
// caller. Every operation re-validates that the caller still exists in the
// store before acting, since tokens are long-lived and stateless.
type TodoService interface {
	CreateList(ctx context.Context, callerID, name string) (*domain.TodoList, error)
	Lists(ctx context.Context, callerID string) ([]domain.TodoList, error)
	GetList(ctx context.Context, callerID, listID string) (*domain.TodoList, error)
	ListTodos(ctx context.Context, callerID, listID string) ([]domain.Todo, error)
	AddTodo(ctx context.Context, callerID, listID, title string) (*domain.Todo, error)
	SetTodoChecked(ctx context.Context, callerID, todoID string, checked bool) (*domain.Todo, error)
}

type todoService struct {
	lists repository.TodoListRepository
	todos repository.TodoRepository
	users repository.UserRepository
	authz *Authorizer
}

func NewTodoService(lists repository.TodoListRepository, todos repository.TodoRepository, users repository.UserRepository) TodoService {
	return &todoService{
		lists: lists,
		todos: todos,
		users: users,
		authz: NewAuthorizer(lists, todos),
	}
}

func (s *todoService) CreateList(ctx context.Context, callerID, name string) (*domain.TodoList, error) {
	if err := s.ensureCaller(ctx, callerID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: list name is required", ErrInvalidInput)
	}

	list := &domain.TodoList{
		ID:    uuid.NewString(),
		Name:  name,
		Owner: callerID,
	}
	if _, err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *todoService) Lists(ctx context.Context, callerID string) ([]domain.TodoList, error) {
	if err := s.ensureCaller(ctx, callerID); err != nil {
		return nil, err
	}
	return s.lists.ListByOwner(ctx, callerID)
}

func (s *todoService) GetList(ctx context.Context, callerID, listID string) (*domain.TodoList, error) {
	if err := s.ensureCaller(ctx, callerID); err != nil {
		return nil, err
	}
	if err := s.requireListOwner(ctx, callerID, listID); err != nil {
		return nil, err
	}
	return s.lists.GetByID(ctx, listID)
}

func (s *todoService) ListTodos(ctx context.Context, callerID, listID string) ([]domain.Todo, error) {
	if err := s.ensureCaller(ctx, callerID); err != nil {
		return nil, err
	}
	if err := s.requireListOwner(ctx, callerID, listID); err != nil {
		return nil, err
	}
	return s.todos.ListByList(ctx, listID)
}

func (s *todoService) AddTodo(ctx context.Context, callerID, listID, title string) (*domain.Todo, error) {
	if err := s.ensureCaller(ctx, callerID); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: todo title is required", ErrInvalidInput)
	}

	if err := s.requireListOwner(ctx, callerID, listID); err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		RelatedTo: listID,
	}
	if _, err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) SetTodoChecked(ctx context.Context, callerID, todoID string, checked bool) (*domain.Todo, error) {
	if err := s.ensureCaller(ctx, callerID); err != nil {
		return nil, err
	}

	owns, err := s.authz.OwnsTodo(ctx, callerID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !owns {
		return nil, ErrNotOwner
	}

	if err := s.todos.SetChecked(ctx, todoID, checked); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.todos.GetByID(ctx, todoID)
}

// ensureCaller confirms the authenticated identity still exists in the store.
// Tokens outlive accounts, so a valid token alone is not enough.
func (s *todoService) ensureCaller(ctx context.Context, callerID string) error {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	return nil
}

func (s *todoService) requireListOwner(ctx context.Context, callerID, listID string) error {
	owns, err := s.authz.OwnsList(ctx, callerID, listID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotOwner
	}
	return nil
}
