package service

import (
	"context"
	"fmt"
	"sync"

	"listkeeper/internal/domain"
	"listkeeper/internal/repository"
)

// In-memory repositories for service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Init(context.Context) error { return nil }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Name == user.Name || existing.Email == user.Email {
			return "", fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Name == name {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		u := user
		return &u, nil
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeListRepo struct {
	mu    sync.Mutex
	lists map[string]domain.TodoList
	err   error
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: map[string]domain.TodoList{}}
}

func (r *fakeListRepo) Init(context.Context) error { return nil }

func (r *fakeListRepo) Create(_ context.Context, list *domain.TodoList) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.lists[list.ID] = *list
	return list.ID, nil
}

func (r *fakeListRepo) GetByID(_ context.Context, id string) (*domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if list, ok := r.lists[id]; ok {
		l := list
		return &l, nil
	}
	return nil, fmt.Errorf("todo list: %w", repository.ErrNotFound)
}

func (r *fakeListRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.TodoList
	for _, list := range r.lists {
		if list.Owner == ownerID {
			out = append(out, list)
		}
	}
	return out, nil
}

type fakeTodoRepo struct {
	mu    sync.Mutex
	todos map[string]domain.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[string]domain.Todo{}}
}

func (r *fakeTodoRepo) Init(context.Context) error { return nil }

func (r *fakeTodoRepo) Create(_ context.Context, todo *domain.Todo) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos[todo.ID] = *todo
	return todo.ID, nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if todo, ok := r.todos[id]; ok {
		t := todo
		return &t, nil
	}
	return nil, fmt.Errorf("todo: %w", repository.ErrNotFound)
}

func (r *fakeTodoRepo) ListByList(_ context.Context, listID string) ([]domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Todo
	for _, todo := range r.todos {
		if todo.RelatedTo == listID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (r *fakeTodoRepo) SetChecked(_ context.Context, id string, checked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	todo, ok := r.todos[id]
	if !ok {
		return fmt.Errorf("todo: %w", repository.ErrNotFound)
	}
	todo.Checked = checked
	r.todos[id] = todo
	return nil
}
