package service

import (
	"context"
	"errors"

	"listkeeper/internal/repository"
)

// Authorizer answers ownership questions for todo resources. It is a pure
// policy check: no operation here mutates state, and any store failure is a
// deny, never a grant.
type Authorizer struct {
	lists repository.TodoListRepository
	todos repository.TodoRepository
}

func NewAuthorizer(lists repository.TodoListRepository, todos repository.TodoRepository) *Authorizer {
	return &Authorizer{
		lists: lists,
		todos: todos,
	}
}

// OwnsList reports whether the list exists and is owned by userID. A missing
// list and a mismatched owner are indistinguishable to the caller.
func (a *Authorizer) OwnsList(ctx context.Context, userID, listID string) (bool, error) {
	list, err := a.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return list.Owner == userID, nil
}

// OwnsTodo resolves a todo's parent list and delegates to OwnsList. A missing
// todo surfaces as repository.ErrNotFound, distinct from a deny.
func (a *Authorizer) OwnsTodo(ctx context.Context, userID, todoID string) (bool, error) {
	todo, err := a.todos.GetByID(ctx, todoID)
	if err != nil {
		return false, err
	}
	return a.OwnsList(ctx, userID, todo.RelatedTo)
}
