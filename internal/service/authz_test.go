package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkeeper/internal/domain"
	"listkeeper/internal/repository"
)

func TestOwnsList(t *testing.T) {
	lists := newFakeListRepo()
	todos := newFakeTodoRepo()
	lists.lists["list-1"] = domain.TodoList{ID: "list-1", Name: "groceries", Owner: "user-a"}

	authz := NewAuthorizer(lists, todos)

	tests := []struct {
		name   string
		userID string
		listID string
		want   bool
	}{
		{name: "owner matches", userID: "user-a", listID: "list-1", want: true},
		{name: "different owner", userID: "user-b", listID: "list-1", want: false},
		{name: "list missing", userID: "user-a", listID: "list-404", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owns, err := authz.OwnsList(context.Background(), tt.userID, tt.listID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, owns)
		})
	}
}

func TestOwnsListStoreErrorDenies(t *testing.T) {
	lists := newFakeListRepo()
	lists.err = errors.New("connection reset")

	authz := NewAuthorizer(lists, newFakeTodoRepo())

	owns, err := authz.OwnsList(context.Background(), "user-a", "list-1")
	assert.Error(t, err)
	assert.False(t, owns, "a store failure must never grant access")
}

func TestOwnsTodoTransitive(t *testing.T) {
	lists := newFakeListRepo()
	todos := newFakeTodoRepo()
	lists.lists["list-1"] = domain.TodoList{ID: "list-1", Name: "groceries", Owner: "user-a"}
	todos.todos["todo-1"] = domain.Todo{ID: "todo-1", Title: "milk", RelatedTo: "list-1"}

	authz := NewAuthorizer(lists, todos)

	owns, err := authz.OwnsTodo(context.Background(), "user-a", "todo-1")
	require.NoError(t, err)
	assert.True(t, owns, "ownership is transitive through the parent list")

	owns, err = authz.OwnsTodo(context.Background(), "user-b", "todo-1")
	require.NoError(t, err)
	assert.False(t, owns)
}

func TestOwnsTodoMissingItem(t *testing.T) {
	authz := NewAuthorizer(newFakeListRepo(), newFakeTodoRepo())

	owns, err := authz.OwnsTodo(context.Background(), "user-a", "todo-404")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, owns)
}

func TestOwnsTodoOrphanedItem(t *testing.T) {
	todos := newFakeTodoRepo()
	todos.todos["todo-1"] = domain.Todo{ID: "todo-1", Title: "milk", RelatedTo: "list-gone"}

	authz := NewAuthorizer(newFakeListRepo(), todos)

	// Parent list missing: deny without error, same as a mismatched owner.
	owns, err := authz.OwnsTodo(context.Background(), "user-a", "todo-1")
	require.NoError(t, err)
	assert.False(t, owns)
}
