package domain

import "time"

// TodoList groups todos under a single owning user. Ownership of every todo
// in the list is derived from Owner.
type TodoList struct {
	ID        string
	Name      string
	Owner     string
	CreatedAt time.Time
}

// Todo is a single entry belonging to one list via RelatedTo.
type Todo struct {
	ID        string
	Title     string
	Checked   bool
	RelatedTo string
	CreatedAt time.Time
}
