package service

import "time"

// Task represents a single study item.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     Date      `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft holds the user-supplied fields of a new task.
type Draft struct {
	Title       string
	DueDate     Date
	Priority    Priority
	Category    string
	Description string
}

// Patch holds a partial task update. Nil fields keep their current value.
type Patch struct {
	Title       *string
	DueDate     *Date
	Priority    *Priority
	Category    *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.DueDate == nil && p.Priority == nil &&
		p.Category == nil && p.Description == nil
}

// Apply returns t with the supplied fields replaced.
// ID, Completed and CreatedAt are never touched.
func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}

// Progress summarizes completion across the collection.
type Progress struct {
	Total     int
	Completed int
	Rate      int // percent, 0-100
}

// Achievement is a milestone unlocked by completing tasks.
type Achievement struct {
	Count       int
	Title       string
	Icon        string
	Description string
}
