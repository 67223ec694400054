package models

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskCategory string

const (
	CategoryMedication   TaskCategory = "medication"
	CategoryAppointment  TaskCategory = "appointment"
	CategoryPersonalCare TaskCategory = "personal-care"
	CategoryHousehold    TaskCategory = "household"
	CategoryOther        TaskCategory = "other"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryMedication, CategoryAppointment, CategoryPersonalCare, CategoryHousehold, CategoryOther:
		return true
	}
	return false
}

// Task is a single care task. CompletedAt is present if and only if
// Status == StatusCompleted.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     time.Time    `json:"dueDate"`
	Category    TaskCategory `json:"category"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// NewTask carries the client-supplied fields of a task to be created.
// ID and CreatedAt are assigned server-side.
type NewTask struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     time.Time    `json:"dueDate"`
	Category    TaskCategory `json:"category"`
}

// TaskPatch is a partial task update.
//
// CompletedAt interacts with Status: a patch moving the status away from
// completed clears the stored CompletedAt, and a patch moving it to
// completed without an explicit CompletedAt gets stamped with the current
// time. This keeps the completed-iff-timestamped invariant without needing
// a "clear" marker on the wire.
type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	Category    *TaskCategory `json:"category,omitempty"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// Apply merges the patch into t, enforcing the completion-timestamp
// invariant against now.
func (p TaskPatch) Apply(t *Task, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.CompletedAt != nil {
		t.CompletedAt = p.CompletedAt
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	switch {
	case t.Status != StatusCompleted:
		t.CompletedAt = nil
	case t.CompletedAt == nil:
		t.CompletedAt = &now
	}
}
