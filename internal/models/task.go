package models

// Task is a single to-do item. CategoryName is free text and is not checked
// against existing categories.
type Task struct {
	ID              string `json:"id"`
	CategoryName    string `json:"category_name"`
	TaskName        string `json:"task_name"`
	TaskDescription string `json:"task_description"`
	IsUrgent        bool   `json:"is_urgent"`
	DueDate         string `json:"due_date"` // as typed by the user, e.g. "12 October, 2026"
	CreatedBy       string `json:"created_by"`
}

// Checkbox values used by the HTML forms and by persisted documents.
const (
	UrgentOn  = "on"
	UrgentOff = "off"
)

// UrgentFlag renders IsUrgent the way forms and stored records spell it.
func UrgentFlag(urgent bool) string {
	if urgent {
		return UrgentOn
	}
	return UrgentOff
}

// ParseUrgentFlag is the inverse of UrgentFlag. Anything but "on" is false.
func ParseUrgentFlag(s string) bool {
	return s == UrgentOn
}
