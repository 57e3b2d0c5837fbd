package repository

import (
	"task_manager/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, shared with data written by earlier deployments.
const (
	usersCollection      = "users"
	tasksCollection      = "tasks"
	categoriesCollection = "categories"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

func (d userDocument) toModel() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username, PasswordHash: d.Password}
}

type taskDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CategoryName    string             `bson:"category_name"`
	TaskName        string             `bson:"task_name"`
	TaskDescription string             `bson:"task_description"`
	IsUrgent        string             `bson:"is_urgent"` // "on" | "off"
	DueDate         string             `bson:"due_date"`
	CreatedBy       string             `bson:"created_by"`
}

func newTaskDocument(t models.Task) taskDocument {
	return taskDocument{
		CategoryName:    t.CategoryName,
		TaskName:        t.TaskName,
		TaskDescription: t.TaskDescription,
		IsUrgent:        models.UrgentFlag(t.IsUrgent),
		DueDate:         t.DueDate,
		CreatedBy:       t.CreatedBy,
	}
}

func (d taskDocument) toModel() models.Task {
	return models.Task{
		ID:              d.ID.Hex(),
		CategoryName:    d.CategoryName,
		TaskName:        d.TaskName,
		TaskDescription: d.TaskDescription,
		IsUrgent:        models.ParseUrgentFlag(d.IsUrgent),
		DueDate:         d.DueDate,
		CreatedBy:       d.CreatedBy,
	}
}

type categoryDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CategoryName string             `bson:"category_name"`
}

func (d categoryDocument) toModel() models.Category {
	return models.Category{ID: d.ID.Hex(), CategoryName: d.CategoryName}
}

// parseObjectID reports false for ids that cannot name any document.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
