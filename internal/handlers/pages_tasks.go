package handlers

import (
	"net/http"

	"task_manager/internal/models"
	"task_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	noticeTaskAdded    = "Your new task has been added!"
	noticeTaskUpdated  = "Your task has been updated!"
	noticeTaskDeleted  = "Task successfully deleted!"
	noticeTaskNotFound = "Task not found"
)

// taskForm is the body of the add and edit task forms. An unchecked
// checkbox is simply absent from the form.
type taskForm struct {
	CategoryName    string `form:"category_name"`
	TaskName        string `form:"task_name"`
	TaskDescription string `form:"task_description"`
	IsUrgent        string `form:"is_urgent"`
	DueDate         string `form:"due_date"`
}

func (f taskForm) input() service.TaskInput {
	return service.TaskInput{
		CategoryName:    f.CategoryName,
		TaskName:        f.TaskName,
		TaskDescription: f.TaskDescription,
		IsUrgent:        f.IsUrgent != "",
		DueDate:         f.DueDate,
	}
}

func (h *Handler) getTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context())
	if err != nil {
		h.log.Errorw("list_tasks_failed", "err", err)
		h.htmlStatus(c, http.StatusInternalServerError, "tasks.html", "Tasks",
			gin.H{"tasks": []models.Task{}, "notice": noticeServerError})
		return
	}
	h.html(c, "tasks.html", "Tasks", gin.H{"tasks": tasks})
}

// sortedCategories feeds the category dropdown; a failure leaves it empty.
func (h *Handler) sortedCategories(c *gin.Context) []models.Category {
	cats, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.log.Errorw("list_categories_failed", "err", err)
		return nil
	}
	return cats
}

func (h *Handler) addTaskPage(c *gin.Context) {
	h.html(c, "add_task.html", "Add Task", gin.H{"categories": h.sortedCategories(c)})
}

func (h *Handler) addTask(c *gin.Context) {
	var form taskForm
	_ = c.ShouldBind(&form)

	id, err := h.services.Tasks.Create(c.Request.Context(), form.input(), c.GetString(ctxUserKey))
	if err != nil {
		h.formFailure(c, "/add_task", "create_task_failed", err)
		return
	}
	h.log.Infow("task_created", "task_id", id, "created_by", c.GetString(ctxUserKey))
	h.redirectWithFlash(c, "/get_tasks", noticeTaskAdded)
}

func (h *Handler) editTaskPage(c *gin.Context) {
	task, err := h.services.Tasks.Get(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		h.formFailure(c, "/get_tasks", "get_task_failed", err)
		return
	}
	if task == nil {
		h.redirectWithFlash(c, "/get_tasks", noticeTaskNotFound)
		return
	}
	h.html(c, "edit_task.html", "Edit Task", gin.H{
		"task":       task,
		"categories": h.sortedCategories(c),
	})
}

func (h *Handler) editTask(c *gin.Context) {
	id := c.Param("task_id")
	var form taskForm
	_ = c.ShouldBind(&form)

	if err := h.services.Tasks.Update(c.Request.Context(), id, form.input(), c.GetString(ctxUserKey)); err != nil {
		h.formFailure(c, "/edit_task/"+id, "update_task_failed", err)
		return
	}
	h.log.Infow("task_updated", "task_id", id, "edited_by", c.GetString(ctxUserKey))
	h.redirectWithFlash(c, "/get_tasks", noticeTaskUpdated)
}

func (h *Handler) deleteTask(c *gin.Context) {
	id := c.Param("task_id")
	if err := h.services.Tasks.Delete(c.Request.Context(), id); err != nil {
		h.formFailure(c, "/get_tasks", "delete_task_failed", err)
		return
	}
	h.log.Infow("task_deleted", "task_id", id, "deleted_by", c.GetString(ctxUserKey))
	h.redirectWithFlash(c, "/get_tasks", noticeTaskDeleted)
}
