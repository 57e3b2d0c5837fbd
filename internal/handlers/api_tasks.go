package handlers

import (
	"net/http"

	"task_manager/internal/models"
	"task_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskRequest is the JSON body for creating or replacing a task.
type TaskRequest struct {
	CategoryName    string `json:"category_name" example:"Home"`
	TaskName        string `json:"task_name" example:"Wash the dishes"`
	TaskDescription string `json:"task_description" example:"All of them"`
	IsUrgent        bool   `json:"is_urgent" example:"true"`
	// Free text, stored as sent
	DueDate string `json:"due_date" example:"1 May, 2026"`
}

func (r TaskRequest) input() service.TaskInput {
	return service.TaskInput{
		CategoryName:    r.CategoryName,
		TaskName:        r.TaskName,
		TaskDescription: r.TaskDescription,
		IsUrgent:        r.IsUrgent,
		DueDate:         r.DueDate,
	}
}

// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Task
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tasks [get]
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load tasks", "api_list_tasks_failed", err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      TaskRequest  true  "task"
// @Success      201    {object}  map[string]string  "id"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/v1/tasks [post]
func (h *Handler) createTask(c *gin.Context) {
	var req TaskRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Tasks.Create(c.Request.Context(), req.input(), c.GetString(ctxUserKey))
	if err != nil {
		h.apiError(c, "api_create_task_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "task id"
// @Success      200  {object}  models.Task
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/tasks/{id} [get]
func (h *Handler) getTask(c *gin.Context) {
	task, err := h.services.Tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load task", "api_get_task_failed", err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Replace a task
// @Description  Every field is overwritten and created_by becomes the caller.
// @Tags         tasks
// @Accept       json
// @Security     BearerAuth
// @Param        id     path  string       true  "task id"
// @Param        input  body  TaskRequest  true  "task"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/tasks/{id} [put]
func (h *Handler) updateTask(c *gin.Context) {
	var req TaskRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Tasks.Update(c.Request.Context(), c.Param("id"), req.input(), c.GetString(ctxUserKey)); err != nil {
		h.apiError(c, "api_update_task_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "task id"
// @Success      204
// @Router       /api/v1/tasks/{id} [delete]
func (h *Handler) deleteTaskAPI(c *gin.Context) {
	if err := h.services.Tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.apiError(c, "api_delete_task_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
