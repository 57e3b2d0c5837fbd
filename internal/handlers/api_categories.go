package handlers

import (
	"net/http"

	"task_manager/internal/models"

	"github.com/gin-gonic/gin"
)

// CategoryRequest is the JSON body for creating or renaming a category.
type CategoryRequest struct {
	CategoryName string `json:"category_name" example:"Garden"`
}

// @Summary      List categories
// @Description  Sorted by name, ascending.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Category
// @Router       /api/v1/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load categories", "api_list_categories_failed", err)
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      CategoryRequest  true  "category"
// @Success      201    {object}  map[string]string  "id"
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var req CategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Categories.Create(c.Request.Context(), req.CategoryName)
	if err != nil {
		h.apiError(c, "api_create_category_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "category id"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	cat, err := h.services.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load category", "api_get_category_failed", err)
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Security     BearerAuth
// @Param        id     path  string           true  "category id"
// @Param        input  body  CategoryRequest  true  "category"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/categories/{id} [put]
func (h *Handler) updateCategory(c *gin.Context) {
	var req CategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Categories.Update(c.Request.Context(), c.Param("id"), req.CategoryName); err != nil {
		h.apiError(c, "api_update_category_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
