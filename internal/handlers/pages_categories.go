package handlers

import (
	"net/http"

	"task_manager/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	noticeCategoryAdded    = "New Category added!"
	noticeCategoryUpdated  = "Category updated!"
	noticeCategoryNotFound = "Category not found"
)

type categoryForm struct {
	CategoryName string `form:"category_name"`
}

func (h *Handler) getCategories(c *gin.Context) {
	cats, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.log.Errorw("list_categories_failed", "err", err)
		h.htmlStatus(c, http.StatusInternalServerError, "categories.html", "Categories",
			gin.H{"categories": []models.Category{}, "notice": noticeServerError})
		return
	}
	h.html(c, "categories.html", "Categories", gin.H{"categories": cats})
}

func (h *Handler) addCategoryPage(c *gin.Context) {
	h.html(c, "add_category.html", "Add Category", nil)
}

func (h *Handler) addCategory(c *gin.Context) {
	var form categoryForm
	_ = c.ShouldBind(&form)

	id, err := h.services.Categories.Create(c.Request.Context(), form.CategoryName)
	if err != nil {
		h.formFailure(c, "/add_category", "create_category_failed", err)
		return
	}
	h.log.Infow("category_created", "category_id", id)
	h.redirectWithFlash(c, "/get_categories", noticeCategoryAdded)
}

func (h *Handler) editCategoryPage(c *gin.Context) {
	cat, err := h.services.Categories.Get(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		h.formFailure(c, "/get_categories", "get_category_failed", err)
		return
	}
	if cat == nil {
		h.redirectWithFlash(c, "/get_categories", noticeCategoryNotFound)
		return
	}
	h.html(c, "edit_category.html", "Edit Category", gin.H{"category": cat})
}

func (h *Handler) editCategory(c *gin.Context) {
	id := c.Param("category_id")
	var form categoryForm
	_ = c.ShouldBind(&form)

	if err := h.services.Categories.Update(c.Request.Context(), id, form.CategoryName); err != nil {
		h.formFailure(c, "/edit_category/"+id, "update_category_failed", err)
		return
	}
	h.log.Infow("category_updated", "category_id", id)
	h.redirectWithFlash(c, "/get_categories", noticeCategoryUpdated)
}
