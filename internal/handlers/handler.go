package handlers

import (
	"embed"
	"html/template"

	"task_manager/internal/logger"
	"task_manager/internal/service"
	"task_manager/internal/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	store    sessions.Store
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, store sessions.Store) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log, store: store}
}

// parseTemplates loads every page from the embedded templates directory.
func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*.html")
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	// websocket frames must not go through the gzip writer
	router.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/ws/"}),
	))
	router.Use(session.Middleware(h.store))
	router.SetHTMLTemplate(template.Must(parseTemplates()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Server-rendered pages
	h.registerPageRoutes(router)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live task feed
	router.GET("/ws/tasks", h.wsConnect)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.getTasks)
	r.GET("/get_tasks", h.getTasks)
	r.GET("/get_categories", h.getCategories)

	r.GET("/register", h.registerPage)
	r.POST("/register", h.register)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
	r.GET("/profile/:username", h.profile)

	member := r.Group("/", h.requireLogin)
	{
		member.GET("/add_task", h.addTaskPage)
		member.POST("/add_task", h.addTask)
		member.GET("/edit_task/:task_id", h.editTaskPage)
		member.POST("/edit_task/:task_id", h.editTask)
		member.GET("/delete_task/:task_id", h.deleteTask)

		member.GET("/add_category", h.addCategoryPage)
		member.POST("/add_category", h.addCategory)
		member.GET("/edit_category/:category_id", h.editCategoryPage)
		member.POST("/edit_category/:category_id", h.editCategory)
	}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdentity)
	{
		h.registerTaskRoutes(api)
		h.registerCategoryRoutes(api)
	}
}

func (h *Handler) registerTaskRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTaskAPI)
	}
}

func (h *Handler) registerCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
	}
}
