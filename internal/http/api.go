package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"listkeeper/internal/auth"
	"listkeeper/internal/domain"
	"listkeeper/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	todos  service.TodoService
	guard  *auth.Guard
	logger *logrus.Logger
}

func NewHandler(users service.UserService, todos service.TodoService, guard *auth.Guard, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		todos:  todos,
		guard:  guard,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
		}

		todos := api.Group("/todos", authRequired(h.guard, h.logger))
		{
			todos.GET("", h.listLists)
			todos.POST("", h.createList)
			todos.GET("/:id", h.getList)
			todos.GET("/:id/todos", h.listTodos)
			todos.POST("/:id/todos", h.addTodo)
			todos.PATCH("/items/:id", h.updateTodo)
		}
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createListRequest struct {
	Name string `json:"name" binding:"required"`
}

type addTodoRequest struct {
	Title string `json:"title" binding:"required"`
}

type updateTodoRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type listResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Owner     string `json:"owner"`
	CreatedAt string `json:"created_at"`
}

type todoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Checked   bool   `json:"checked"`
	RelatedTo string `json:"related_to"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) listLists(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	lists, err := h.todos.Lists(c.Request.Context(), claims.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]listResponse, len(lists))
	for i := range lists {
		resp[i] = listToResponse(lists[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createList(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	var req createListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.todos.CreateList(c.Request.Context(), claims.UserID, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listToResponse(*list))
}

func (h *Handler) getList(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	list, err := h.todos.GetList(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, listToResponse(*list))
}

func (h *Handler) listTodos(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	todos, err := h.todos.ListTodos(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]todoResponse, len(todos))
	for i := range todos {
		resp[i] = todoToResponse(todos[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) addTodo(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	var req addTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todos.AddTodo(c.Request.Context(), claims.UserID, c.Param("id"), req.Title)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todoToResponse(*todo))
}

func (h *Handler) updateTodo(c *gin.Context) {
	claims, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todos.SetTodoChecked(c.Request.Context(), claims.UserID, c.Param("id"), *req.Checked)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, todoToResponse(*todo))
}

// writeError maps service failures to responses. Authentication and
// authorization failures stay opaque: the client never learns whether a name,
// password, or resource was the wrong half.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func listToResponse(list domain.TodoList) listResponse {
	return listResponse{
		ID:        list.ID,
		Name:      list.Name,
		Owner:     list.Owner,
		CreatedAt: list.CreatedAt.Format(time.RFC3339),
	}
}

func todoToResponse(todo domain.Todo) todoResponse {
	return todoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Checked:   todo.Checked,
		RelatedTo: todo.RelatedTo,
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
	}
}
