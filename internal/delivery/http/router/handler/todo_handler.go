package handler

import (
	"net/http"
	"strconv"
	"time"

	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/response"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TodoHandler holds dependencies for todo CRUD handlers. All routes sit
// behind the auth middleware, so the owner id always comes from the token.
type TodoHandler struct {
	uc usecase.TodoUsecase
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{uc: uc}
}

// todoRequest mirrors the column limits of the todo_items table. It serves
// both create and full-replacement update; create ignores isCompleted.
type todoRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsCompleted bool    `json:"isCompleted"`
}

type todoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

type todoPageResponse struct {
	Data            []todoResponse `json:"data"`
	TotalCount      int64          `json:"totalCount"`
	Page            int            `json:"page"`
	PageSize        int            `json:"pageSize"`
	TotalPages      int            `json:"totalPages"`
	HasNextPage     bool           `json:"hasNextPage"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
}

type todoStatsResponse struct {
	TotalTodos     int64   `json:"totalTodos"`
	CompletedTodos int64   `json:"completedTodos"`
	PendingTodos   int64   `json:"pendingTodos"`
	CompletionRate float64 `json:"completionRate"`
}

// List handles GET /todos with optional page and pageSize query parameters.
func (h *TodoHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	// Unparsable values fall back to zero and get clamped by the usecase.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	output, err := h.uc.List(c.Request().Context(), &usecase.ListTodosInput{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]todoResponse, 0, len(output.Items))
	for _, todo := range output.Items {
		items = append(items, toTodoResponse(todo))
	}

	return response.JSON(c, http.StatusOK, todoPageResponse{
		Data:            items,
		TotalCount:      output.TotalCount,
		Page:            output.Page,
		PageSize:        output.PageSize,
		TotalPages:      output.TotalPages,
		HasNextPage:     output.HasNextPage,
		HasPreviousPage: output.HasPreviousPage,
	})
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	todoID, err := parseTodoID(c)
	if err != nil {
		return err
	}

	todo, err := h.uc.Get(c.Request().Context(), userID, todoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTodoResponse(todo))
}

// Create handles POST /todos.
func (h *TodoHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid todo payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.uc.Create(c.Request().Context(), &usecase.CreateTodoInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toTodoResponse(todo))
}

// Update handles PUT /todos/:id as a full replacement.
func (h *TodoHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	todoID, err := parseTodoID(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid todo payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.uc.Update(c.Request().Context(), &usecase.UpdateTodoInput{
		UserID:      userID,
		TodoID:      todoID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTodoResponse(todo))
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	todoID, err := parseTodoID(c)
	if err != nil {
		return err
	}

	deleted, err := h.uc.Delete(c.Request().Context(), userID, todoID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return domainerrors.ErrTodoNotFound
	}

	return response.NoContent(c, http.StatusNoContent)
}

// Stats handles GET /todos/stats.
func (h *TodoHandler) Stats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	output, err := h.uc.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, todoStatsResponse{
		TotalTodos:     output.TotalTodos,
		CompletedTodos: output.CompletedTodos,
		PendingTodos:   output.PendingTodos,
		CompletionRate: output.CompletionRate,
	})
}

// parseTodoID reads the :id path parameter. A malformed id cannot match any
// row, so it reports the same not-found as a missing one.
func parseTodoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrTodoNotFound
	}

	return id, nil
}

func toTodoResponse(todo *entity.TodoItem) todoResponse {
	return todoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		IsCompleted: todo.IsCompleted,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
		CompletedAt: todo.CompletedAt,
	}
}
