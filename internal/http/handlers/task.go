package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time      `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string                    `json:"title"`
	Description domain.Optional[string]    `json:"description"`
	Completed   *bool                      `json:"completed"`
	Priority    *domain.Priority           `json:"priority"`
	DueDate     domain.Optional[time.Time] `json:"due_date"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "title is required and priority must be low, medium or high")
		return
	}

	if req.Priority == "" {
		req.Priority = domain.PriorityMedium
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var f domain.TaskFilter
	if v, present := c.GetQuery("completed"); present {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondValidation(c, "completed must be a boolean")
			return
		}
		f.Completed = &b
	}
	if v, present := c.GetQuery("priority"); present {
		p := domain.Priority(v)
		if !p.Valid() {
			respondValidation(c, "priority must be low, medium or high")
			return
		}
		f.Priority = &p
	}
	f.Search = c.Query("search")

	tasks, err := h.Tasks.List(c.Request.Context(), userID, f)
	if err != nil {
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidation(c, "task id must be numeric")
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "malformed task update")
		return
	}
	if req.Title != nil && *req.Title == "" {
		respondValidation(c, "title must not be empty")
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		respondValidation(c, "priority must be low, medium or high")
		return
	}

	upd := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, userID, upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask reports success rather than failing when nothing matched,
// so a foreign or absent id is indistinguishable from the caller's side.
func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidation(c, "task id must be numeric")
		return
	}

	deleted, err := h.Tasks.Delete(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": deleted})
}
