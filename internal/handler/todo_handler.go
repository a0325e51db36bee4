package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapp/internal/middleware"
	"todoapp/internal/model"
	appErr "todoapp/internal/pkg/errors"
	"todoapp/internal/service"
)

type TodoHandler struct {
	todos *service.TodoService
	auth  *service.AuthService
}

func NewTodoHandler(todos *service.TodoService, auth *service.AuthService) *TodoHandler {
	return &TodoHandler{todos: todos, auth: auth}
}

func (h *TodoHandler) Index(c *gin.Context) {
	userID := middleware.UserID(c)
	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		// A signed cookie for a user that no longer exists behaves like
		// no session at all.
		if appErr.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		handleError(c, err)
		return
	}
	tasks, err := h.todos.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"User": user, "Tasks": tasks})
}

func (h *TodoHandler) Submit(c *gin.Context) {
	task := c.PostForm("task")
	list, err := h.todos.Create(c.Request.Context(), middleware.UserID(c), task)
	if err != nil {
		handleError(c, err)
		return
	}
	renderTaskList(c, list)
}

func (h *TodoHandler) Edit(c *gin.Context) {
	todoID, ok := taskID(c)
	if !ok {
		return
	}
	todo, err := h.todos.Get(c.Request.Context(), middleware.UserID(c), todoID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "task_edit_fragment.html", gin.H{"Todo": todo})
}

func (h *TodoHandler) Update(c *gin.Context) {
	todoID, ok := taskID(c)
	if !ok {
		return
	}
	task := c.PostForm("task")
	list, err := h.todos.Update(c.Request.Context(), middleware.UserID(c), todoID, task)
	if err != nil {
		handleError(c, err)
		return
	}
	renderTaskList(c, list)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	todoID, ok := taskID(c)
	if !ok {
		return
	}
	list, err := h.todos.Delete(c.Request.Context(), middleware.UserID(c), todoID)
	if err != nil {
		handleError(c, err)
		return
	}
	renderTaskList(c, list)
}

func (h *TodoHandler) Search(c *gin.Context) {
	list, err := h.todos.Search(c.Request.Context(), middleware.UserID(c), c.Query("q"))
	if err != nil {
		handleError(c, err)
		return
	}
	renderTaskList(c, list)
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func renderTaskList(c *gin.Context, list []model.Todo) {
	c.HTML(http.StatusOK, "task_list_fragment.html", gin.H{"Tasks": list})
}
