package service

import (
	"context"
	"strings"

	"todoapp/internal/model"
	"todoapp/internal/pkg/timeutil"
	"todoapp/internal/repo"
)

// TodoService executes list operations scoped to the authenticated user.
// Every mutation re-reads the full list afterwards; lists are expected to
// stay small, so simplicity wins over saving a round trip.
type TodoService struct {
	todos *repo.TodoRepo
}

func NewTodoService(todos *repo.TodoRepo) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]model.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

func (s *TodoService) Get(ctx context.Context, userID, todoID int64) (*model.Todo, error) {
	return s.todos.GetByID(ctx, userID, todoID)
}

func (s *TodoService) Create(ctx context.Context, userID int64, task string) ([]model.Todo, error) {
	todo := &model.Todo{
		UserID: userID,
		Task:   task,
		Ctime:  timeutil.NowUnix(),
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return s.todos.ListByUser(ctx, userID)
}

// Update rewrites the task text of an owned todo. A todo belonging to a
// different user yields ErrNotFound.
func (s *TodoService) Update(ctx context.Context, userID, todoID int64, task string) ([]model.Todo, error) {
	if err := s.todos.UpdateTask(ctx, userID, todoID, task); err != nil {
		return nil, err
	}
	return s.todos.ListByUser(ctx, userID)
}

func (s *TodoService) Delete(ctx context.Context, userID, todoID int64) ([]model.Todo, error) {
	if err := s.todos.Delete(ctx, userID, todoID); err != nil {
		return nil, err
	}
	return s.todos.ListByUser(ctx, userID)
}

// Search matches the trimmed query as a substring of the task text; an
// empty query returns the unfiltered list.
func (s *TodoService) Search(ctx context.Context, userID int64, query string) ([]model.Todo, error) {
	return s.todos.Search(ctx, userID, strings.TrimSpace(query))
}
