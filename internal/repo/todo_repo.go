package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"todoapp/internal/model"
	appErr "todoapp/internal/pkg/errors"
)

var todoFields = []string{"id", "user_id", "task", "ctime"}

type TodoRepo struct {
	db *sqlx.DB
}

func NewTodoRepo(db *sqlx.DB) *TodoRepo {
	return &TodoRepo{db: db}
}

func (r *TodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	data := map[string]interface{}{
		"user_id": todo.UserID,
		"task":    todo.Task,
		"ctime":   todo.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("todos", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	todo.ID = id
	return nil
}

// ListByUser returns the user's todos in insertion order.
func (r *TodoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "id asc",
	}
	return r.list(ctx, where)
}

// Search filters the user's todos by case-sensitive substring containment
// on the task text. An empty query returns the full list.
func (r *TodoRepo) Search(ctx context.Context, userID int64, query string) ([]model.Todo, error) {
	if query == "" {
		return r.ListByUser(ctx, userID)
	}
	where := map[string]interface{}{
		"user_id":          userID,
		"_custom_contains": builder.Custom("instr(task, ?) > 0", query),
		"_orderby":         "id asc",
	}
	return r.list(ctx, where)
}

func (r *TodoRepo) list(ctx context.Context, where map[string]interface{}) ([]model.Todo, error) {
	sqlStr, args, err := builder.BuildSelect("todos", where, todoFields)
	if err != nil {
		return nil, err
	}
	todos := []model.Todo{}
	if err := r.db.SelectContext(ctx, &todos, sqlStr, args...); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID fetches a single todo scoped to its owner. A todo owned by a
// different user is indistinguishable from a missing one.
func (r *TodoRepo) GetByID(ctx context.Context, userID, todoID int64) (*model.Todo, error) {
	where := map[string]interface{}{
		"id":      todoID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildSelect("todos", where, todoFields)
	if err != nil {
		return nil, err
	}
	var todo model.Todo
	if err := r.db.GetContext(ctx, &todo, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepo) UpdateTask(ctx context.Context, userID, todoID int64, task string) error {
	where := map[string]interface{}{
		"id":      todoID,
		"user_id": userID,
	}
	update := map[string]interface{}{"task": task}
	sqlStr, args, err := builder.BuildUpdate("todos", where, update)
	if err != nil {
		return err
	}
	return r.execScoped(ctx, sqlStr, args)
}

func (r *TodoRepo) Delete(ctx context.Context, userID, todoID int64) error {
	where := map[string]interface{}{
		"id":      todoID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("todos", where)
	if err != nil {
		return err
	}
	return r.execScoped(ctx, sqlStr, args)
}

func (r *TodoRepo) execScoped(ctx context.Context, sqlStr string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
