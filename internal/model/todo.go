package model

type Todo struct {
	ID     int64  `db:"id" json:"id"`
	UserID int64  `db:"user_id" json:"user_id"`
	Task   string `db:"task" json:"task"`
	Ctime  int64  `db:"ctime" json:"ctime"`
}
