package model

type User struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	UserName     string `db:"user_name" json:"user_name"`
	Ctime        int64  `db:"ctime" json:"ctime"`
}
