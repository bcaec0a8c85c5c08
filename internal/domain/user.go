package domain

// User is an admin account. Uniqueness of Username is a storage
// constraint, not pre-checked by callers.
type User struct {
	ID       uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"password" gorm:"not null"`
}

type InsertUser struct {
	Username string
	Password string
}
