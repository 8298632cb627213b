package model

// User is the auth stub carried over for schema parity. Nothing in this
// service reads or writes it beyond the migration.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

func (User) TableName() string { return "users" }
