package account

import "time"

// Account represents an account record in the database. The id is a
// bigserial, so ids are never reused after deletion.
type Account struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Address     string `gorm:"not null"`
	PhoneNumber string
	DateJoined  time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
