package postgres

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone     string `gorm:"type:varchar(15);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerAccount holds a login for a customer. Only the bcrypt hash of the
// password is persisted.
type CustomerAccount struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string   `gorm:"type:varchar(100);not null"`
	CustomerID   uint     `gorm:"not null;index"`
	Customer     Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    time.Time
}
