package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string `gorm:"type:varchar(255)"`
	Bio          string `gorm:"type:text"`
}

type AuthToken struct {
	Key       string `gorm:"primaryKey;size:64"`
	UserID    string `gorm:"uniqueIndex;not null"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type Book struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          string    `gorm:"index;not null"`
	User            User      `gorm:"constraint:OnDelete:CASCADE"`
	Title           string    `gorm:"size:250;not null"`
	Author          string    `gorm:"size:250"`
	ISBN            string    `gorm:"size:100"`
	PublicationDate time.Time `gorm:"not null"`
}
