package models

import "time"

type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username  string    `json:"username" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (Review) TableName() string {
	return "reviews"
}
