package models

import "time"

type Query struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email,omitempty"`
	Query     string    `json:"query" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Query) TableName() string {
	return "queries"
}
