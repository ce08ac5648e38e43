package models

import "time"

type Feedback struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email,omitempty"`
	Feedback  string    `json:"feedback" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
