package models

import "time"

type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"not null;uniqueIndex"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}

// IsValid reports whether the rating value counts toward the average.
// Out-of-range values are stored but excluded from aggregation.
func (r Rating) IsValid() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
