package main

import (
	"time"
)

// --- Player ---

type Player struct {
	ID          uint    `gorm:"primaryKey"`
	PublicID    string  `gorm:"uniqueIndex;size:36;not null"` // UUID stored in the cookie
	DisplayName *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- Questions ---

type Question struct {
	ID        string   `gorm:"primaryKey;size:64"`
	Text      string   `gorm:"not null"`
	Position  int      `gorm:"not null;default:0"` // catalog order
	Options   []Option `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Option struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID string `gorm:"index;not null"`
	Position   int    `gorm:"not null"` // display order
	Text       string `gorm:"not null"`
	IsCorrect  bool   `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// --- Results ---

type QuizResult struct {
	ID         string             `gorm:"primaryKey;size:36"`
	PlayerID   *uint              `gorm:"index"`
	Score      int                `gorm:"not null"`
	Total      int                `gorm:"not null"`
	Percent    float64            `gorm:"not null"`
	StartedAt  time.Time          `gorm:"not null"`
	FinishedAt time.Time          `gorm:"not null;index"`
	Answers    []QuizResultAnswer `gorm:"constraint:OnDelete:CASCADE"`
}

type QuizResultAnswer struct {
	ID           uint   `gorm:"primaryKey"`
	QuizResultID string `gorm:"index;not null"`
	Position     int    `gorm:"not null"` // 1..N
	QuestionID   string `gorm:"not null"`
	Selected     string `gorm:"not null"`
	IsCorrect    bool   `gorm:"not null"`
}
