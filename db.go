package main

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Player{},
		&Question{},
		&Option{},
		&QuizResult{},
		&QuizResultAnswer{},
	)
}

func IsQuestionTableEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&Question{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// LoadCatalog reads the whole question catalog in catalog order.
func LoadCatalog(db *gorm.DB) ([]QuizQuestion, error) {
	var qs []Question
	err := db.Preload("Options", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	}).Order("position, id").Find(&qs).Error
	if err != nil {
		return nil, err
	}

	out := make([]QuizQuestion, 0, len(qs))
	for _, q := range qs {
		qq := QuizQuestion{ID: q.ID, Prompt: q.Text, Options: make([]string, 0, len(q.Options))}
		for _, o := range q.Options {
			qq.Options = append(qq.Options, o.Text)
			if o.IsCorrect {
				qq.Answer = o.Text
			}
		}
		if err := qq.Validate(); err != nil {
			return nil, err
		}
		out = append(out, qq)
	}
	return out, nil
}
