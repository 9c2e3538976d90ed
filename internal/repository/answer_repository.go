package repository

import (
	"context"

	"gorm.io/gorm"

	"qnaboard/internal/model"
)

// AnswerRepository defines answer persistence operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	// UpdateContents persists contents only.
	UpdateContents(ctx context.Context, answer *model.Answer) error
	// FindByID loads an answer with its author. Deleted answers are still
	// returned; visibility is decided by the caller.
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	// SoftDelete marks the answer deleted and writes its audit row in one
	// transaction.
	SoftDelete(ctx context.Context, answer *model.Answer, deletedBy *model.User) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository builds a GORM-backed repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) UpdateContents(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ?", answer.ID).
		Update("contents", answer.Contents).Error
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) SoftDelete(ctx context.Context, answer *model.Answer, deletedBy *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Answer{}).
			Where("id = ?", answer.ID).
			Update("deleted", true).Error; err != nil {
			return err
		}
		history := model.NewDeleteHistory(model.ContentTypeAnswer, answer.ID, deletedBy)
		return tx.Create(&history).Error
	})
}
