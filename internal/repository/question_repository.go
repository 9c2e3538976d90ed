package repository

import (
	"context"

	"gorm.io/gorm"

	"qnaboard/internal/errors"
	"qnaboard/internal/model"
)

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	// UpdateContents persists title and contents only; associations loaded on
	// the struct are left untouched.
	UpdateContents(ctx context.Context, question *model.Question) error
	// FindByID loads a question with its author and live answers. Deleted
	// questions are still returned; visibility is decided by the caller.
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	// ListLive returns non-deleted questions in reverse-chronological order
	// with a stable id tiebreak.
	ListLive(ctx context.Context) ([]model.Question, error)
	// DeleteWithAnswers marks the question and all its live answers deleted
	// and writes one audit row per marked entity, all in a single
	// transaction. The foreign-answer rule is re-applied to the answers as
	// they exist inside the transaction, so a live answer by another author
	// fails the delete with ErrForbiddenForeignAnswer and nothing commits.
	DeleteWithAnswers(ctx context.Context, question *model.Question, deletedBy *model.User) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository builds a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) UpdateContents(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"title":    question.Title,
			"contents": question.Contents,
		}).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Answers", "deleted = ?", false).
		Preload("Answers.Author").
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) ListLive(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("deleted = ?", false).
		Order("created_at DESC, id DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) DeleteWithAnswers(ctx context.Context, question *model.Question, deletedBy *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Live answers are re-read inside the transaction and the
		// foreign-answer rule re-applied to that snapshot. An answer added
		// after the caller's check rolls the delete back instead of being
		// swept away silently.
		var answers []model.Answer
		if err := tx.Where("question_id = ? AND deleted = ?", question.ID, false).
			Find(&answers).Error; err != nil {
			return err
		}
		for _, a := range answers {
			if a.AuthorID != deletedBy.ID {
				return errors.ErrForbiddenForeignAnswer
			}
		}

		if err := tx.Model(&model.Question{}).
			Where("id = ?", question.ID).
			Update("deleted", true).Error; err != nil {
			return err
		}

		if len(answers) > 0 {
			if err := tx.Model(&model.Answer{}).
				Where("question_id = ? AND deleted = ?", question.ID, false).
				Update("deleted", true).Error; err != nil {
				return err
			}
		}

		histories := make([]model.DeleteHistory, 0, len(answers)+1)
		histories = append(histories, model.NewDeleteHistory(model.ContentTypeQuestion, question.ID, deletedBy))
		for _, a := range answers {
			histories = append(histories, model.NewDeleteHistory(model.ContentTypeAnswer, a.ID, deletedBy))
		}
		return tx.Create(&histories).Error
	})
}
