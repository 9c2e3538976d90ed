package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"qnaboard/internal/cache"
	"qnaboard/internal/errors"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"
)

// AnswerService orchestrates answer operations.
type AnswerService interface {
	Create(ctx context.Context, caller *model.User, questionID uint, contents string) (*model.Answer, error)
	Get(ctx context.Context, id uint) (*model.Answer, error)
	Update(ctx context.Context, caller *model.User, id uint, contents string) (*model.Answer, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type answerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	cache        *cache.Client
}

// NewAnswerService builds an AnswerService.
func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository, cache *cache.Client) AnswerService {
	return &answerService{answerRepo: answerRepo, questionRepo: questionRepo, cache: cache}
}

func (s *answerService) Create(ctx context.Context, caller *model.User, questionID uint, contents string) (*model.Answer, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}

	// An answer may only attach to an existing, non-deleted question.
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("load question: %w", err)
	}
	if question.Deleted {
		return nil, errors.ErrQuestionNotFound
	}

	answer := &model.Answer{
		Contents:   contents,
		AuthorID:   caller.ID,
		QuestionID: questionID,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	answer.Author = caller

	s.invalidateQuestion(ctx, questionID)
	return answer, nil
}

func (s *answerService) Get(ctx context.Context, id uint) (*model.Answer, error) {
	return s.loadLive(ctx, id)
}

func (s *answerService) Update(ctx context.Context, caller *model.User, id uint, contents string) (*model.Answer, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}

	answer, err := s.loadLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !answer.IsOwner(caller) {
		return nil, errors.ErrForbiddenOwnership
	}

	answer.Contents = contents
	if err := s.answerRepo.UpdateContents(ctx, answer); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}

	s.invalidateQuestion(ctx, answer.QuestionID)
	return answer, nil
}

func (s *answerService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if caller == nil {
		return errors.ErrAuthRequired
	}

	answer, err := s.loadLive(ctx, id)
	if err != nil {
		return err
	}
	if !answer.IsOwner(caller) {
		return errors.ErrForbiddenOwnership
	}

	if err := s.answerRepo.SoftDelete(ctx, answer, caller); err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}

	s.invalidateQuestion(ctx, answer.QuestionID)
	return nil
}

func (s *answerService) loadLive(ctx context.Context, id uint) (*model.Answer, error) {
	answer, err := s.answerRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("load answer: %w", err)
	}
	if answer.Deleted {
		return nil, errors.ErrAnswerNotFound
	}
	return answer, nil
}

func (s *answerService) invalidateQuestion(ctx context.Context, questionID uint) {
	_ = s.cache.Delete(ctx, fmt.Sprintf("question:%d", questionID))
	_ = s.cache.Delete(ctx, questionListCacheKey)
}
