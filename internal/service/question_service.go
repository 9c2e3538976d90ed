package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"qnaboard/internal/cache"
	"qnaboard/internal/errors"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"
)

const (
	questionCacheTTL     = 1 * time.Minute
	questionListCacheKey = "questions:list"
)

// QuestionService orchestrates question operations: it resolves what the
// caller may do, applies the deletion rule, and sequences repository calls.
// Every authorization decision is made before any mutation.
type QuestionService interface {
	List(ctx context.Context) ([]model.Question, error)
	Get(ctx context.Context, id uint) (*model.Question, error)
	Create(ctx context.Context, caller *model.User, title, contents string) (*model.Question, error)
	Update(ctx context.Context, caller *model.User, id uint, title, contents string) (*model.Question, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	cache        *cache.Client
}

// NewQuestionService builds a QuestionService with repository and cache.
func NewQuestionService(questionRepo repository.QuestionRepository, cache *cache.Client) QuestionService {
	return &questionService{questionRepo: questionRepo, cache: cache}
}

func (s *questionService) cacheKey(id uint) string {
	return fmt.Sprintf("question:%d", id)
}

func (s *questionService) List(ctx context.Context) ([]model.Question, error) {
	if data, _ := s.cache.Get(ctx, questionListCacheKey); data != nil {
		var cached []model.Question
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	questions, err := s.questionRepo.ListLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	if payload, err := json.Marshal(questions); err == nil {
		_ = s.cache.Set(ctx, questionListCacheKey, payload, questionCacheTTL)
	}
	return questions, nil
}

func (s *questionService) Get(ctx context.Context, id uint) (*model.Question, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Question
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	question, err := s.loadLive(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(question); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, questionCacheTTL)
	}
	return question, nil
}

func (s *questionService) Create(ctx context.Context, caller *model.User, title, contents string) (*model.Question, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}

	question := &model.Question{
		Title:    title,
		Contents: contents,
		AuthorID: caller.ID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	question.Author = caller

	_ = s.cache.Delete(ctx, questionListCacheKey)
	return question, nil
}

func (s *questionService) Update(ctx context.Context, caller *model.User, id uint, title, contents string) (*model.Question, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}

	question, err := s.loadLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !question.IsOwner(caller) {
		return nil, errors.ErrForbiddenOwnership
	}

	question.Title = title
	question.Contents = contents
	if err := s.questionRepo.UpdateContents(ctx, question); err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}

	s.invalidate(ctx, id)
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if caller == nil {
		return errors.ErrAuthRequired
	}

	question, err := s.loadLive(ctx, id)
	if err != nil {
		return err
	}
	if err := question.Deletable(caller); err != nil {
		return err
	}

	if err := s.questionRepo.DeleteWithAnswers(ctx, question, caller); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.invalidate(ctx, id)
	return nil
}

// loadLive fetches a question and hides deleted ones behind not-found.
func (s *questionService) loadLive(ctx context.Context, id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("load question: %w", err)
	}
	if question.Deleted {
		return nil, errors.ErrQuestionNotFound
	}
	return question, nil
}

func (s *questionService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, questionListCacheKey)
}
