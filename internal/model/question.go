package model

import (
	"fmt"
	"time"

	"qnaboard/internal/errors"
)

// Question is a top-level forum post. Deletion is logical: the row stays in
// storage with Deleted set, and listings/detail exclude it.
type Question struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Contents  string    `json:"contents" gorm:"type:text"`
	AuthorID  uint      `json:"-" gorm:"not null;index"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Answers   []Answer  `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	Deleted   bool      `json:"deleted" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwner reports whether caller authored the question. Anonymous callers
// (nil) never own anything.
func (q *Question) IsOwner(caller *User) bool {
	return caller != nil && caller.ID == q.AuthorID
}

// LiveAnswers returns the answers that have not been deleted, in insertion
// order.
func (q *Question) LiveAnswers() []Answer {
	live := make([]Answer, 0, len(q.Answers))
	for _, a := range q.Answers {
		if !a.Deleted {
			live = append(live, a)
		}
	}
	return live
}

// Deletable decides whether caller may delete the question as a whole.
// The caller must be the author, and every live answer must be the caller's
// own: deleting a question must never silently remove another user's content.
// Zero answers is trivially deletable. Returns nil on permit, otherwise the
// specific denial error.
func (q *Question) Deletable(caller *User) error {
	if !q.IsOwner(caller) {
		return errors.ErrForbiddenOwnership
	}
	for _, a := range q.LiveAnswers() {
		if !a.IsOwner(caller) {
			return errors.ErrForbiddenForeignAnswer
		}
	}
	return nil
}

// ResourceURI is the canonical API path of the question, used for Location
// headers.
func (q *Question) ResourceURI() string {
	return fmt.Sprintf("/api/questions/%d", q.ID)
}
