package model

import (
	"fmt"
	"time"
)

// Answer is a reply attached to exactly one question.
type Answer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Contents   string    `json:"contents" gorm:"type:text"`
	AuthorID   uint      `json:"-" gorm:"not null;index"`
	Author     *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Deleted    bool      `json:"deleted" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsOwner reports whether caller authored the answer.
func (a *Answer) IsOwner(caller *User) bool {
	return caller != nil && caller.ID == a.AuthorID
}

// ResourceURI is the canonical API path of the answer, used for Location
// headers.
func (a *Answer) ResourceURI() string {
	return fmt.Sprintf("/api/answers/%d", a.ID)
}
