package model

import "time"

// Content types recorded in DeleteHistory.
const (
	ContentTypeQuestion = "QUESTION"
	ContentTypeAnswer   = "ANSWER"
)

// DeleteHistory is an audit row written whenever a question or answer is
// soft-deleted, in the same transaction as the deletion itself.
type DeleteHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ContentType string    `json:"content_type" gorm:"size:20;not null;index"`
	ContentID   uint      `json:"content_id" gorm:"not null;index"`
	DeletedByID uint      `json:"deleted_by_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDeleteHistory records the deletion of one piece of content by one user.
func NewDeleteHistory(contentType string, contentID uint, deletedBy *User) DeleteHistory {
	return DeleteHistory{
		ContentType: contentType,
		ContentID:   contentID,
		DeletedByID: deletedBy.ID,
	}
}
