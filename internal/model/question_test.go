package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qnaboard/internal/errors"
)

var (
	writer = &User{ID: 1, UserID: "javajigi", Name: "자바지기"}
	other  = &User{ID: 2, UserID: "sanjigi", Name: "산지기"}
)

func TestQuestion_IsOwner(t *testing.T) {
	question := &Question{ID: 10, Title: "title", Contents: "contents", AuthorID: writer.ID}

	assert.True(t, question.IsOwner(writer))
	assert.False(t, question.IsOwner(other))
	assert.False(t, question.IsOwner(nil), "anonymous callers own nothing")
}

func TestQuestion_Deletable(t *testing.T) {
	tests := []struct {
		name        string
		answers     []Answer
		caller      *User
		expectedErr error
	}{
		{
			name:        "no answers, owner deletes",
			answers:     nil,
			caller:      writer,
			expectedErr: nil,
		},
		{
			name: "only own answers, owner deletes",
			answers: []Answer{
				{ID: 1, AuthorID: writer.ID},
				{ID: 2, AuthorID: writer.ID},
			},
			caller:      writer,
			expectedErr: nil,
		},
		{
			name: "foreign answer blocks deletion",
			answers: []Answer{
				{ID: 1, AuthorID: writer.ID},
				{ID: 2, AuthorID: other.ID},
			},
			caller:      writer,
			expectedErr: errors.ErrForbiddenForeignAnswer,
		},
		{
			name:        "non-owner denied before answers are considered",
			answers:     []Answer{{ID: 1, AuthorID: other.ID}},
			caller:      other,
			expectedErr: errors.ErrForbiddenOwnership,
		},
		{
			name:        "anonymous denied",
			answers:     nil,
			caller:      nil,
			expectedErr: errors.ErrForbiddenOwnership,
		},
		{
			name: "deleted foreign answer no longer blocks",
			answers: []Answer{
				{ID: 1, AuthorID: writer.ID},
				{ID: 2, AuthorID: other.ID, Deleted: true},
			},
			caller:      writer,
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := &Question{ID: 10, AuthorID: writer.ID, Answers: tt.answers}
			err := question.Deletable(tt.caller)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestion_LiveAnswers(t *testing.T) {
	question := &Question{
		ID:       10,
		AuthorID: writer.ID,
		Answers: []Answer{
			{ID: 1, AuthorID: writer.ID},
			{ID: 2, AuthorID: other.ID, Deleted: true},
			{ID: 3, AuthorID: other.ID},
		},
	}

	live := question.LiveAnswers()
	assert.Len(t, live, 2)
	assert.Equal(t, uint(1), live[0].ID)
	assert.Equal(t, uint(3), live[1].ID, "insertion order is preserved")
}

func TestAnswer_IsOwner(t *testing.T) {
	answer := &Answer{ID: 1, AuthorID: other.ID, QuestionID: 10}

	assert.True(t, answer.IsOwner(other))
	assert.False(t, answer.IsOwner(writer))
	assert.False(t, answer.IsOwner(nil))
}

func TestResourceURIs(t *testing.T) {
	question := &Question{ID: 42}
	answer := &Answer{ID: 7, QuestionID: 42}

	assert.Equal(t, "/api/questions/42", question.ResourceURI())
	assert.Equal(t, "/api/answers/7", answer.ResourceURI())
}
