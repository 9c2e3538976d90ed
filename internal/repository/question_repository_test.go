package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qnaboard/internal/errors"
	"qnaboard/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Question{}, &model.Answer{}, &model.DeleteHistory{}))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB) (writer, other *model.User) {
	t.Helper()
	writer = &model.User{UserID: "javajigi", Name: "자바지기", Email: "javajigi@slipp.net", PasswordHash: "irrelevant"}
	other = &model.User{UserID: "sanjigi", Name: "산지기", Email: "sanjigi@slipp.net", PasswordHash: "irrelevant"}
	require.NoError(t, db.Create(writer).Error)
	require.NoError(t, db.Create(other).Error)
	return writer, other
}

func TestQuestionRepository_DeleteWithAnswers(t *testing.T) {
	t.Run("question and own answers are marked deleted with audit rows", func(t *testing.T) {
		db := newTestDB(t)
		writer, _ := seedUsers(t, db)
		repo := NewQuestionRepository(db)

		question := &model.Question{Title: "title", Contents: "contents", AuthorID: writer.ID}
		require.NoError(t, db.Create(question).Error)
		answers := []model.Answer{
			{Contents: "first", AuthorID: writer.ID, QuestionID: question.ID},
			{Contents: "second", AuthorID: writer.ID, QuestionID: question.ID},
		}
		require.NoError(t, db.Create(&answers).Error)

		err := repo.DeleteWithAnswers(context.Background(), question, writer)
		assert.NoError(t, err)

		var reloaded model.Question
		require.NoError(t, db.First(&reloaded, question.ID).Error)
		assert.True(t, reloaded.Deleted)

		var liveAnswers int64
		require.NoError(t, db.Model(&model.Answer{}).
			Where("question_id = ? AND deleted = ?", question.ID, false).
			Count(&liveAnswers).Error)
		assert.Zero(t, liveAnswers)

		var histories []model.DeleteHistory
		require.NoError(t, db.Find(&histories).Error)
		assert.Len(t, histories, 3)
		types := map[string]int{}
		for _, h := range histories {
			types[h.ContentType]++
			assert.Equal(t, writer.ID, h.DeletedByID)
		}
		assert.Equal(t, 1, types[model.ContentTypeQuestion])
		assert.Equal(t, 2, types[model.ContentTypeAnswer])
	})

	t.Run("foreign answer added after the load rolls the delete back", func(t *testing.T) {
		db := newTestDB(t)
		writer, other := seedUsers(t, db)
		repo := NewQuestionRepository(db)

		question := &model.Question{Title: "title", Contents: "contents", AuthorID: writer.ID}
		require.NoError(t, db.Create(question).Error)

		loaded, err := repo.FindByID(context.Background(), question.ID)
		require.NoError(t, err)
		assert.Empty(t, loaded.LiveAnswers())

		// Another user answers between the caller's check and the delete.
		foreign := &model.Answer{Contents: "late answer", AuthorID: other.ID, QuestionID: question.ID}
		require.NoError(t, db.Create(foreign).Error)

		err = repo.DeleteWithAnswers(context.Background(), loaded, writer)
		assert.ErrorIs(t, err, errors.ErrForbiddenForeignAnswer)

		var reloaded model.Question
		require.NoError(t, db.First(&reloaded, question.ID).Error)
		assert.False(t, reloaded.Deleted)

		var reloadedAnswer model.Answer
		require.NoError(t, db.First(&reloadedAnswer, foreign.ID).Error)
		assert.False(t, reloadedAnswer.Deleted)

		var histories int64
		require.NoError(t, db.Model(&model.DeleteHistory{}).Count(&histories).Error)
		assert.Zero(t, histories)
	})

	t.Run("already deleted foreign answer does not block", func(t *testing.T) {
		db := newTestDB(t)
		writer, other := seedUsers(t, db)
		repo := NewQuestionRepository(db)

		question := &model.Question{Title: "title", Contents: "contents", AuthorID: writer.ID}
		require.NoError(t, db.Create(question).Error)
		gone := &model.Answer{Contents: "withdrawn", AuthorID: other.ID, QuestionID: question.ID, Deleted: true}
		require.NoError(t, db.Create(gone).Error)

		err := repo.DeleteWithAnswers(context.Background(), question, writer)
		assert.NoError(t, err)

		var histories []model.DeleteHistory
		require.NoError(t, db.Find(&histories).Error)
		assert.Len(t, histories, 1)
		assert.Equal(t, model.ContentTypeQuestion, histories[0].ContentType)
	})
}

func TestQuestionRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	writer, other := seedUsers(t, db)
	repo := NewQuestionRepository(db)

	question := &model.Question{Title: "title", Contents: "contents", AuthorID: writer.ID}
	require.NoError(t, db.Create(question).Error)
	answers := []model.Answer{
		{Contents: "live", AuthorID: other.ID, QuestionID: question.ID},
		{Contents: "withdrawn", AuthorID: other.ID, QuestionID: question.ID, Deleted: true},
	}
	require.NoError(t, db.Create(&answers).Error)

	loaded, err := repo.FindByID(context.Background(), question.ID)

	assert.NoError(t, err)
	assert.Equal(t, writer.ID, loaded.Author.ID)
	assert.Len(t, loaded.Answers, 1)
	assert.Equal(t, "live", loaded.Answers[0].Contents)
	assert.Equal(t, other.ID, loaded.Answers[0].Author.ID)
}
