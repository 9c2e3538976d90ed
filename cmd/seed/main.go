package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"qnaboard/internal/auth"
	"qnaboard/internal/config"
	"qnaboard/internal/db"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"
)

type seedUser struct {
	UserID   string
	Name     string
	Email    string
	Password string
}

type seedQuestion struct {
	AuthorUserID string
	Title        string
	Contents     string
}

var users = []seedUser{
	{UserID: "javajigi", Name: "자바지기", Email: "javajigi@slipp.net", Password: "test"},
	{UserID: "sanjigi", Name: "산지기", Email: "sanjigi@slipp.net", Password: "test"},
}

var questions = []seedQuestion{
	{AuthorUserID: "javajigi", Title: "국내에서 Ruby on Rails와 Play가 활성화되기 힘든 이유는 뭘까?", Contents: "설계를 희한하게 하는 바람에..."},
	{AuthorUserID: "sanjigi", Title: "runtime 에 reflect 발동 주기", Contents: "돌아다니다가 몇 가지 궁금한 점이 생겼습니다."},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.DeleteHistory{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)

	created, skipped := 0, 0
	byUserID := make(map[string]*model.User, len(users))
	for _, u := range users {
		existing, err := userRepo.FindByUserID(ctx, u.UserID)
		if err == nil {
			byUserID[u.UserID] = existing
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up user %s: %v", u.UserID, err)
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.UserID, err)
		}
		user := &model.User{
			UserID:       u.UserID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.UserID, err)
		}
		byUserID[u.UserID] = user
		created++
	}
	log.Printf("Users: %d created, %d already present", created, skipped)

	existing, err := questionRepo.ListLive(ctx)
	if err != nil {
		log.Fatalf("Failed to list questions: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Questions already present (%d), skipping question seed", len(existing))
		log.Println("Seed completed successfully!")
		return
	}

	for _, q := range questions {
		author, ok := byUserID[q.AuthorUserID]
		if !ok {
			log.Fatalf("Unknown author %s for seed question", q.AuthorUserID)
		}
		question := &model.Question{
			Title:    q.Title,
			Contents: q.Contents,
			AuthorID: author.ID,
		}
		if err := questionRepo.Create(ctx, question); err != nil {
			log.Fatalf("Failed to create question %q: %v", q.Title, err)
		}
	}
	log.Printf("Questions: %d created", len(questions))
	log.Println("Seed completed successfully!")
}
