package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"qnaboard/internal/auth"
	"qnaboard/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUserID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, loginID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, loginID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:   "successful registration",
			userID: "javajigi",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUserID", mock.Anything, "javajigi").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "user already exists",
			userID: "sanjigi",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUserID", mock.Anything, "sanjigi").Return(&model.User{UserID: "sanjigi"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			svc := NewAuthService(mockRepo, jwtService, mockTokenStore)
			user, err := svc.Register(context.Background(), tt.userID, "name", tt.userID+"@example.com", "password123")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, user.UserID)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			userID:   "javajigi",
			password: "test",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hash, _ := auth.HashPassword("test")
				mRepo.On("FindByUserID", mock.Anything, "javajigi").Return(&model.User{
					ID:           1,
					UserID:       "javajigi",
					PasswordHash: hash,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "javajigi", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown user",
			userID:   "nobody",
			password: "test",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUserID", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			userID:   "javajigi",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hash, _ := auth.HashPassword("test")
				mRepo.On("FindByUserID", mock.Anything, "javajigi").Return(&model.User{
					ID:           1,
					UserID:       "javajigi",
					PasswordHash: hash,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.userID, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, tt.userID, user.UserID)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "javajigi")
		assert.NoError(t, err)

		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "javajigi", nil)

		svc := NewAuthService(mockRepo, jwtService, mockTokenStore)
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("revoked refresh token is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "javajigi")
		assert.NoError(t, err)

		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		svc := NewAuthService(mockRepo, jwtService, mockTokenStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)

		svc := NewAuthService(mockRepo, jwtService, mockTokenStore)
		_, err := svc.RefreshToken(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
