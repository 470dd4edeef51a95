package mocks

import (
	"context"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of app.Repository.
type MockRepository struct {
	mock.Mock
}

// CreateUser mocks the CreateUser method.
func (m *MockRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

// UserByEmail mocks the UserByEmail method.
func (m *MockRepository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

// UserByVerificationToken mocks the UserByVerificationToken method.
func (m *MockRepository) UserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

// UpdateUser mocks the UpdateUser method.
func (m *MockRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// ListTasks mocks the ListTasks method.
func (m *MockRepository) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Task), args.Error(1)
}

// GetTask mocks the GetTask method.
func (m *MockRepository) GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Task), args.Error(1)
}

// CreateTask mocks the CreateTask method.
func (m *MockRepository) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Task), args.Error(1)
}

// UpdateTask mocks the UpdateTask method.
func (m *MockRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

// DeleteTask mocks the DeleteTask method.
func (m *MockRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	args := m.Called(ctx, userID, taskID)

	return args.Error(0)
}

// MockTokenService is a mock implementation of app.TokenService.
type MockTokenService struct {
	mock.Mock
}

// Issue mocks the Issue method.
func (m *MockTokenService) Issue(user *domain.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

// Parse mocks the Parse method.
func (m *MockTokenService) Parse(raw string) (domain.TokenClaims, error) {
	args := m.Called(raw)

	return args.Get(0).(domain.TokenClaims), args.Error(1)
}

// MockPasswordHasher is a mock implementation of app.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// Hash mocks the Hash method.
func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)

	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method.
func (m *MockPasswordHasher) Verify(plain, hash string) (bool, error) {
	args := m.Called(plain, hash)

	return args.Bool(0), args.Error(1)
}

// MockMailer is a mock implementation of app.Mailer.
type MockMailer struct {
	mock.Mock
}

// SendVerification mocks the SendVerification method.
func (m *MockMailer) SendVerification(email, token string) error {
	args := m.Called(email, token)

	return args.Error(0)
}
