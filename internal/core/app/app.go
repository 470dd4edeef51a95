package app

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
	"github.com/google/uuid"
)

const verificationTokenTTL = 24 * time.Hour

// Repository defines the interface for data persistence operations (port).
type Repository interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error

	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// TokenService issues and validates bearer tokens (port).
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Parse(raw string) (domain.TokenClaims, error)
}

// PasswordHasher hashes and verifies passwords (port).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
}

// Mailer delivers account verification messages (port).
type Mailer interface {
	SendVerification(email, token string) error
}

// App represents the core application with all business logic.
type App struct {
	repo   Repository
	tokens TokenService
	hasher PasswordHasher
	mailer Mailer
}

// NewApp creates a new application instance.
func NewApp(repo Repository, tokens TokenService, hasher PasswordHasher, mailer Mailer) *App {
	return &App{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		mailer: mailer,
	}
}

// Signup registers a new unverified account and sends a verification mail.
func (a *App) Signup(ctx context.Context, firstName, lastName, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}

	existing, err := a.repo.UserByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	token := newVerificationToken()
	expires := time.Now().UTC().Add(verificationTokenTTL)

	user, err := a.repo.CreateUser(ctx, domain.User{
		FirstName:           firstName,
		LastName:            lastName,
		Email:               email,
		VerificationToken:   &token,
		VerificationExpires: &expires,
		CreatedAt:           time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.mailer.SendVerification(user.Email, token); err != nil {
		return nil, fmt.Errorf("failed to send verification mail: %w", err)
	}

	return user, nil
}

// SetPassword completes email verification: it sets the account password,
// marks the account verified and logs the user in.
func (a *App) SetPassword(ctx context.Context, token, password string) (*domain.User, string, error) {
	user, err := a.repo.UserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidToken
		}

		return nil, "", fmt.Errorf("failed to look up verification token: %w", err)
	}

	if len(password) < 8 {
		return nil, "", domain.ErrWeakPassword
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user.PasswordHash = hash
	user.IsEmailVerified = true
	user.VerificationToken = nil
	user.VerificationExpires = nil
	user.LastLoginAt = &now

	if err := a.repo.UpdateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to update user: %w", err)
	}

	bearer, err := a.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, bearer, nil
}

// Login authenticates a verified account and issues a bearer token.
func (a *App) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := a.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}

		return nil, "", fmt.Errorf("failed to look up email: %w", err)
	}

	if !user.IsEmailVerified {
		return nil, "", domain.ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := a.repo.UpdateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}

	bearer, err := a.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, bearer, nil
}

// ResendVerification regenerates the verification token for an unverified
// account. It succeeds silently for unknown or already-verified accounts so
// the endpoint does not reveal which emails are registered.
func (a *App) ResendVerification(ctx context.Context, email string) error {
	user, err := a.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("failed to look up email: %w", err)
	}
	if user.IsEmailVerified {
		return nil
	}

	token := newVerificationToken()
	expires := time.Now().UTC().Add(verificationTokenTTL)
	user.VerificationToken = &token
	user.VerificationExpires = &expires

	if err := a.repo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := a.mailer.SendVerification(user.Email, token); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}

	return nil
}

// UserByEmail retrieves an account by email.
func (a *App) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := a.repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ParseToken validates a bearer token and returns its claims.
func (a *App) ParseToken(raw string) (domain.TokenClaims, error) {
	return a.tokens.Parse(raw)
}

// ListTasks returns the user's active tasks, incomplete first, newest first
// within each group.
func (a *App) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	tasks, err := a.repo.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	sortTasks(tasks)

	return tasks, nil
}

// GetTask retrieves a single task owned by the user.
func (a *App) GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	task, err := a.repo.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// CreateTask creates a new incomplete task for the user.
func (a *App) CreateTask(ctx context.Context, userID int64, title string) (*domain.Task, error) {
	task, err := a.repo.CreateTask(ctx, domain.Task{
		Title:     title,
		CreatedBy: userID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update to a task owned by the user. Nil
// fields are left unchanged.
func (a *App) UpdateTask(ctx context.Context, userID, taskID int64, title *string, isComplete *bool) (*domain.Task, error) {
	task, err := a.repo.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if title != nil {
		task.Title = *title
	}
	if isComplete != nil {
		task.IsComplete = *isComplete
	}

	now := time.Now().UTC()
	task.ModifiedBy = &userID
	task.ModifiedAt = &now

	if err := a.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask soft-deletes a task owned by the user.
func (a *App) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if err := a.repo.DeleteTask(ctx, userID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func sortTasks(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].IsComplete != tasks[j].IsComplete {
			return !tasks[i].IsComplete
		}

		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}

func newVerificationToken() string {
	id := uuid.New()

	return base64.RawURLEncoding.EncodeToString(id[:])
}
