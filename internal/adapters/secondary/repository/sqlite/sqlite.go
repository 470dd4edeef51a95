package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
	_ "modernc.org/sqlite"
)

// Repository implements app.Repository backed by SQLite.
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the database at path and initializes the schema.
func New(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	r := &Repository{db: db}
	if err := r.InitSchema(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return r, nil
}

// InitSchema creates the database tables if they don't exist.
func (r *Repository) InitSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL DEFAULT '',
			is_verified INTEGER NOT NULL DEFAULT 0,
			verification_token TEXT,
			verification_expires TEXT,
			created_at TEXT NOT NULL,
			last_login_at TEXT
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			is_complete INTEGER NOT NULL DEFAULT 0,
			created_by INTEGER NOT NULL,
			modified_by INTEGER,
			created_at TEXT NOT NULL,
			modified_at TEXT,
			is_deleted INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (created_by) REFERENCES users(id)
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_created_by ON tasks(created_by);
		CREATE INDEX IF NOT EXISTS idx_users_verification_token ON users(verification_token);
	`

	if _, err := r.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// CreateUser inserts a new user and returns it with its assigned ID.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users
			(first_name, last_name, email, password_hash, is_verified,
			 verification_token, verification_expires, created_at, last_login_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.IsEmailVerified, user.VerificationToken,
		formatTimePtr(user.VerificationExpires),
		user.CreatedAt.UTC().Format(time.RFC3339Nano),
		formatTimePtr(user.LastLoginAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id

	return &user, nil
}

// UserByEmail returns the user with the given email.
func (r *Repository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		userColumns+" FROM users WHERE email = ?", email))
}

// UserByVerificationToken returns the user holding an unexpired
// verification token.
func (r *Repository) UserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	return r.scanUser(r.db.QueryRowContext(ctx,
		userColumns+" FROM users WHERE verification_token = ? AND verification_expires > ?",
		token, now))
}

// UpdateUser persists all mutable user fields.
func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET
			first_name = ?, last_name = ?, email = ?, password_hash = ?,
			is_verified = ?, verification_token = ?, verification_expires = ?,
			last_login_at = ?
		 WHERE id = ?`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.IsEmailVerified, user.VerificationToken,
		formatTimePtr(user.VerificationExpires),
		formatTimePtr(user.LastLoginAt),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return requireRow(res)
}

// ListTasks returns the user's active tasks, incomplete first, newest first.
func (r *Repository) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		taskColumns+` FROM tasks
		 WHERE created_by = ? AND is_deleted = 0
		 ORDER BY is_complete ASC, created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// GetTask returns a single active task owned by the user.
func (r *Repository) GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	return scanTask(r.db.QueryRowContext(ctx,
		taskColumns+" FROM tasks WHERE id = ? AND created_by = ? AND is_deleted = 0",
		taskID, userID))
}

// CreateTask inserts a new task and returns it with its assigned ID.
func (r *Repository) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, is_complete, created_by, modified_by, created_at, modified_at, is_deleted)
		 VALUES (?, ?, ?, ?, ?, ?, 0)`,
		task.Title, task.IsComplete, task.CreatedBy, task.ModifiedBy,
		task.CreatedAt.UTC().Format(time.RFC3339Nano),
		formatTimePtr(task.ModifiedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get task id: %w", err)
	}
	task.ID = id

	return &task, nil
}

// UpdateTask persists the mutable task fields, scoped to the owner.
func (r *Repository) UpdateTask(ctx context.Context, task *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, is_complete = ?, modified_by = ?, modified_at = ?
		 WHERE id = ? AND created_by = ? AND is_deleted = 0`,
		task.Title, task.IsComplete, task.ModifiedBy, formatTimePtr(task.ModifiedAt),
		task.ID, task.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return requireRow(res)
}

// DeleteTask soft-deletes a task owned by the user. The row is kept.
func (r *Repository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET is_deleted = 1, modified_by = ?, modified_at = ?
		 WHERE id = ? AND created_by = ? AND is_deleted = 0`,
		userID, now, taskID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return requireRow(res)
}

const (
	userColumns = `SELECT id, first_name, last_name, email, password_hash,
		is_verified, verification_token, verification_expires, created_at, last_login_at`
	taskColumns = `SELECT id, title, is_complete, created_by, modified_by,
		created_at, modified_at, is_deleted`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanUser(row rowScanner) (*domain.User, error) {
	var (
		u           domain.User
		expiresStr  sql.NullString
		createdStr  string
		lastLoginAt sql.NullString
	)
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.IsEmailVerified, &u.VerificationToken, &expiresStr, &createdStr, &lastLoginAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	u.CreatedAt = parseTime(createdStr)
	u.VerificationExpires = parseTimePtr(expiresStr)
	u.LastLoginAt = parseTimePtr(lastLoginAt)

	return &u, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t           domain.Task
		createdStr  string
		modifiedStr sql.NullString
	)
	err := row.Scan(&t.ID, &t.Title, &t.IsComplete, &t.CreatedBy, &t.ModifiedBy,
		&createdStr, &modifiedStr, &t.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	t.CreatedAt = parseTime(createdStr)
	t.ModifiedAt = parseTimePtr(modifiedStr)

	return &t, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)

	return &s
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)

	return t
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t := parseTime(s.String)

	return &t
}
