package ascii

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
)

//go:embed tasks.tmpl
var tasksTemplate string

// TaskListData holds data for the task list template.
type TaskListData struct {
	User      *domain.User
	Tasks     []domain.Task
	Timestamp time.Time
}

// FormatTasks renders a user's active task list as plain text.
func FormatTasks(user *domain.User, tasks []domain.Task) (string, error) {
	tmpl, err := template.New("tasks").Parse(tasksTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, TaskListData{
		User:      user,
		Tasks:     tasks,
		Timestamp: time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
