package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/repository/mocks"
	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/token"
	"github.com/FrancisEgan/TodoApp/internal/core/app"
	"github.com/FrancisEgan/TodoApp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	server *Server
	repo   *mocks.MockRepository
	hasher *mocks.MockPasswordHasher
	mailer *mocks.MockMailer
	bearer string
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	repo := &mocks.MockRepository{}
	hasher := &mocks.MockPasswordHasher{}
	mailer := &mocks.MockMailer{}
	tokens := token.New("test-secret", "todoapp", time.Hour)

	appInstance := app.NewApp(repo, tokens, hasher, mailer)

	bearer, err := tokens.Issue(&domain.User{ID: 7, Email: "jane@example.com"})
	require.NoError(t, err)

	return &serverFixture{
		server: NewServer(":0", appInstance),
		repo:   repo,
		hasher: hasher,
		mailer: mailer,
		bearer: bearer,
	}
}

func (f *serverFixture) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	f.server.server.Handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_TaskRoutes_RequireAuth(t *testing.T) {
	f := newServerFixture(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/tasks"},
		{http.MethodGet, "/tasks/1"},
		{http.MethodPost, "/tasks"},
		{http.MethodPut, "/tasks/1"},
		{http.MethodDelete, "/tasks/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := f.do(tt.method, tt.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = f.do(tt.method, tt.path, "", "not-a-valid-token")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestServer_ListTasks(t *testing.T) {
	f := newServerFixture(t)

	f.repo.On("ListTasks", mock.Anything, int64(7)).Return([]domain.Task{
		{ID: 1, Title: "Buy milk", CreatedBy: 7},
	}, nil)

	rec := f.do(http.MethodGet, "/tasks", "", f.bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
}

func TestServer_GetTask(t *testing.T) {
	f := newServerFixture(t)

	f.repo.On("GetTask", mock.Anything, int64(7), int64(1)).
		Return(&domain.Task{ID: 1, Title: "Buy milk", CreatedBy: 7}, nil)
	f.repo.On("GetTask", mock.Anything, int64(7), int64(9)).
		Return(nil, domain.ErrNotFound)

	rec := f.do(http.MethodGet, "/tasks/1", "", f.bearer)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/tasks/9", "", f.bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/tasks/abc", "", f.bearer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateTask(t *testing.T) {
	f := newServerFixture(t)

	f.repo.On("CreateTask", mock.Anything, mock.AnythingOfType("domain.Task")).
		Return(&domain.Task{ID: 5, Title: "Walk dog", CreatedBy: 7}, nil)

	rec := f.do(http.MethodPost, "/tasks", `{"title":"Walk dog"}`, f.bearer)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/tasks/5", rec.Header().Get("Location"))

	var task domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, int64(5), task.ID)
}

func TestServer_UpdateTask(t *testing.T) {
	f := newServerFixture(t)

	f.repo.On("GetTask", mock.Anything, int64(7), int64(1)).
		Return(&domain.Task{ID: 1, Title: "Buy milk", CreatedBy: 7}, nil)
	f.repo.On("UpdateTask", mock.Anything, mock.AnythingOfType("*domain.Task")).
		Return(nil)
	f.repo.On("GetTask", mock.Anything, int64(7), int64(9)).
		Return(nil, domain.ErrNotFound)

	rec := f.do(http.MethodPut, "/tasks/1", `{"isComplete":true}`, f.bearer)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPut, "/tasks/9", `{"isComplete":true}`, f.bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_DeleteTask(t *testing.T) {
	f := newServerFixture(t)

	f.repo.On("DeleteTask", mock.Anything, int64(7), int64(1)).Return(nil)
	f.repo.On("DeleteTask", mock.Anything, int64(7), int64(9)).Return(domain.ErrNotFound)

	rec := f.do(http.MethodDelete, "/tasks/1", "", f.bearer)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodDelete, "/tasks/9", "", f.bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Signup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newServerFixture(t)
		f.repo.On("UserByEmail", mock.Anything, "jane@example.com").
			Return(nil, domain.ErrNotFound)
		f.repo.On("CreateUser", mock.Anything, mock.AnythingOfType("domain.User")).
			Return(&domain.User{ID: 7, Email: "jane@example.com"}, nil)
		f.mailer.On("SendVerification", "jane@example.com", mock.AnythingOfType("string")).
			Return(nil)

		rec := f.do(http.MethodPost, "/auth/signup",
			`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newServerFixture(t)
		f.repo.On("UserByEmail", mock.Anything, "jane@example.com").
			Return(&domain.User{ID: 7}, nil)

		rec := f.do(http.MethodPost, "/auth/signup",
			`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPost, "/auth/signup", `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_SetPassword(t *testing.T) {
	t.Run("success returns bearer token", func(t *testing.T) {
		f := newServerFixture(t)
		tok := "tok"
		f.repo.On("UserByVerificationToken", mock.Anything, "tok").
			Return(&domain.User{ID: 7, Email: "jane@example.com", VerificationToken: &tok}, nil)
		f.hasher.On("Hash", "correct horse").Return("$argon2id$hash", nil)
		f.repo.On("UpdateUser", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		rec := f.do(http.MethodPost, "/auth/set-password",
			`{"token":"tok","password":"correct horse"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(7), resp.UserID)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newServerFixture(t)
		f.repo.On("UserByVerificationToken", mock.Anything, "bad").
			Return(nil, domain.ErrNotFound)

		rec := f.do(http.MethodPost, "/auth/set-password",
			`{"token":"bad","password":"correct horse"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Login(t *testing.T) {
	t.Run("wrong credentials", func(t *testing.T) {
		f := newServerFixture(t)
		f.repo.On("UserByEmail", mock.Anything, "jane@example.com").
			Return(nil, domain.ErrNotFound)

		rec := f.do(http.MethodPost, "/auth/login",
			`{"email":"jane@example.com","password":"pw"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		f := newServerFixture(t)
		f.repo.On("UserByEmail", mock.Anything, "jane@example.com").
			Return(&domain.User{
				ID:              7,
				Email:           "jane@example.com",
				PasswordHash:    "$argon2id$hash",
				IsEmailVerified: true,
			}, nil)
		f.hasher.On("Verify", "pw", "$argon2id$hash").Return(true, nil)
		f.repo.On("UpdateUser", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		rec := f.do(http.MethodPost, "/auth/login",
			`{"email":"jane@example.com","password":"pw"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})
}

func TestServer_ResendVerification_NeutralReply(t *testing.T) {
	f := newServerFixture(t)
	f.repo.On("UserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, domain.ErrNotFound)

	rec := f.do(http.MethodPost, "/auth/resend-verification?email=nobody@example.com", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "If the email exists")
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"missing scheme", "abc.def.ghi", ""},
		{"empty", "", ""},
		{"scheme only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractBearer(tt.header))
		})
	}
}
