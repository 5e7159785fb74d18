package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todolist-api/internal/config"
	"github.com/yukikurage/todolist-api/internal/handlers"
	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	cfg := &config.Config{
		Environment:  config.EnvTest,
		FrontendURL:  "http://localhost:3000",
		JWTSecret:    "test-secret",
		JWTExpiresIn: time.Hour,
		BCryptCost:   bcrypt.MinCost,
	}
	srv := httptest.NewServer(handlers.NewRouter(cfg, testutil.DiscardLogger(), repository.NewUserRepository(db), repository.NewTaskRepository(db)))
	t.Cleanup(srv.Close)
	return srv
}

type StoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	server *httptest.Server
	client *Client
	auth   *AuthStore
	tasks  *TaskStore
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = newTestServer(s.T())
	s.client = New(s.server.URL)
	s.auth = NewAuthStore(s.client)
	s.tasks = NewTaskStore(s.client)

	s.Require().NoError(s.auth.Register(s.ctx, RegisterData{Name: "Ana", Email: "ana@example.com", Password: "secret"}))
}

func (s *StoreTestSuite) TestRegisterSignsIn() {
	state := s.auth.State()
	s.True(state.IsAuthenticated)
	s.False(state.IsLoading)
	s.Equal("Ana", state.User.Name)
	s.NotEmpty(s.client.Token())
}

func (s *StoreTestSuite) TestLoginFailureLeavesStateSignedOut() {
	other := NewAuthStore(New(s.server.URL))

	err := other.Login(s.ctx, LoginData{Email: "ana@example.com", Password: "wrong-password"})

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusUnauthorized, apiErr.StatusCode)
	s.Equal("Invalid credentials", apiErr.Message)
	s.False(other.State().IsAuthenticated)
	s.False(other.State().IsLoading)
}

func (s *StoreTestSuite) TestInitWithStoredToken() {
	restored := NewAuthStore(New(s.server.URL, WithToken(s.client.Token())))
	s.Require().NoError(restored.Init(s.ctx))
	s.Equal("ana@example.com", restored.State().User.Email)

	anonymous := NewAuthStore(New(s.server.URL))
	s.Require().NoError(anonymous.Init(s.ctx))
	s.False(anonymous.State().IsLoading)
	s.False(anonymous.State().IsAuthenticated)
}

func (s *StoreTestSuite) TestInitWithRejectedTokenLogsOut() {
	c := New(s.server.URL, WithToken("stale.token.value"))
	store := NewAuthStore(c)

	err := store.Init(s.ctx)

	s.Error(err)
	s.Empty(c.Token())
	s.Equal(AuthState{}, store.State())
}

func (s *StoreTestSuite) TestRefreshKeepsSessionOnTransientFailure() {
	unavailable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer unavailable.Close()

	token := s.client.Token()
	signedIn := s.auth.State()
	c := New(unavailable.URL, WithToken(token))
	store := NewAuthStore(c)
	store.dispatch(SetUser{User: signedIn.User})

	err := store.Refresh(s.ctx)

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusServiceUnavailable, apiErr.StatusCode)
	s.Equal(token, c.Token())
	s.True(store.State().IsAuthenticated)
	s.Equal(signedIn.User, store.State().User)
}

func (s *StoreTestSuite) TestInitKeepsTokenWhenServerUnreachable() {
	down := httptest.NewServer(http.NotFoundHandler())
	down.Close()

	c := New(down.URL, WithToken(s.client.Token()))
	store := NewAuthStore(c)

	err := store.Init(s.ctx)

	s.Error(err)
	var apiErr *APIError
	s.False(errors.As(err, &apiErr))
	s.Equal(s.client.Token(), c.Token())
	s.False(store.State().IsLoading)
	s.False(store.State().IsAuthenticated)
}

func (s *StoreTestSuite) TestLogout() {
	s.auth.Logout()

	s.Empty(s.client.Token())
	s.False(s.auth.State().IsAuthenticated)

	err := s.tasks.Load(s.ctx, TaskFilters{})
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusUnauthorized, apiErr.StatusCode)
}

func (s *StoreTestSuite) TestCreateUpdateDelete() {
	s.Require().NoError(s.tasks.Load(s.ctx, TaskFilters{}))
	s.Empty(s.tasks.State().Tasks)

	first, err := s.tasks.Create(s.ctx, CreateTaskData{Title: "First"})
	s.Require().NoError(err)
	second, err := s.tasks.Create(s.ctx, CreateTaskData{Title: "Second", Priority: models.TaskPriorityHigh})
	s.Require().NoError(err)
	s.Equal([]string{second.ID, first.ID}, ids(s.tasks.State().Tasks))

	title := "First, renamed"
	_, err = s.tasks.Update(s.ctx, first.ID, UpdateTaskData{Title: &title})
	s.Require().NoError(err)
	s.Equal(title, s.tasks.State().Tasks[1].Title)

	s.Require().NoError(s.tasks.Delete(s.ctx, second.ID))
	s.Equal([]string{first.ID}, ids(s.tasks.State().Tasks))
}

func (s *StoreTestSuite) TestFailedCallLeavesStateUnchanged() {
	task, err := s.tasks.Create(s.ctx, CreateTaskData{Title: "Keep"})
	s.Require().NoError(err)
	before := s.tasks.State()

	blank := ""
	_, err = s.tasks.Update(s.ctx, task.ID, UpdateTaskData{Title: &blank})
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadRequest, apiErr.StatusCode)
	s.Equal("title cannot be empty", apiErr.Message)

	err = s.tasks.Delete(s.ctx, "not-an-id")
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("Invalid task id", apiErr.Message)

	s.Equal(before, s.tasks.State())
}

func (s *StoreTestSuite) TestToggleStatus() {
	task, err := s.tasks.Create(s.ctx, CreateTaskData{Title: "Flip"})
	s.Require().NoError(err)

	toggled, err := s.tasks.ToggleStatus(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(models.TaskStatusDone, toggled.Status)

	toggled, err = s.tasks.ToggleStatus(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(models.TaskStatusPending, toggled.Status)

	_, err = s.tasks.ToggleStatus(s.ctx, "unknown")
	s.ErrorIs(err, ErrTaskNotLoaded)
}

func (s *StoreTestSuite) TestDeleteCompletedReloadsWithStoredFilters() {
	for _, title := range []string{"milk", "bread", "milk again"} {
		_, err := s.tasks.Create(s.ctx, CreateTaskData{Title: title})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.tasks.Load(s.ctx, TaskFilters{}))
	_, err := s.tasks.ToggleStatus(s.ctx, s.tasks.State().Tasks[0].ID)
	s.Require().NoError(err)

	s.tasks.SetFilters(TaskFilters{Search: "milk"})
	count, err := s.tasks.DeleteCompleted(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	state := s.tasks.State()
	s.Require().Len(state.Tasks, 1)
	s.Equal("milk", state.Tasks[0].Title)
	s.Equal(int64(1), state.Pagination.Total)

	count, err = s.tasks.DeleteCompleted(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StoreTestSuite) TestLoadAppliesFiltersAndPagination() {
	for i := 0; i < 12; i++ {
		_, err := s.tasks.Create(s.ctx, CreateTaskData{Title: "task"})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.tasks.Load(s.ctx, TaskFilters{Page: 2, Limit: 5}))
	state := s.tasks.State()
	s.Len(state.Tasks, 5)
	s.Equal(2, state.Pagination.Page)
	s.Equal(3, state.Pagination.Pages)
	s.Equal(int64(12), state.Pagination.Total)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestClient_NonEnvelopeResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).Me(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
