package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/yukikurage/todolist-api/internal/dto"
)

// ErrTaskNotLoaded is returned by TaskStore.ToggleStatus for a task that is
// not part of the loaded page.
var ErrTaskNotLoaded = errors.New("task is not loaded")

// AuthStore applies auth actions after the server confirms each call.
type AuthStore struct {
	client *Client

	mu    sync.RWMutex
	state AuthState
}

func NewAuthStore(c *Client) *AuthStore {
	return &AuthStore{client: c, state: InitialAuthState()}
}

// State returns a snapshot of the current state.
func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *AuthStore) dispatch(action AuthAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = ReduceAuth(s.state, action)
}

// Init resolves the user of a stored token, if any. A rejected token signs
// the client out.
func (s *AuthStore) Init(ctx context.Context) error {
	if s.client.Token() == "" {
		s.dispatch(SetAuthLoading{Loading: false})
		return nil
	}
	return s.Refresh(ctx)
}

// Refresh reloads the current user. Only a rejected token signs the client
// out; any other failure keeps the current user and token.
func (s *AuthStore) Refresh(ctx context.Context) error {
	user, err := s.client.Me(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			s.Logout()
		} else {
			s.dispatch(SetAuthLoading{Loading: false})
		}
		return err
	}
	s.dispatch(SetUser{User: user})
	return nil
}

func (s *AuthStore) Login(ctx context.Context, data LoginData) error {
	return s.authenticate(func() (*dto.AuthResponse, error) {
		return s.client.Login(ctx, data)
	})
}

func (s *AuthStore) Register(ctx context.Context, data RegisterData) error {
	return s.authenticate(func() (*dto.AuthResponse, error) {
		return s.client.Register(ctx, data)
	})
}

func (s *AuthStore) authenticate(call func() (*dto.AuthResponse, error)) error {
	s.dispatch(SetAuthLoading{Loading: true})
	resp, err := call()
	if err != nil {
		s.dispatch(SetAuthLoading{Loading: false})
		return err
	}
	user := resp.User
	s.dispatch(SetUser{User: &user})
	return nil
}

func (s *AuthStore) Logout() {
	s.client.Logout()
	s.dispatch(Logout{})
}

// TaskStore keeps one page of tasks. Local state changes only after the
// server accepted the corresponding call.
type TaskStore struct {
	client *Client

	mu    sync.RWMutex
	state TaskState
}

func NewTaskStore(c *Client) *TaskStore {
	return &TaskStore{client: c, state: InitialTaskState()}
}

// State returns a snapshot of the current state.
func (s *TaskStore) State() TaskState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *TaskStore) dispatch(action TaskAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = ReduceTasks(s.state, action)
}

// Load fetches a page using the stored filters overridden by filters.
func (s *TaskStore) Load(ctx context.Context, filters TaskFilters) error {
	merged := s.State().Filters.Merge(filters)

	s.dispatch(SetTasksLoading{Loading: true})
	page, err := s.client.ListTasks(ctx, merged)
	if err != nil {
		s.dispatch(SetTasksLoading{Loading: false})
		return err
	}
	s.dispatch(SetTasks{Page: *page})
	return nil
}

// SetFilters replaces the stored filters without loading.
func (s *TaskStore) SetFilters(filters TaskFilters) {
	s.dispatch(SetFilters{Filters: filters})
}

func (s *TaskStore) Create(ctx context.Context, data CreateTaskData) (*dto.TaskDTO, error) {
	task, err := s.client.CreateTask(ctx, data)
	if err != nil {
		return nil, err
	}
	s.dispatch(AddTask{Task: *task})
	return task, nil
}

func (s *TaskStore) Update(ctx context.Context, id string, data UpdateTaskData) (*dto.TaskDTO, error) {
	task, err := s.client.UpdateTask(ctx, id, data)
	if err != nil {
		return nil, err
	}
	s.dispatch(UpdateTask{Task: *task})
	return task, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.dispatch(DeleteTask{ID: id})
	return nil
}

// ToggleStatus flips a loaded task between pending and done.
func (s *TaskStore) ToggleStatus(ctx context.Context, id string) (*dto.TaskDTO, error) {
	var current *dto.TaskDTO
	for _, task := range s.State().Tasks {
		if task.ID == id {
			current = &task
			break
		}
	}
	if current == nil {
		return nil, ErrTaskNotLoaded
	}

	next := current.Status.Toggle()
	return s.Update(ctx, id, UpdateTaskData{Status: &next})
}

// DeleteCompleted removes every done task, then reloads the page with the
// stored filters.
func (s *TaskStore) DeleteCompleted(ctx context.Context) (int64, error) {
	count, err := s.client.DeleteCompletedTasks(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.Load(ctx, TaskFilters{}); err != nil {
		return count, err
	}
	return count, nil
}
