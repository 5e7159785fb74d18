package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yukikurage/todolist-api/internal/dto"
	"github.com/yukikurage/todolist-api/internal/models"
)

// TaskFilters are the list query parameters. Zero values are not sent.
type TaskFilters struct {
	Status   models.TaskStatus
	Priority models.TaskPriority
	Search   string
	Page     int
	Limit    int
}

// Merge returns f with every non-zero field of override applied.
func (f TaskFilters) Merge(override TaskFilters) TaskFilters {
	if override.Status != "" {
		f.Status = override.Status
	}
	if override.Priority != "" {
		f.Priority = override.Priority
	}
	if override.Search != "" {
		f.Search = override.Search
	}
	if override.Page != 0 {
		f.Page = override.Page
	}
	if override.Limit != 0 {
		f.Limit = override.Limit
	}
	return f
}

func (f TaskFilters) values() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Priority != "" {
		q.Set("priority", string(f.Priority))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// RegisterData is the register payload.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the login payload.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskData is the create payload.
type CreateTaskData struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Priority    models.TaskPriority `json:"priority,omitempty"`
}

// UpdateTaskData is a partial update; nil fields are left out.
type UpdateTaskData struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Priority    *models.TaskPriority `json:"priority,omitempty"`
	Status      *models.TaskStatus   `json:"status,omitempty"`
}

// Register creates an account and keeps the returned token.
func (c *Client) Register(ctx context.Context, data RegisterData) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, data, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and keeps the returned token.
func (c *Client) Login(ctx context.Context, data LoginData) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, data, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Me returns the user the current token belongs to.
func (c *Client) Me(ctx context.Context) (*dto.UserDTO, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout forgets the token. Tokens are stateless, so the server is not
// contacted.
func (c *Client) Logout() {
	c.SetToken("")
}

func (c *Client) ListTasks(ctx context.Context, filters TaskFilters) (*dto.TaskListResponse, error) {
	var out dto.TaskListResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", filters.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(ctx context.Context, data CreateTaskData) (*dto.TaskDTO, error) {
	var out dto.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, data, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (*dto.TaskDTO, error) {
	var out dto.TaskResponse
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, data UpdateTaskData) (*dto.TaskDTO, error) {
	var out dto.TaskResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, nil)
}

// DeleteCompletedTasks removes every done task and returns how many went.
func (c *Client) DeleteCompletedTasks(ctx context.Context) (int64, error) {
	var out dto.DeleteCompletedResponse
	if err := c.do(ctx, http.MethodDelete, "/tasks/completed/all", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
