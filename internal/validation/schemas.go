package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yukikurage/todolist-api/internal/constants"
	"github.com/yukikurage/todolist-api/internal/models"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string              `json:"title" validate:"required,max=50"`
	Description string              `json:"description" validate:"max=200"`
	Priority    models.TaskPriority `json:"priority" validate:"oneof=low medium high"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.Priority == "" {
		r.Priority = models.TaskPriorityMedium
	}
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Nil fields are left
// untouched; at least one must be present.
type UpdateTaskRequest struct {
	Title       *string              `json:"title" validate:"omitnil,min=1,max=50"`
	Description *string              `json:"description" validate:"omitnil,max=200"`
	Priority    *models.TaskPriority `json:"priority" validate:"omitnil,oneof=low medium high"`
	Status      *models.TaskStatus   `json:"status" validate:"omitnil,oneof=pending done"`
}

func (r *UpdateTaskRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Description = trimPtr(r.Description)
}

// IsEmpty reports whether no updatable field was supplied.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Priority == nil && r.Status == nil
}

// ValidateUpdate runs the field rules and the at-least-one-field rule.
func ValidateUpdate(r *UpdateTaskRequest) error {
	if r.IsEmpty() {
		return NewError("at least one field must be provided")
	}
	return Struct(r)
}

// TaskFilters are the query parameters of GET /tasks.
type TaskFilters struct {
	Status   *models.TaskStatus   `form:"status" validate:"omitnil,oneof=pending done"`
	Priority *models.TaskPriority `form:"priority" validate:"omitnil,oneof=low medium high"`
	Search   string               `form:"search" validate:"max=100"`
	Page     int                  `form:"page" validate:"min=1"`
	Limit    int                  `form:"limit" validate:"min=1,max=100"`
}

// ParseTaskFilters reads, defaults and validates list filters. Numbers that
// do not parse are reported together with the other violations.
func ParseTaskFilters(query url.Values) (*TaskFilters, error) {
	filters := &TaskFilters{
		Search: strings.TrimSpace(query.Get("search")),
		Page:   constants.MinPage,
		Limit:  constants.DefaultPageSize,
	}
	if v := strings.TrimSpace(query.Get("status")); v != "" {
		status := models.TaskStatus(v)
		filters.Status = &status
	}
	if v := strings.TrimSpace(query.Get("priority")); v != "" {
		priority := models.TaskPriority(v)
		filters.Priority = &priority
	}

	var violations []string
	parseInt := func(name string, dst *int) {
		raw := strings.TrimSpace(query.Get(name))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, fmt.Sprintf("%s must be an integer", name))
			return
		}
		*dst = n
	}
	parseInt("page", &filters.Page)
	parseInt("limit", &filters.Limit)

	if err := check(filters); err != nil {
		verr, ok := err.(*Error)
		if !ok {
			return nil, err
		}
		violations = append(violations, verr.Violations...)
	}
	if len(violations) > 0 {
		return nil, &Error{Violations: violations}
	}
	return filters, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
