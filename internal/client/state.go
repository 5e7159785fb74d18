package client

import (
	"github.com/yukikurage/todolist-api/internal/constants"
	"github.com/yukikurage/todolist-api/internal/dto"
	"github.com/yukikurage/todolist-api/internal/utils"
)

// AuthState is the client's view of the signed-in user.
type AuthState struct {
	User            *dto.UserDTO
	IsAuthenticated bool
	IsLoading       bool
}

// InitialAuthState is loading until the stored token has been checked.
func InitialAuthState() AuthState {
	return AuthState{IsLoading: true}
}

// AuthAction is one of SetAuthLoading, SetUser or Logout.
type AuthAction interface {
	authAction()
}

type SetAuthLoading struct{ Loading bool }

// SetUser signs a user in, or out when User is nil.
type SetUser struct{ User *dto.UserDTO }

type Logout struct{}

func (SetAuthLoading) authAction() {}
func (SetUser) authAction()        {}
func (Logout) authAction()         {}

// ReduceAuth returns the state after action.
func ReduceAuth(state AuthState, action AuthAction) AuthState {
	switch a := action.(type) {
	case SetAuthLoading:
		state.IsLoading = a.Loading
	case SetUser:
		state.User = a.User
		state.IsAuthenticated = a.User != nil
		state.IsLoading = false
	case Logout:
		state = AuthState{}
	}
	return state
}

// TaskState is the currently loaded page of tasks.
type TaskState struct {
	Tasks      []dto.TaskDTO
	IsLoading  bool
	Pagination utils.PaginationResponse
	Filters    TaskFilters
}

func InitialTaskState() TaskState {
	return TaskState{
		Tasks:      []dto.TaskDTO{},
		Pagination: utils.PaginationResponse{Page: constants.MinPage, Limit: constants.DefaultPageSize},
	}
}

// TaskAction is one of SetTasksLoading, SetTasks, AddTask, UpdateTask,
// DeleteTask or SetFilters.
type TaskAction interface {
	taskAction()
}

type SetTasksLoading struct{ Loading bool }

// SetTasks replaces the loaded page.
type SetTasks struct{ Page dto.TaskListResponse }

// AddTask prepends a created task.
type AddTask struct{ Task dto.TaskDTO }

// UpdateTask replaces the loaded task with the same id.
type UpdateTask struct{ Task dto.TaskDTO }

type DeleteTask struct{ ID string }

type SetFilters struct{ Filters TaskFilters }

func (SetTasksLoading) taskAction() {}
func (SetTasks) taskAction()        {}
func (AddTask) taskAction()         {}
func (UpdateTask) taskAction()      {}
func (DeleteTask) taskAction()      {}
func (SetFilters) taskAction()      {}

// ReduceTasks returns the state after action. The input state is not
// modified.
func ReduceTasks(state TaskState, action TaskAction) TaskState {
	switch a := action.(type) {
	case SetTasksLoading:
		state.IsLoading = a.Loading
	case SetTasks:
		state.Tasks = append([]dto.TaskDTO{}, a.Page.Tasks...)
		state.Pagination = a.Page.Pagination
		state.IsLoading = false
	case AddTask:
		tasks := make([]dto.TaskDTO, 0, len(state.Tasks)+1)
		tasks = append(tasks, a.Task)
		state.Tasks = append(tasks, state.Tasks...)
	case UpdateTask:
		tasks := make([]dto.TaskDTO, len(state.Tasks))
		for i, task := range state.Tasks {
			if task.ID == a.Task.ID {
				task = a.Task
			}
			tasks[i] = task
		}
		state.Tasks = tasks
	case DeleteTask:
		tasks := make([]dto.TaskDTO, 0, len(state.Tasks))
		for _, task := range state.Tasks {
			if task.ID != a.ID {
				tasks = append(tasks, task)
			}
		}
		state.Tasks = tasks
	case SetFilters:
		state.Filters = a.Filters
	}
	return state
}
