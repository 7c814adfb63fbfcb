package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// TasksHandler serves the task routes. Every route sits behind Authenticate.
type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList godoc
//
//	@Summary		List tasks
//	@Description	Returns the caller's tasks ordered by id.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			complete	query		bool				false	"Only complete (true) or incomplete (false) tasks"
//	@Success		200			{array}		tasksdk.Task		"Tasks owned by the caller"
//	@Failure		400			{object}	tasksdk.APIError	"Malformed query"
//	@Failure		401			{object}	tasksdk.APIError	"Missing, invalid or expired token"
//	@Failure		500			{object}	tasksdk.APIError	"Internal server error"
//	@Router			/ [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var complete *bool
	if raw := r.URL.Query().Get("complete"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			tasksdk.ErrBadRequest.WithField("complete", "complete must be true or false").WriteError(w)
			return
		}
		complete = &v
	}

	tasks, err := h.TaskService.ListTasks(r.Context(), id, complete)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]tasksdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTask(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get a task
//	@Description	Returns one of the caller's tasks. Tasks owned by other users are reported as not found.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Task id"
//	@Success		200	{object}	tasksdk.Task		"Task"
//	@Failure		400	{object}	tasksdk.APIError	"Malformed id"
//	@Failure		401	{object}	tasksdk.APIError	"Missing, invalid or expired token"
//	@Failure		404	{object}	tasksdk.APIError	"Task not found"
//	@Failure		500	{object}	tasksdk.APIError	"Internal server error"
//	@Router			/task/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.TaskService.GetTask(r.Context(), id, taskID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTask(task))
}

// HandleCreate godoc
//
//	@Summary		Create a task
//	@Description	Creates a task owned by the caller. Priority must be between 1 and 5.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TaskRequest			true	"title, description, priority, complete"
//	@Success		201		{object}	tasksdk.TransactionResponse	"status 201, transaction, task"
//	@Failure		400		{object}	tasksdk.APIError			"Malformed request body"
//	@Failure		401		{object}	tasksdk.APIError			"Missing, invalid or expired token"
//	@Failure		422		{object}	tasksdk.APIError			"Validation failed"
//	@Failure		500		{object}	tasksdk.APIError			"Internal server error"
//	@Router			/ [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req tasksdk.TaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		tasksdk.ErrBadRequest.WriteError(w)
		return
	}

	task, err := h.TaskService.CreateTask(r.Context(), id, toTaskParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeTransaction(w, http.StatusCreated, http.StatusCreated, &task)
}

// HandleUpdate godoc
//
//	@Summary		Update a task
//	@Description	Overwrites title, description, priority and complete of one of the caller's tasks.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Task id"
//	@Param			request	body		tasksdk.TaskRequest			true	"title, description, priority, complete"
//	@Success		200		{object}	tasksdk.TransactionResponse	"status 200, transaction, task"
//	@Failure		400		{object}	tasksdk.APIError			"Malformed id or body"
//	@Failure		401		{object}	tasksdk.APIError			"Missing, invalid or expired token"
//	@Failure		404		{object}	tasksdk.APIError			"Task not found"
//	@Failure		422		{object}	tasksdk.APIError			"Validation failed"
//	@Failure		500		{object}	tasksdk.APIError			"Internal server error"
//	@Router			/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req tasksdk.TaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		tasksdk.ErrBadRequest.WriteError(w)
		return
	}

	task, err := h.TaskService.UpdateTask(r.Context(), id, taskID, toTaskParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeTransaction(w, http.StatusOK, http.StatusOK, &task)
}

// HandleDelete godoc
//
//	@Summary		Delete a task
//	@Description	Removes one of the caller's tasks. The body reports status 201 for compatibility with existing clients.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Task id"
//	@Success		200	{object}	tasksdk.TransactionResponse	"status 201, transaction"
//	@Failure		400	{object}	tasksdk.APIError			"Malformed id"
//	@Failure		401	{object}	tasksdk.APIError			"Missing, invalid or expired token"
//	@Failure		404	{object}	tasksdk.APIError			"Task not found"
//	@Failure		500	{object}	tasksdk.APIError			"Internal server error"
//	@Router			/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		tasksdk.ErrUnauthorized.WriteError(w)
		return
	}
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.DeleteTask(r.Context(), id, taskID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeTransaction(w, http.StatusOK, http.StatusCreated, nil)
}

// parseTaskID reads the {id} path value. It writes a 400 and returns false
// when the value is not a positive integer.
func parseTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || taskID <= 0 {
		tasksdk.ErrBadRequest.WithField("id", "task id must be a positive integer").WriteError(w)
		return 0, false
	}
	return taskID, true
}

// writeTransaction writes the mutation envelope. The body status is not
// always the HTTP status: deletes answer 200 with a body status of 201.
func writeTransaction(w http.ResponseWriter, code, bodyStatus int, task *domain.Task) {
	resp := tasksdk.TransactionResponse{
		Status:      bodyStatus,
		Transaction: tasksdk.TransactionSuccessful,
	}
	if task != nil {
		t := toTask(*task)
		resp.Task = &t
	}
	httpx.WriteJSON(w, code, resp)
}

func toTaskParams(req tasksdk.TaskRequest) service.TaskParams {
	return service.TaskParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}
}

func toTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
