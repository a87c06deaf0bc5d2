package controllers

import (
	"net/http"

	dbpkg "agendai/db"
	"agendai/models"

	"github.com/gin-gonic/gin"
)

type TaskCreateRequest struct {
	Title         string `json:"title" form:"title"`
	Description   string `json:"description" form:"description"`
	ScheduledDate string `json:"scheduledDate" form:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime" form:"scheduledTime"`
	Priority      string `json:"priority" form:"priority"`
}

type TaskUpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ScheduledDate *string `json:"scheduledDate"`
	ScheduledTime *string `json:"scheduledTime"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
}

func taskStore(c *gin.Context) (dbpkg.TaskStore, bool) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return dbpkg.TaskStore{}, false
	}
	return dbpkg.TaskStore{DB: db}, true
}

// POST /tasks
func CreateTask(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	var req TaskCreateRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		RespondError(c, "title é obrigatório", http.StatusBadRequest)
		return
	}
	if len(req.Title) > 255 {
		RespondError(c, "title deve ter no máximo 255 caracteres", http.StatusBadRequest)
		return
	}
	if len(req.Description) > 1000 {
		RespondError(c, "description deve ter no máximo 1000 caracteres", http.StatusBadRequest)
		return
	}
	if req.Priority != "" && !models.IsPriorityValid(req.Priority) {
		RespondError(c, "priority inválida", http.StatusBadRequest)
		return
	}

	store, ok := taskStore(c)
	if !ok {
		return
	}

	task, err := store.Create(user.ID, models.Task{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Priority:      req.Priority,
	})
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GET /tasks
func ListTasks(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	store, ok := taskStore(c)
	if !ok {
		return
	}

	tasks, err := store.List(user.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	RespondSuccess(c, gin.H{"tasks": tasks})
}

// GET /tasks/:id
func GetTask(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	store, ok := taskStore(c)
	if !ok {
		return
	}

	task, err := store.Get(user.ID, id)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if task == nil {
		RespondError(c, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"task": task})
}

// PUT /tasks/:id
func UpdateTask(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > 255 {
			RespondError(c, "title inválido", http.StatusBadRequest)
			return
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) > 1000 {
			RespondError(c, "description deve ter no máximo 1000 caracteres", http.StatusBadRequest)
			return
		}
		fields["description"] = *req.Description
	}
	if req.ScheduledDate != nil {
		fields["scheduled_date"] = *req.ScheduledDate
	}
	if req.ScheduledTime != nil {
		fields["scheduled_time"] = *req.ScheduledTime
	}
	if req.Priority != nil {
		if !models.IsPriorityValid(*req.Priority) {
			RespondError(c, "priority inválida", http.StatusBadRequest)
			return
		}
		fields["priority"] = *req.Priority
	}
	if req.Status != nil {
		if !models.IsStatusValid(*req.Status) {
			RespondError(c, "status inválido", http.StatusBadRequest)
			return
		}
		fields["status"] = *req.Status
	}

	store, ok := taskStore(c)
	if !ok {
		return
	}

	task, err := store.Update(user.ID, id, fields)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if task == nil {
		RespondError(c, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"task": task})
}

// DELETE /tasks/:id
func DeleteTask(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	store, ok := taskStore(c)
	if !ok {
		return
	}

	deleted, err := store.Delete(user.ID, id)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if !deleted {
		RespondError(c, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"message": "Tarefa deletada com sucesso"})
}
