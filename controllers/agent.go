package controllers

import (
	"errors"
	"net/http"
	"strings"

	"agendai/agent"
	dbpkg "agendai/db"
	"agendai/tools"

	"github.com/gin-gonic/gin"
)

type AgentScheduleRequest struct {
	Message string `json:"message" form:"message"`
}

// POST /agent/schedule
// Encaminha a mensagem para a Lucy e aplica as intenções devolvidas.
// Falha de configuração/transporte/upstream responde 500; resposta do modelo
// inaproveitável responde 400; falhas por intenção viajam dentro do 200.
func AgentSchedule(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	var req AgentScheduleRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		RespondError(c, "message é obrigatório", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}
	if completer == nil {
		RespondError(c, tools.ErrGroqKeyMissing.Error(), http.StatusInternalServerError)
		return
	}

	it := agent.Interpreter{
		Store:     dbpkg.TaskStore{DB: db},
		Completer: completer,
	}

	resp, err := it.Schedule(requestCtx(c), user, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrGroqKeyMissing):
			RespondError(c, err.Error(), http.StatusInternalServerError)
		case agent.IsClientError(err):
			RespondError(c, err.Error(), http.StatusBadRequest)
		default:
			RespondError(c, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	RespondSuccess(c, resp)
}
