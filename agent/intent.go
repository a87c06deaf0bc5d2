package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const ActionCreate = "create"
const ActionUpdate = "update"
const ActionDelete = "delete"

// Erros de interpretação/validação. Todos são "erro do cliente" para o HTTP:
// o lote inteiro é rejeitado antes de qualquer escrita.
var (
	ErrUnparsable        = errors.New("Falha ao interpretar resposta do modelo")
	ErrNoIntents         = errors.New("Nenhuma tarefa identificada na solicitação")
	ErrMissingAction     = errors.New("Ação não identificada em uma das tarefas")
	ErrMissingTitle      = errors.New("Título obrigatório para criar tarefa")
	ErrMissingIdentifier = errors.New("Identificador obrigatório para atualizar/deletar tarefa")
)

// Intent é uma instrução extraída da mensagem do usuário. Campos opcionais são
// ponteiros para distinguir "ausente" de "vazio" na hora de montar o update.
type Intent struct {
	Action         string  `json:"action"`
	TaskIdentifier *string `json:"taskIdentifier"`
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	ScheduledDate  *string `json:"scheduledDate"`
	ScheduledTime  *string `json:"scheduledTime"`
	Priority       *string `json:"priority"`
	Status         *string `json:"status"`
}

// UpdateFields monta o mapa parcial de colunas a alterar: só entra o que o
// modelo mandou; o resto fica intocado.
func (i Intent) UpdateFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if i.Title != nil {
		fields["title"] = *i.Title
	}
	if i.Description != nil {
		fields["description"] = *i.Description
	}
	if i.ScheduledDate != nil {
		fields["scheduled_date"] = *i.ScheduledDate
	}
	if i.ScheduledTime != nil {
		fields["scheduled_time"] = *i.ScheduledTime
	}
	if i.Priority != nil {
		fields["priority"] = *i.Priority
	}
	if i.Status != nil {
		fields["status"] = *i.Status
	}
	return fields
}

// Reply é a união discriminada das duas formas aceitas do modelo.
type Reply interface{ isReply() }

// Conversation: resposta livre, nenhuma ação de tarefa.
type Conversation struct {
	Message string
}

// TaskBatch: lista ordenada de intenções.
type TaskBatch struct {
	Intents []Intent
}

func (Conversation) isReply() {}
func (TaskBatch) isReply()    {}

var codeFenceRe = regexp.MustCompile("```json\n?|\n?```")

// ParseReply decodifica o texto do modelo (removendo cercas de código) na
// união Conversation/TaskBatch. Falha de parse é terminal, sem retry.
func ParseReply(raw string) (Reply, error) {
	clean := strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))

	var parsed struct {
		IsConversation bool     `json:"isConversation"`
		Message        string   `json:"message"`
		Tasks          []Intent `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnparsable, raw)
	}

	if parsed.IsConversation {
		return Conversation{Message: parsed.Message}, nil
	}
	return TaskBatch{Intents: parsed.Tasks}, nil
}

// ValidateIntents rejeita o lote inteiro antes de qualquer efeito colateral:
// lista vazia, ação ausente, create sem título, update/delete sem identificador.
func ValidateIntents(intents []Intent) error {
	if len(intents) == 0 {
		return ErrNoIntents
	}
	for _, intent := range intents {
		if strings.TrimSpace(intent.Action) == "" {
			return ErrMissingAction
		}
		if intent.Action == ActionCreate && strings.TrimSpace(deref(intent.Title)) == "" {
			return ErrMissingTitle
		}
		if (intent.Action == ActionUpdate || intent.Action == ActionDelete) &&
			strings.TrimSpace(deref(intent.TaskIdentifier)) == "" {
			return ErrMissingIdentifier
		}
	}
	return nil
}

// IsClientError separa os erros que o HTTP devolve como 400 (conteúdo do
// modelo inaproveitável) dos erros de infraestrutura (500).
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnparsable) ||
		errors.Is(err, ErrNoIntents) ||
		errors.Is(err, ErrMissingAction) ||
		errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, ErrMissingIdentifier)
}
