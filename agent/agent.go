package agent

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"agendai/models"
)

// Store é a visão que o interpretador tem do armazenamento de tarefas.
// Todas as operações já chegam escopadas pelo dono.
type Store interface {
	Create(userID int64, task models.Task) (models.Task, error)
	List(userID int64) ([]models.Task, error)
	FindByText(userID int64, text string) (*models.Task, error)
	Update(userID int64, taskID int64, fields map[string]interface{}) (*models.Task, error)
	Delete(userID int64, taskID int64) (bool, error)
}

// Completer abstrai a chamada ao modelo de linguagem: instrução + mensagem
// entram, texto (que deve conter JSON) sai.
type Completer interface {
	Complete(ctx context.Context, system string, user string) (string, error)
}

// Interpreter converte uma mensagem em linguagem natural em ações sobre a
// agenda do usuário e narra o resultado.
type Interpreter struct {
	Store     Store
	Completer Completer

	// Now e Rand são injetáveis para os testes; quando nulos usam o relógio
	// e a semente padrão.
	Now  func() time.Time
	Rand *rand.Rand
}

// Result descreve o desfecho de uma intenção, com narração para o usuário.
type Result struct {
	Action  string       `json:"action"`
	Success bool         `json:"success"`
	Task    *models.Task `json:"task,omitempty"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message"`
}

// Response é o corpo devolvido pelo endpoint do agente: ou uma conversa, ou
// um lote de resultados com resumo.
type Response struct {
	IsConversation bool     `json:"isConversation"`
	Message        string   `json:"message"`
	Results        []Result `json:"results,omitempty"`
	Summary        string   `json:"summary,omitempty"`
}

func (it Interpreter) now() time.Time {
	if it.Now != nil {
		return it.Now()
	}
	return time.Now()
}

func (it Interpreter) rand() *rand.Rand {
	if it.Rand != nil {
		return it.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Schedule executa o fluxo completo: contexto -> modelo -> validação ->
// aplicação sequencial -> narração. Intenções são aplicadas na ordem devolvida
// pelo modelo, uma por vez; a falha de uma não interrompe as demais.
func (it Interpreter) Schedule(ctx context.Context, user models.User, message string) (Response, error) {
	today := it.now()

	tasks, err := it.Store.List(user.ID)
	if err != nil {
		return Response{}, fmt.Errorf("falha ao listar tarefas: %w", err)
	}

	system := BuildPrompt(today.Format("2006-01-02"), TasksContext(tasks))

	raw, err := it.Completer.Complete(ctx, system, message)
	if err != nil {
		return Response{}, err
	}

	reply, err := ParseReply(raw)
	if err != nil {
		return Response{}, err
	}

	switch r := reply.(type) {
	case Conversation:
		return Response{IsConversation: true, Message: r.Message}, nil
	case TaskBatch:
		if err := ValidateIntents(r.Intents); err != nil {
			return Response{}, err
		}
		rng := it.rand()
		results := make([]Result, 0, len(r.Intents))
		for _, intent := range r.Intents {
			res := it.applyIntent(user, intent)
			res.Message = narrate(rng, user, intent, res, today)
			results = append(results, res)
		}
		ok := 0
		for _, res := range results {
			if res.Success {
				ok++
			}
		}
		return Response{
			Message: overallMessage(rng, user, results, ok),
			Results: results,
			Summary: fmt.Sprintf("%d/%d tarefas processadas com sucesso", ok, len(results)),
		}, nil
	default:
		return Response{}, ErrUnparsable
	}
}

// applyIntent aplica uma única intenção. Panics viram falha do item, nunca do
// lote.
func (it Interpreter) applyIntent(user models.User, intent Intent) (res Result) {
	res.Action = intent.Action

	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Task = nil
			res.Error = fmt.Sprintf("erro inesperado: %v", r)
		}
	}()

	switch intent.Action {
	case ActionCreate:
		task := models.Task{
			Title:          deref(intent.Title),
			Description:    deref(intent.Description),
			ScheduledDate:  deref(intent.ScheduledDate),
			ScheduledTime:  deref(intent.ScheduledTime),
			Priority:       deref(intent.Priority),
			Status:         models.TASK_STATUS_PENDING,
			CreatedByAgent: true,
		}
		if task.Priority == "" {
			task.Priority = models.TASK_PRIORITY_MEDIUM
		}
		created, err := it.Store.Create(user.ID, task)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Success = true
		res.Task = &created

	case ActionUpdate:
		target, err := it.Store.FindByText(user.ID, deref(intent.TaskIdentifier))
		if err != nil {
			res.Error = err.Error()
			return res
		}
		if target == nil {
			res.Error = fmt.Sprintf("Tarefa %q não encontrada", deref(intent.TaskIdentifier))
			return res
		}
		updated, err := it.Store.Update(user.ID, target.ID, intent.UpdateFields())
		if err != nil {
			res.Error = err.Error()
			return res
		}
		if updated == nil {
			res.Error = fmt.Sprintf("Tarefa %q não encontrada", deref(intent.TaskIdentifier))
			return res
		}
		res.Success = true
		res.Task = updated

	case ActionDelete:
		target, err := it.Store.FindByText(user.ID, deref(intent.TaskIdentifier))
		if err != nil {
			res.Error = err.Error()
			return res
		}
		if target == nil {
			res.Error = fmt.Sprintf("Tarefa %q não encontrada", deref(intent.TaskIdentifier))
			return res
		}
		deleted, err := it.Store.Delete(user.ID, target.ID)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		if !deleted {
			res.Error = fmt.Sprintf("Tarefa %q não encontrada", deref(intent.TaskIdentifier))
			return res
		}
		res.Success = true
		res.Task = target

	default:
		res.Error = fmt.Sprintf("Ação não reconhecida: %s", intent.Action)
	}

	return res
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
