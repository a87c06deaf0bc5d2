package agent

import (
	"fmt"
	"math/rand"
	"time"

	"agendai/models"
)

var openers = []string{
	"Prontinho!",
	"Feito!",
	"Tudo certo!",
	"Perfeito!",
	"Combinado!",
}

var weekdays = []string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

func opener(rng *rand.Rand) string {
	return openers[rng.Intn(len(openers))]
}

// RelativeDate traduz uma data ISO em fala: hoje/amanhã/ontem, nome do dia da
// semana até 7 dias à frente, senão "d/m". As datas são normalizadas para o
// meio-dia antes da subtração para não escorregar em fronteira de DST.
func RelativeDate(isoDate string, today time.Time) string {
	target, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}

	at := time.Date(target.Year(), target.Month(), target.Day(), 12, 0, 0, 0, time.UTC)
	ref := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, time.UTC)
	days := int(at.Sub(ref).Hours() / 24)

	switch {
	case days == 0:
		return "hoje"
	case days == 1:
		return "amanhã"
	case days == -1:
		return "ontem"
	case days >= 2 && days <= 7:
		return weekdays[at.Weekday()]
	default:
		return fmt.Sprintf("%d/%d", target.Day(), int(target.Month()))
	}
}

// narrate gera a frase de desfecho de uma intenção, sucesso ou falha.
func narrate(rng *rand.Rand, user models.User, intent Intent, res Result, today time.Time) string {
	if !res.Success {
		return fmt.Sprintf("Desculpe, %s, não consegui: %s", user.FirstName(), res.Error)
	}

	switch intent.Action {
	case ActionCreate:
		msg := fmt.Sprintf("%s Criei a tarefa %q", opener(rng), res.Task.Title)
		if res.Task.ScheduledDate != "" {
			msg += " para " + RelativeDate(res.Task.ScheduledDate, today)
		}
		if res.Task.ScheduledTime != "" {
			msg += " às " + res.Task.ScheduledTime
		}
		return msg + "."

	case ActionUpdate:
		id := deref(intent.TaskIdentifier)
		if intent.Status != nil && *intent.Status == models.TASK_STATUS_COMPLETED {
			return fmt.Sprintf("Parabéns, %s! Tarefa %q concluída! 🎉", user.FirstName(), id)
		}
		if intent.Status != nil && *intent.Status == models.TASK_STATUS_CANCELLED {
			return fmt.Sprintf("Tudo bem, a tarefa %q foi cancelada.", id)
		}
		msg := fmt.Sprintf("%s Atualizei a tarefa %q", opener(rng), id)
		if intent.ScheduledDate != nil && *intent.ScheduledDate != "" {
			msg += " para " + RelativeDate(*intent.ScheduledDate, today)
		}
		if intent.ScheduledTime != nil && *intent.ScheduledTime != "" {
			msg += " às " + *intent.ScheduledTime
		}
		return msg + "."

	case ActionDelete:
		return fmt.Sprintf("%s Removi a tarefa %q.", opener(rng), deref(intent.TaskIdentifier))
	}

	return opener(rng)
}

// overallMessage resume o lote: narração única quando só houve uma intenção,
// celebração quando tudo deu certo, desculpas quando nada deu.
func overallMessage(rng *rand.Rand, user models.User, results []Result, ok int) string {
	total := len(results)
	switch {
	case ok == total && total == 1:
		return results[0].Message
	case ok == total:
		return fmt.Sprintf("%s Processei todas as %d tarefas com sucesso! 🎉", opener(rng), total)
	case ok == 0:
		return fmt.Sprintf("Desculpe, %s, não consegui processar nenhuma das tarefas. 😔", user.FirstName())
	default:
		return fmt.Sprintf("%s, consegui processar %d de %d tarefas.", user.FirstName(), ok, total)
	}
}
