package models

import "time"

/************************************************
/**** MARK: TASK PRIORITY ****/
/************************************************/
const TASK_PRIORITY_LOW = "low"
const TASK_PRIORITY_MEDIUM = "medium"
const TASK_PRIORITY_HIGH = "high"

/************************************************
/**** MARK: TASK STATUS ****/
/************************************************/
const TASK_STATUS_PENDING = "pending"
const TASK_STATUS_IN_PROGRESS = "in_progress"
const TASK_STATUS_COMPLETED = "completed"
const TASK_STATUS_CANCELLED = "cancelled"

// Task representa uma tarefa agendável de um usuário.
// ScheduledDate usa o formato YYYY-MM-DD e ScheduledTime o formato HH:MM;
// ambos são opcionais e guardados como texto (sem timezone).
type Task struct {
	ID             int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID         int64      `gorm:"not null;index" json:"user_id"`
	Title          string     `gorm:"not null;size:255" json:"title" form:"title"`
	Description    string     `gorm:"size:1000" json:"description" form:"description"`
	ScheduledDate  string     `gorm:"column:scheduled_date;default:''" json:"scheduled_date" form:"scheduled_date"`
	ScheduledTime  string     `gorm:"column:scheduled_time;default:''" json:"scheduled_time" form:"scheduled_time"`
	Priority       string     `gorm:"not null;default:'medium'" json:"priority" form:"priority"`
	Status         string     `gorm:"not null;default:'pending'" json:"status" form:"status"`
	CreatedByAgent bool       `gorm:"not null;default:false" json:"created_by_agent"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

func IsPriorityValid(priority string) bool {
	return priority == TASK_PRIORITY_LOW || priority == TASK_PRIORITY_MEDIUM || priority == TASK_PRIORITY_HIGH
}

func IsStatusValid(status string) bool {
	switch status {
	case TASK_STATUS_PENDING, TASK_STATUS_IN_PROGRESS, TASK_STATUS_COMPLETED, TASK_STATUS_CANCELLED:
		return true
	}
	return false
}

// IsTerminal indica se a tarefa saiu da agenda (não entra no contexto da Lucy).
func (t Task) IsTerminal() bool {
	return t.Status == TASK_STATUS_COMPLETED || t.Status == TASK_STATUS_CANCELLED
}
