package db

import (
	"strings"

	"agendai/models"

	"github.com/jinzhu/gorm"
)

// TaskStore concentra o acesso às tarefas. Toda operação filtra por user_id:
// tarefa de outro dono se comporta exatamente como tarefa inexistente.
type TaskStore struct {
	DB *gorm.DB
}

func (s TaskStore) Create(userID int64, task models.Task) (models.Task, error) {
	task.ID = 0
	task.UserID = userID
	if task.Priority == "" {
		task.Priority = models.TASK_PRIORITY_MEDIUM
	}
	if task.Status == "" {
		task.Status = models.TASK_STATUS_PENDING
	}
	if err := s.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// List devolve as tarefas do usuário, mais recentes primeiro.
func (s TaskStore) List(userID int64) ([]models.Task, error) {
	var tasks []models.Task
	err := s.DB.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&tasks).Error
	return tasks, err
}

func (s TaskStore) Get(userID int64, taskID int64) (*models.Task, error) {
	var task models.Task
	err := s.DB.Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByText localiza no máximo uma tarefa cujo título OU descrição contenha o
// texto (case-insensitive). Empate resolve pela mais recente — regra documentada,
// não melhorar silenciosamente.
func (s TaskStore) FindByText(userID int64, text string) (*models.Task, error) {
	tasks, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)
	for i := range tasks {
		if strings.Contains(strings.ToLower(tasks[i].Title), needle) ||
			strings.Contains(strings.ToLower(tasks[i].Description), needle) {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// Update aplica apenas os campos presentes em fields. Devolve nil quando a
// tarefa não existe (ou pertence a outro usuário).
func (s TaskStore) Update(userID int64, taskID int64, fields map[string]interface{}) (*models.Task, error) {
	existing, err := s.Get(userID, taskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.DB.Model(existing).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(userID, taskID)
}

func (s TaskStore) Delete(userID int64, taskID int64) (bool, error) {
	existing, err := s.Get(userID, taskID)
	if err != nil || existing == nil {
		return false, err
	}
	if err := s.DB.Where("user_id = ? AND id = ?", userID, taskID).Delete(&models.Task{}).Error; err != nil {
		return false, err
	}
	return true, nil
}
