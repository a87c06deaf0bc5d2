package models

import "time"

// PasswordResetToken representa um código temporário do fluxo "Esqueci minha senha".
// O código tem 6 dígitos, vale por 10 minutos e é de uso único: ao emitir um
// novo código os anteriores do mesmo usuário são marcados como usados.
type PasswordResetToken struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Token     string     `gorm:"not null;index" json:"-"`
	ExpiresAt *time.Time `json:"expires_at"`
	Used      bool       `gorm:"not null;default:false" json:"used"`
	CreatedAt *time.Time `json:"created_at"`
}

func (t PasswordResetToken) IsExpired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return now.After(*t.ExpiresAt)
}
