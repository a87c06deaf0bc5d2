package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	dbpkg "agendai/db"
	"agendai/models"
	"agendai/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// POST /auth/forgot-password
// Body: { "email": "..." }
// Gera um código de 6 dígitos com validade de 10 minutos e envia por e-mail.
// Emitir um novo código invalida os anteriores do usuário.
func ForgotPassword(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
	}

	var req Request
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		RespondError(c, "email é obrigatório", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "Usuário não encontrado", http.StatusNotFound)
		return
	}

	codeLen := cfg.Security.ResetCodeLen
	if codeLen <= 0 {
		codeLen = 6
	}
	validFor := time.Duration(cfg.Security.ResetCodeMins) * time.Minute
	if validFor <= 0 {
		validFor = 10 * time.Minute
	}

	code := tools.RandomNumbers(codeLen)
	exp := time.Now().Add(validFor)

	tx := db.Begin()

	// só um código não usado vale por vez
	if err := tx.Model(&models.PasswordResetToken{}).
		Where("user_id = ? AND used = ?", user.ID, false).
		Update("used", true).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	reset := models.PasswordResetToken{UserID: user.ID, Token: code, ExpiresAt: &exp}
	if err := tx.Create(&reset).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	// best-effort: a falha de SMTP não desfaz o código emitido
	if err := mailer().SendPasswordResetCode(user.Email, user.FirstName(), code); err != nil {
		log.Printf("forgot password: envio de e-mail falhou user_id=%d err=%v", user.ID, err)
	}

	RespondSuccess(c, gin.H{"message": "Código de recuperação enviado"})
}

func findValidResetToken(db *gorm.DB, userID int64, code string) (*models.PasswordResetToken, bool) {
	var reset models.PasswordResetToken
	err := db.
		Where("user_id = ? AND token = ? AND used = ? AND expires_at > ?", userID, code, false, time.Now()).
		Order("id desc").
		First(&reset).Error
	if err != nil {
		return nil, false
	}
	return &reset, true
}

// POST /auth/validate-token
// Body: { "email": "...", "token": "123456" }
// Não consome o código.
func ValidateResetToken(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
		Token string `json:"token" form:"token"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondSuccess(c, gin.H{"valid": false})
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Token = strings.TrimSpace(req.Token)
	if req.Email == "" || req.Token == "" {
		RespondSuccess(c, gin.H{"valid": false})
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondSuccess(c, gin.H{"valid": false})
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondSuccess(c, gin.H{"valid": false})
		return
	}

	_, ok := findValidResetToken(db, user.ID, req.Token)
	RespondSuccess(c, gin.H{"valid": ok})
}

// POST /auth/reset-password
// Body: { "email": "...", "token": "123456", "newPassword": "..." }
// Consome o código e troca a senha.
func ResetPassword(c *gin.Context) {
	type Request struct {
		Email       string `json:"email" form:"email"`
		Token       string `json:"token" form:"token"`
		NewPassword string `json:"newPassword" form:"newPassword"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Token = strings.TrimSpace(req.Token)
	req.NewPassword = strings.TrimSpace(req.NewPassword)
	if req.Email == "" || req.Token == "" || req.NewPassword == "" {
		RespondError(c, "email, token e newPassword são obrigatórios", http.StatusBadRequest)
		return
	}
	if tools.CheckPassword(req.NewPassword) != "" {
		RespondError(c, "Senha deve ter entre 6 e 100 caracteres", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "Token inválido ou expirado", http.StatusBadRequest)
		return
	}

	reset, ok := findValidResetToken(db, user.ID, req.Token)
	if !ok {
		RespondError(c, "Token inválido ou expirado", http.StatusBadRequest)
		return
	}

	hashed, err := tools.HashPassword(req.NewPassword)
	if err != nil {
		RespondError(c, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	tx := db.Begin()

	if err := tx.Model(&user).Update("password", hashed).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Model(reset).Update("used", true).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"message": "Senha redefinida com sucesso"})
}
