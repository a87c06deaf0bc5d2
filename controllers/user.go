package controllers

import (
	"net/http"

	dbpkg "agendai/db"
	"agendai/models"
	"agendai/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type UserUpdateRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	ProfilePhoto *string `json:"profilePhoto"`
	CoverPhoto   *string `json:"coverPhoto"`
	Bio          *string `json:"bio"`
}

type UserProfile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	ProfilePhoto string `json:"profilePhoto"`
	CoverPhoto   string `json:"coverPhoto"`
	Bio          string `json:"bio"`
	CreatedAt    string `json:"createdAt"`
}

func profile(user models.User) UserProfile {
	createdAt := ""
	if user.CreatedAt != nil {
		createdAt = user.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return UserProfile{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		ProfilePhoto: user.ProfilePhoto,
		CoverPhoto:   user.CoverPhoto,
		Bio:          user.Bio,
		CreatedAt:    createdAt,
	}
}

// userUpdateFields valida o corpo parcial e monta o mapa de colunas.
// O campo role só entra quando allowRole (rota de admin).
func userUpdateFields(c *gin.Context, req UserUpdateRequest, role *string, allowRole bool) (map[string]interface{}, bool) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		if *req.Name == "" {
			RespondError(c, "name não pode ser vazio", http.StatusBadRequest)
			return nil, false
		}
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		if !tools.ValidateEmail(*req.Email) {
			RespondError(c, "E-mail inválido", http.StatusBadRequest)
			return nil, false
		}
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		if tools.CheckPassword(*req.Password) != "" {
			RespondError(c, "Senha deve ter entre 6 e 100 caracteres", http.StatusBadRequest)
			return nil, false
		}
		hashed, err := tools.HashPassword(*req.Password)
		if err != nil {
			RespondError(c, "erro ao processar senha", http.StatusInternalServerError)
			return nil, false
		}
		fields["password"] = hashed
	}
	if req.ProfilePhoto != nil {
		fields["profile_photo"] = *req.ProfilePhoto
	}
	if req.CoverPhoto != nil {
		fields["cover_photo"] = *req.CoverPhoto
	}
	if req.Bio != nil {
		if len(*req.Bio) > 100 {
			RespondError(c, "Bio deve ter no máximo 100 caracteres", http.StatusBadRequest)
			return nil, false
		}
		fields["bio"] = *req.Bio
	}
	if allowRole && role != nil {
		if !models.IsRoleValid(*role) {
			RespondError(c, "role inválida", http.StatusBadRequest)
			return nil, false
		}
		fields["role"] = *role
	}

	return fields, true
}

// deleteUserCascade remove o usuário, suas tarefas e códigos de recuperação.
func deleteUserCascade(db *gorm.DB, userID int64) error {
	tx := db.Begin()
	if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("id = ?", userID).Delete(&models.User{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// GET /user/me
func Me(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}
	RespondSuccess(c, gin.H{"user": profile(user)})
}

// PUT /user/me
func UpdateMe(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	fields, ok := userUpdateFields(c, req, nil, false)
	if !ok {
		return
	}
	if len(fields) == 0 {
		RespondError(c, "Nenhum dado para atualizar", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Model(&user).Updates(fields).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"user": profile(user)})
}

// DELETE /user/me
func DeleteMe(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "Acesso negado", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := deleteUserCascade(db, user.ID); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"message": "Conta removida com sucesso"})
}
