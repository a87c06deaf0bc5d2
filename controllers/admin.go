package controllers

import (
	"net/http"

	dbpkg "agendai/db"
	"agendai/models"

	"github.com/gin-gonic/gin"
)

type AdminUserUpdateRequest struct {
	UserUpdateRequest
	Role *string `json:"role"`
}

// GET /admin/users/:id (admin)
func AdminGetUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"user": profile(user)})
}

// PUT /admin/users/:id (admin)
// Única rota que pode alterar a role de um usuário.
func AdminUpdateUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req AdminUserUpdateRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, "Usuário não encontrado", http.StatusNotFound)
		return
	}

	fields, ok := userUpdateFields(c, req.UserUpdateRequest, req.Role, true)
	if !ok {
		return
	}
	if len(fields) == 0 {
		RespondError(c, "Nenhum dado para atualizar", http.StatusBadRequest)
		return
	}

	if err := db.Model(&user).Updates(fields).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"user": profile(user)})
}

// DELETE /admin/users/:id (admin)
func AdminDeleteUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, "Usuário não encontrado", http.StatusNotFound)
		return
	}

	if err := deleteUserCascade(db, user.ID); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"message": "Conta removida com sucesso"})
}
