package controllers

import (
	"net/http"

	dbpkg "agendai/db"
	"agendai/models"
	"agendai/tools"

	"github.com/gin-gonic/gin"
)

type SignUpRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TokenResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func summarize(user models.User) UserSummary {
	return UserSummary{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
}

// POST /auth/signup
func SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: req.Password}
	if missing := user.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(user.Email) {
		RespondError(c, "E-mail inválido", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "Email já cadastrado", http.StatusConflict)
		return
	}

	hashed, err := tools.HashPassword(user.Password)
	if err != nil {
		RespondError(c, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	user.Password = hashed
	user.Role = models.USER_ROLE_FREE

	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token, User: summarize(user)})
}

// POST /auth/signin
func SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email e password são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "Email ou senha inválidos", http.StatusUnauthorized)
		return
	}
	if !tools.VerifyPassword(req.Password, user.Password) {
		RespondError(c, "Email ou senha inválidos", http.StatusUnauthorized)
		return
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, TokenResponse{Token: token, User: summarize(user)})
}
