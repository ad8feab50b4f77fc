package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
	"github.com/NuryND000/backend-gr-coin-v3/internal/http/middleware"
	"github.com/NuryND000/backend-gr-coin-v3/internal/repositories"
	"github.com/NuryND000/backend-gr-coin-v3/internal/utils"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Alamat   string `json:"alamat"`
	Wilayah  string `json:"wilayah"`
	Tlp      string `json:"tlp"`
	Ewallet  string `json:"ewallet"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req, "All fields are required") {
		return
	}

	if req.Username == "" || req.Alamat == "" || req.Wilayah == "" ||
		req.Tlp == "" || req.Ewallet == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		RespondDomainError(c, "auth", "register", err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Username:     req.Username,
		Alamat:       req.Alamat,
		Wilayah:      req.Wilayah,
		Tlp:          req.Tlp,
		Ewallet:      req.Ewallet,
		PasswordHash: hash,
		Role:         role,
	}

	repo := repositories.UserRepository{}
	if err := repo.Create(&user); err != nil {
		RespondDomainError(c, "auth", "register", err)
		return
	}

	c.JSON(http.StatusOK, user.ToPublic())
}

type loginRequest struct {
	Tlp      string `json:"tlp"`
	Password string `json:"password"`
}

// POST /login
// Secret di-inject dari konfigurasi, bukan konstanta global.
func Login(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req, "Invalid credentials") {
			return
		}

		repo := repositories.UserRepository{}
		user, err := repo.FindByPhone(req.Tlp)

		// Nomor tidak dikenal dan password salah sengaja dijawab sama,
		// supaya tidak bocor nomor mana yang terdaftar.
		if errors.Is(err, sql.ErrNoRows) || (err == nil && !utils.CheckPasswordHash(req.Password, user.PasswordHash)) {
			RespondDomainError(c, "auth", "login", domain.UnauthorizedError{Msg: "Invalid credentials"})
			return
		}
		if err != nil {
			RespondDomainError(c, "auth", "login", err)
			return
		}

		token, err := utils.GenerateToken(user.ID, user.Role, secret)
		if err != nil {
			RespondDomainError(c, "auth", "login", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user.ToPublic()})
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// POST /changepassword
// Operates on the caller's own id taken from the verified token.
func ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if !BindJSONOrError(c, &req, "All fields are required") {
		return
	}

	userID := middleware.AuthUserID(c)
	repo := repositories.UserRepository{}

	user, err := repo.FindByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, "auth", "changepassword", domain.NotFoundError{Resource: "User"})
		return
	}
	if err != nil {
		RespondDomainError(c, "auth", "changepassword", err)
		return
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		RespondDomainError(c, "auth", "changepassword", domain.UnauthorizedError{Msg: "Old password is incorrect"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		RespondDomainError(c, "auth", "changepassword", err)
		return
	}
	if err := repo.UpdatePassword(userID, hash); err != nil {
		RespondDomainError(c, "auth", "changepassword", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
