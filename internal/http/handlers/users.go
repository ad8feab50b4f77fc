package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
	"github.com/NuryND000/backend-gr-coin-v3/internal/http/middleware"
	"github.com/NuryND000/backend-gr-coin-v3/internal/repositories"
	"github.com/NuryND000/backend-gr-coin-v3/internal/utils"

	"github.com/gin-gonic/gin"
)

type updateUserRequest struct {
	Username string `json:"username"`
	Alamat   string `json:"alamat"`
	Wilayah  string `json:"wilayah"`
	Tlp      string `json:"tlp"`
	Ewallet  string `json:"ewallet"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// PUT /user/:id
// Catatan: tidak ada ownership check di sini, setiap caller ber-token boleh
// mengubah user manapun. Perilaku lama dipertahankan.
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req updateUserRequest
	if !BindJSONOrError(c, &req, "Username, alamat, dan telepon wajib diisi") {
		return
	}

	if req.Username == "" || req.Alamat == "" || req.Wilayah == "" || req.Tlp == "" || req.Ewallet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, alamat, dan telepon wajib diisi"})
		return
	}

	repo := repositories.UserRepository{}
	existing, err := repo.FindByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, "users", "update", domain.NotFoundError{Resource: "User"})
		return
	}
	if err != nil {
		RespondDomainError(c, "users", "update", err)
		return
	}

	role := req.Role
	if role == "" {
		role = existing.Role
	}

	newHash := ""
	if req.Password != "" {
		if newHash, err = utils.HashPassword(req.Password); err != nil {
			RespondDomainError(c, "users", "update", err)
			return
		}
	}

	updated, err := repo.Update(id, models.User{
		Username: req.Username,
		Alamat:   req.Alamat,
		Wilayah:  req.Wilayah,
		Tlp:      req.Tlp,
		Ewallet:  req.Ewallet,
		Role:     role,
	}, newHash)
	if err != nil {
		RespondDomainError(c, "users", "update", err)
		return
	}

	c.JSON(http.StatusOK, updated.ToPublic())
}

// DELETE /user/:id (admin only)
// Hapus data terkait dulu (transaksi, exchange, complaint), baru user-nya.
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	repo := repositories.UserRepository{}
	if _, err := repo.FindByID(id); errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, "users", "delete", domain.NotFoundError{Resource: "User"})
		return
	} else if err != nil {
		RespondDomainError(c, "users", "delete", err)
		return
	}

	if err := repo.DeleteCascade(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, "users", "delete", domain.NotFoundError{Resource: "User"})
			return
		}
		RespondDomainError(c, "users", "delete", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "users", "delete", "user "+strconv.FormatInt(id, 10)+" dihapus beserta data terkait")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GET /users (admin only)
func GetUsers(c *gin.Context) {
	repo := repositories.UserRepository{}
	users, err := repo.List()
	if err != nil {
		RespondDomainError(c, "users", "list", err)
		return
	}

	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToPublic())
	}
	c.JSON(http.StatusOK, out)
}
