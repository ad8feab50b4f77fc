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

	"github.com/gin-gonic/gin"
)

// POST /cointransaction
// userId diambil dari token, bukan dari path.
func CreateCoinTransaction(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req amountRequest
	if !BindJSONOrError(c, &req, "Invalid amount") {
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}
	if req.Amount < models.MinTransactionAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Minimal tukar koin adalah 10.000"})
		return
	}

	repo := repositories.CoinTransactionRepository{}
	trx, err := repo.Create(userID, int64(req.Amount))
	if err != nil {
		RespondDomainError(c, "cointransaction", "create", err)
		return
	}

	c.JSON(http.StatusCreated, trx)
}

type statusRequest struct {
	Status string `json:"status"`
}

// PUT /cointransaction/:id — hanya status yang bisa diubah.
func UpdateCoinTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var req statusRequest
	if !BindJSONOrError(c, &req, "Invalid status") {
		return
	}

	repo := repositories.CoinTransactionRepository{}
	trx, err := repo.UpdateStatus(id, req.Status)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, "cointransaction", "update", domain.NotFoundError{Resource: "Coin transaction"})
		return
	}
	if err != nil {
		RespondDomainError(c, "cointransaction", "update", err)
		return
	}

	c.JSON(http.StatusOK, trx)
}

// DELETE /cointransaction/:id (admin only)
func DeleteCoinTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	repo := repositories.CoinTransactionRepository{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, "cointransaction", "delete", domain.NotFoundError{Resource: "Coin transaction"})
			return
		}
		RespondDomainError(c, "cointransaction", "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coin transaction deleted successfully"})
}

// GET /cointransaction — hanya milik caller.
func GetCoinTransactions(c *gin.Context) {
	repo := repositories.CoinTransactionRepository{}
	list, err := repo.ListByUser(middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, "cointransaction", "list", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /cointransaction/all (admin only)
func GetAllCoinTransactions(c *gin.Context) {
	repo := repositories.CoinTransactionRepository{}
	list, err := repo.ListAll()
	if err != nil {
		RespondDomainError(c, "cointransaction", "list_all", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
