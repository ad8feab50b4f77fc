package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain"
	"github.com/NuryND000/backend-gr-coin-v3/internal/http/middleware"
	"github.com/NuryND000/backend-gr-coin-v3/internal/repositories"

	"github.com/gin-gonic/gin"
)

type amountRequest struct {
	Amount float64 `json:"amount"`
}

// POST /coinexchange/:id
// :id adalah userId target (bukan selalu pemilik token; perilaku lama).
func CreateCoinExchange(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
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

	repo := repositories.CoinExchangeRepository{}
	exchange, err := repo.Create(userID, req.Amount)
	if err != nil {
		RespondDomainError(c, "coinexchange", "create", err)
		return
	}

	c.JSON(http.StatusOK, exchange)
}

// PUT /coinexchange/:id
func UpdateCoinExchange(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var req amountRequest
	if !BindJSONOrError(c, &req, "Invalid amount") {
		return
	}

	repo := repositories.CoinExchangeRepository{}
	exchange, err := repo.UpdateAmount(id, req.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, "coinexchange", "update", domain.NotFoundError{Resource: "Coin exchange"})
		return
	}
	if err != nil {
		RespondDomainError(c, "coinexchange", "update", err)
		return
	}

	c.JSON(http.StatusOK, exchange)
}

// DELETE /coinexchange/:id (admin only)
func DeleteCoinExchange(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	repo := repositories.CoinExchangeRepository{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, "coinexchange", "delete", domain.NotFoundError{Resource: "Coin exchange"})
			return
		}
		RespondDomainError(c, "coinexchange", "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coin exchange deleted successfully"})
}

// GET /coinexchange — hanya milik caller.
func GetCoinExchanges(c *gin.Context) {
	repo := repositories.CoinExchangeRepository{}
	list, err := repo.ListByUser(middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, "coinexchange", "list", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /coinexchange/all (admin only) — termasuk data user pemiliknya.
func GetAllCoinExchanges(c *gin.Context) {
	repo := repositories.CoinExchangeRepository{}
	list, err := repo.ListAllWithUser()
	if err != nil {
		RespondDomainError(c, "coinexchange", "list_all", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
