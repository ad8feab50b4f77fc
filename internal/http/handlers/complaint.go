package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/NuryND000/backend-gr-coin-v3/internal/domain"
	"github.com/NuryND000/backend-gr-coin-v3/internal/http/middleware"
	"github.com/NuryND000/backend-gr-coin-v3/internal/repositories"

	"github.com/gin-gonic/gin"
)

type complaintRequest struct {
	Complaint string `json:"complaint"`
}

// POST /complaint/:id
// Sengaja tanpa auth: userId target dikirim caller lewat path (perilaku lama).
func CreateComplaint(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req complaintRequest
	if !BindJSONOrError(c, &req, "Complaint is required") {
		return
	}
	if strings.TrimSpace(req.Complaint) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complaint is required"})
		return
	}

	repo := repositories.ComplaintRepository{}
	complaint, err := repo.Create(userID, req.Complaint)
	if err != nil {
		RespondDomainError(c, "complaint", "create", err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// PUT /complaint/:id — hanya status yang bisa diubah.
func UpdateComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var req statusRequest
	if !BindJSONOrError(c, &req, "Invalid status") {
		return
	}

	repo := repositories.ComplaintRepository{}
	complaint, err := repo.UpdateStatus(id, req.Status)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, "complaint", "update", domain.NotFoundError{Resource: "Complaint"})
		return
	}
	if err != nil {
		RespondDomainError(c, "complaint", "update", err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// DELETE /complaint/:id (admin only)
func DeleteComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	repo := repositories.ComplaintRepository{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondDomainError(c, "complaint", "delete", domain.NotFoundError{Resource: "Complaint"})
			return
		}
		RespondDomainError(c, "complaint", "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}

// GET /complaint — hanya milik caller.
func GetComplaints(c *gin.Context) {
	repo := repositories.ComplaintRepository{}
	list, err := repo.ListByUser(middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, "complaint", "list", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /complaint/all (admin only)
func GetAllComplaints(c *gin.Context) {
	repo := repositories.ComplaintRepository{}
	list, err := repo.ListAll()
	if err != nil {
		RespondDomainError(c, "complaint", "list_all", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
