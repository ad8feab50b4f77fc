package repositories

import (
	"database/sql"
	"time"

	"github.com/NuryND000/backend-gr-coin-v3/internal/config"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
)

// ComplaintRepository wraps DB access for the complaints table.
type ComplaintRepository struct {
	DB *sql.DB
}

func (r ComplaintRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// Create stores a new complaint with status "pending".
func (r ComplaintRepository) Create(userID int64, text string) (models.Complaint, error) {
	k := models.Complaint{
		UserID:    userID,
		Complaint: text,
		Status:    models.ComplaintStatusPending,
		Date:      time.Now(),
	}

	res, err := r.db().Exec(`
		INSERT INTO complaints (user_id, complaint, status, date)
		VALUES (?, ?, ?, ?)
	`, k.UserID, k.Complaint, k.Status, k.Date)
	if err != nil {
		return models.Complaint{}, err
	}

	k.ID, err = res.LastInsertId()
	return k, err
}

// GetByID loads one complaint row.
func (r ComplaintRepository) GetByID(id int64) (models.Complaint, error) {
	var k models.Complaint
	err := r.db().QueryRow(`
		SELECT id, user_id, complaint, status, date FROM complaints WHERE id = ? LIMIT 1
	`, id).Scan(&k.ID, &k.UserID, &k.Complaint, &k.Status, &k.Date)
	return k, err
}

// UpdateStatus sets only the status.
func (r ComplaintRepository) UpdateStatus(id int64, status string) (models.Complaint, error) {
	if _, err := r.db().Exec(`UPDATE complaints SET status = ? WHERE id = ?`, status, id); err != nil {
		return models.Complaint{}, err
	}
	return r.GetByID(id)
}

// Delete removes one complaint; sql.ErrNoRows when the id is unknown.
func (r ComplaintRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM complaints WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUser returns only the caller's complaints.
func (r ComplaintRepository) ListByUser(userID int64) ([]models.Complaint, error) {
	return r.list(`SELECT id, user_id, complaint, status, date FROM complaints WHERE user_id = ? ORDER BY id`, userID)
}

// ListAll returns every complaint.
func (r ComplaintRepository) ListAll() ([]models.Complaint, error) {
	return r.list(`SELECT id, user_id, complaint, status, date FROM complaints ORDER BY id`)
}

func (r ComplaintRepository) list(query string, args ...any) ([]models.Complaint, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Complaint{}
	for rows.Next() {
		var k models.Complaint
		if err := rows.Scan(&k.ID, &k.UserID, &k.Complaint, &k.Status, &k.Date); err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, rows.Err()
}
