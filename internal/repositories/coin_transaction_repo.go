package repositories

import (
	"database/sql"
	"time"

	"github.com/NuryND000/backend-gr-coin-v3/internal/config"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
)

// CoinTransactionRepository wraps DB access for the coin_transactions table.
type CoinTransactionRepository struct {
	DB *sql.DB
}

func (r CoinTransactionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// Create stores a new redemption request with status "proses".
func (r CoinTransactionRepository) Create(userID, amount int64) (models.CoinTransaction, error) {
	t := models.CoinTransaction{
		UserID: userID,
		Amount: amount,
		Date:   time.Now(),
		Status: models.TransactionStatusProses,
	}

	res, err := r.db().Exec(`
		INSERT INTO coin_transactions (user_id, amount, date, status)
		VALUES (?, ?, ?, ?)
	`, t.UserID, t.Amount, t.Date, t.Status)
	if err != nil {
		return models.CoinTransaction{}, err
	}

	t.ID, err = res.LastInsertId()
	return t, err
}

// GetByID loads one transaction row.
func (r CoinTransactionRepository) GetByID(id int64) (models.CoinTransaction, error) {
	var t models.CoinTransaction
	err := r.db().QueryRow(`
		SELECT id, user_id, amount, date, status FROM coin_transactions WHERE id = ? LIMIT 1
	`, id).Scan(&t.ID, &t.UserID, &t.Amount, &t.Date, &t.Status)
	return t, err
}

// UpdateStatus sets only the status; amount is immutable after creation.
func (r CoinTransactionRepository) UpdateStatus(id int64, status string) (models.CoinTransaction, error) {
	if _, err := r.db().Exec(`UPDATE coin_transactions SET status = ? WHERE id = ?`, status, id); err != nil {
		return models.CoinTransaction{}, err
	}
	return r.GetByID(id)
}

// Delete removes one transaction; sql.ErrNoRows when the id is unknown.
func (r CoinTransactionRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM coin_transactions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUser returns only the caller's transactions.
func (r CoinTransactionRepository) ListByUser(userID int64) ([]models.CoinTransaction, error) {
	return r.list(`SELECT id, user_id, amount, date, status FROM coin_transactions WHERE user_id = ? ORDER BY id`, userID)
}

// ListAll returns every transaction.
func (r CoinTransactionRepository) ListAll() ([]models.CoinTransaction, error) {
	return r.list(`SELECT id, user_id, amount, date, status FROM coin_transactions ORDER BY id`)
}

func (r CoinTransactionRepository) list(query string, args ...any) ([]models.CoinTransaction, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.CoinTransaction{}
	for rows.Next() {
		var t models.CoinTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Date, &t.Status); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
