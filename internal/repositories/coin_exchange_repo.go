package repositories

import (
	"database/sql"
	"time"

	"github.com/NuryND000/backend-gr-coin-v3/internal/config"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"
)

// CoinExchangeRepository wraps DB access for the coin_exchanges table.
type CoinExchangeRepository struct {
	DB *sql.DB
}

func (r CoinExchangeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// Create stores a new exchange stamped with the server-side date.
func (r CoinExchangeRepository) Create(userID int64, amount float64) (models.CoinExchange, error) {
	e := models.CoinExchange{
		UserID: userID,
		Amount: amount,
		Date:   time.Now(),
	}

	res, err := r.db().Exec(`
		INSERT INTO coin_exchanges (user_id, amount, date)
		VALUES (?, ?, ?)
	`, e.UserID, e.Amount, e.Date)
	if err != nil {
		return models.CoinExchange{}, err
	}

	e.ID, err = res.LastInsertId()
	return e, err
}

// GetByID loads one exchange row.
func (r CoinExchangeRepository) GetByID(id int64) (models.CoinExchange, error) {
	var e models.CoinExchange
	err := r.db().QueryRow(`
		SELECT id, user_id, amount, date FROM coin_exchanges WHERE id = ? LIMIT 1
	`, id).Scan(&e.ID, &e.UserID, &e.Amount, &e.Date)
	return e, err
}

// UpdateAmount overwrites amount by id and returns the fresh row.
func (r CoinExchangeRepository) UpdateAmount(id int64, amount float64) (models.CoinExchange, error) {
	if _, err := r.db().Exec(`UPDATE coin_exchanges SET amount = ? WHERE id = ?`, amount, id); err != nil {
		return models.CoinExchange{}, err
	}
	return r.GetByID(id)
}

// Delete removes one exchange; sql.ErrNoRows when the id is unknown.
func (r CoinExchangeRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM coin_exchanges WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUser returns only the caller's exchanges.
func (r CoinExchangeRepository) ListByUser(userID int64) ([]models.CoinExchange, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, amount, date FROM coin_exchanges WHERE user_id = ? ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.CoinExchange{}
	for rows.Next() {
		var e models.CoinExchange
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Date); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListAllWithUser returns every exchange joined with its owning user.
func (r CoinExchangeRepository) ListAllWithUser() ([]models.CoinExchangeWithUser, error) {
	rows, err := r.db().Query(`
		SELECT
			e.id, e.user_id, e.amount, e.date,
			u.id, u.username, u.alamat, u.wilayah, u.tlp, u.ewallet, u.role
		FROM coin_exchanges e
		JOIN users u ON u.id = e.user_id
		ORDER BY e.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.CoinExchangeWithUser{}
	for rows.Next() {
		var e models.CoinExchangeWithUser
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Amount, &e.Date,
			&e.User.ID, &e.User.Username, &e.User.Alamat, &e.User.Wilayah,
			&e.User.Tlp, &e.User.Ewallet, &e.User.Role,
		); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
