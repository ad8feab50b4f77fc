package repositories

import (
	"database/sql"
	"errors"

	"github.com/NuryND000/backend-gr-coin-v3/internal/config"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain"
	"github.com/NuryND000/backend-gr-coin-v3/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// UserRepository wraps DB access for the users table.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const userColumns = `id, username, alamat, wilayah, tlp, ewallet, password, role`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Alamat,
		&u.Wilayah,
		&u.Tlp,
		&u.Ewallet,
		&u.PasswordHash,
		&u.Role,
	)
	return u, err
}

// Create inserts a new user. tlp punya unique index; duplikat dikembalikan
// sebagai ValidationError supaya tidak bocor jadi 500.
func (r UserRepository) Create(u *models.User) error {
	res, err := r.db().Exec(`
		INSERT INTO users (username, alamat, wilayah, tlp, ewallet, password, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		u.Username,
		u.Alamat,
		u.Wilayah,
		u.Tlp,
		u.Ewallet,
		u.PasswordHash,
		u.Role,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return domain.ValidationError{Field: "tlp", Msg: "nomor telepon sudah terdaftar", Err: err}
		}
		return err
	}

	u.ID, err = res.LastInsertId()
	return err
}

// FindByPhone loads a user by the tlp login handle.
func (r UserRepository) FindByPhone(tlp string) (models.User, error) {
	return scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE tlp = ? LIMIT 1`, tlp))
}

// FindByID loads a user by id.
func (r UserRepository) FindByID(id int64) (models.User, error) {
	return scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id))
}

// List returns all users.
func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update overwrites profile fields; password hanya ikut di-set jika
// newHash tidak kosong.
func (r UserRepository) Update(id int64, u models.User, newHash string) (models.User, error) {
	var err error
	if newHash != "" {
		_, err = r.db().Exec(`
			UPDATE users
			SET username = ?, alamat = ?, wilayah = ?, tlp = ?, ewallet = ?, role = ?, password = ?
			WHERE id = ?
		`, u.Username, u.Alamat, u.Wilayah, u.Tlp, u.Ewallet, u.Role, newHash, id)
	} else {
		_, err = r.db().Exec(`
			UPDATE users
			SET username = ?, alamat = ?, wilayah = ?, tlp = ?, ewallet = ?, role = ?
			WHERE id = ?
		`, u.Username, u.Alamat, u.Wilayah, u.Tlp, u.Ewallet, u.Role, id)
	}
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.User{}, domain.ValidationError{Field: "tlp", Msg: "nomor telepon sudah terdaftar", Err: err}
		}
		return models.User{}, err
	}
	return r.FindByID(id)
}

// UpdatePassword replaces only the stored hash.
func (r UserRepository) UpdatePassword(id int64, hash string) error {
	_, err := r.db().Exec(`UPDATE users SET password = ? WHERE id = ?`, hash, id)
	return err
}

// DeleteCascade removes the user's coin transactions, coin exchanges and
// complaints, then the user itself, inside one transaction so a failure
// mid-cascade leaves nothing orphaned.
func (r UserRepository) DeleteCascade(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	for _, q := range []string{
		`DELETE FROM coin_transactions WHERE user_id = ?`,
		`DELETE FROM coin_exchanges WHERE user_id = ?`,
		`DELETE FROM complaints WHERE user_id = ?`,
	} {
		if _, err := tx.Exec(q, id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	res, err := tx.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}

	return tx.Commit()
}
