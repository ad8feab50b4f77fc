package db

import "database/sql"

// EnsureSchema creates the tables this service owns when they are missing,
// so the binary can run against an empty database.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id       BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(100) NOT NULL,
			alamat   VARCHAR(255) NOT NULL,
			wilayah  VARCHAR(100) NOT NULL,
			tlp      VARCHAR(32)  NOT NULL,
			ewallet  VARCHAR(100) NOT NULL,
			password VARCHAR(255) NOT NULL,
			role     VARCHAR(16)  NOT NULL DEFAULT 'user',
			UNIQUE KEY uniq_users_tlp (tlp)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS coin_exchanges (
			id      BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			amount  DOUBLE NOT NULL,
			date    DATETIME NOT NULL,
			KEY idx_coin_exchanges_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS coin_transactions (
			id      BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			amount  BIGINT NOT NULL,
			date    DATETIME NOT NULL,
			status  VARCHAR(32) NOT NULL,
			KEY idx_coin_transactions_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS complaints (
			id        BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id   BIGINT NOT NULL,
			complaint TEXT NOT NULL,
			status    VARCHAR(32) NOT NULL,
			date      DATETIME NOT NULL,
			KEY idx_complaints_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
