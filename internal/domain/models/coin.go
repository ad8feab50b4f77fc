package models

import "time"

// Status awal mengikuti alur bisnis lama: transaksi tukar koin masuk
// antrian "proses", complaint masuk "pending".
const (
	TransactionStatusProses = "proses"
	ComplaintStatusPending  = "pending"
)

// MinTransactionAmount is the smallest coin redemption the platform accepts.
const MinTransactionAmount = 10000

type CoinExchange struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// CoinExchangeWithUser is the admin list shape: exchange plus its owner.
type CoinExchangeWithUser struct {
	CoinExchange
	User PublicUser `json:"user"`
}

type CoinTransaction struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

type Complaint struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Complaint string    `json:"complaint"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}
