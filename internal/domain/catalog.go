package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoardGame настольная игра из каталога
type BoardGame struct {
	ID          int64
	Title       string
	Description string
	PlayersMin  *int
	PlayersMax  *int
	PlayTimeMin *int
	Age         *int
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product продукт из каталога (напитки, снеки)
type Product struct {
	ID          int64
	Title       string
	Price       decimal.Decimal
	Description string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
