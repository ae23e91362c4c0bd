package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// GameRequest HTTP request model для создания и обновления игры
type GameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PlayersMin  *int   `json:"playersMin,omitempty"`
	PlayersMax  *int   `json:"playersMax,omitempty"`
	PlayTimeMin *int   `json:"playTimeMin,omitempty"`
	Age         *int   `json:"age,omitempty"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// GameResponse HTTP модель игры
type GameResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PlayersMin  *int   `json:"playersMin,omitempty"`
	PlayersMax  *int   `json:"playersMax,omitempty"`
	PlayTimeMin *int   `json:"playTimeMin,omitempty"`
	Age         *int   `json:"age,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// GamesListResponse HTTP response model
type GamesListResponse struct {
	Games []GameResponse `json:"games"`
}

// ProductRequest HTTP request model для создания и обновления товара
type ProductRequest struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ProductResponse HTTP модель товара
type ProductResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
}

// ProductsListResponse HTTP response model
type ProductsListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *GameRequest) ToDomain() *domain.BoardGame {
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}
	return &domain.BoardGame{
		Title:       r.Title,
		Description: r.Description,
		PlayersMin:  r.PlayersMin,
		PlayersMax:  r.PlayersMax,
		PlayTimeMin: r.PlayTimeMin,
		Age:         r.Age,
		IsAvailable: isAvailable,
	}
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *ProductRequest) ToDomain() (*domain.Product, error) {
	price := decimal.Zero
	if r.Price != "" {
		parsed, err := decimal.NewFromString(r.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %v", r.Price, err)
		}
		price = parsed
	}
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}
	return &domain.Product{
		Title:       r.Title,
		Price:       price,
		Description: r.Description,
		IsAvailable: isAvailable,
	}, nil
}

// FromDomainGame конвертирует domain модель в HTTP response
func FromDomainGame(g *domain.BoardGame) *GameResponse {
	return &GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		PlayersMin:  g.PlayersMin,
		PlayersMax:  g.PlayersMax,
		PlayTimeMin: g.PlayTimeMin,
		Age:         g.Age,
		IsAvailable: g.IsAvailable,
	}
}

// FromDomainGames конвертирует список игр в HTTP response
func FromDomainGames(list []*domain.BoardGame) *GamesListResponse {
	out := &GamesListResponse{Games: make([]GameResponse, 0, len(list))}
	for _, g := range list {
		out.Games = append(out.Games, *FromDomainGame(g))
	}
	return out
}

// FromDomainProduct конвертирует domain модель в HTTP response
func FromDomainProduct(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		IsAvailable: p.IsAvailable,
	}
}

// FromDomainProducts конвертирует список товаров в HTTP response
func FromDomainProducts(list []*domain.Product) *ProductsListResponse {
	out := &ProductsListResponse{Products: make([]ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Products = append(out.Products, *FromDomainProduct(p))
	}
	return out
}
