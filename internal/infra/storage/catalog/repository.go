package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/psqlbuilder"
	"github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"
)

// Repository репозиторий каталога: настольные игры и продукты
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListGames получает настольные игры, опционально только доступные
func (r *Repository) ListGames(ctx context.Context, onlyAvailable bool) ([]*domain.BoardGame, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "title", "description", "players_min", "players_max",
		"play_time_min", "age", "is_available", "created_at", "updated_at",
	).
		From("board_games").
		OrderBy("title ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGames - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGames - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	games := make([]*domain.BoardGame, 0)
	for rows.Next() {
		var g domain.BoardGame
		var createdAt, updatedAt sql.NullTime
		err := rows.Scan(
			&g.ID, &g.Title, &g.Description, &g.PlayersMin, &g.PlayersMax,
			&g.PlayTimeMin, &g.Age, &g.IsAvailable, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListGames - scan row: %v", ErrScanRow, err)
		}
		g.CreatedAt = createdAt.Time
		g.UpdatedAt = updatedAt.Time
		games = append(games, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGames - rows error: %v", ErrScanRow, err)
	}
	return games, nil
}

// CreateGame создает настольную игру
func (r *Repository) CreateGame(ctx context.Context, g *domain.BoardGame) (*domain.BoardGame, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("board_games").
		Columns("title", "description", "players_min", "players_max", "play_time_min", "age", "is_available").
		Values(g.Title, g.Description, g.PlayersMin, g.PlayersMax, g.PlayTimeMin, g.Age, g.IsAvailable).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateGame - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateGame - execute insert: %v", ErrExecQuery, err)
	}
	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time
	return g, nil
}

// UpdateGame обновляет настольную игру
func (r *Repository) UpdateGame(ctx context.Context, id int64, g *domain.BoardGame) (*domain.BoardGame, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("board_games").
		Set("title", g.Title).
		Set("description", g.Description).
		Set("players_min", g.PlayersMin).
		Set("players_max", g.PlayersMax).
		Set("play_time_min", g.PlayTimeMin).
		Set("age", g.Age).
		Set("is_available", g.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateGame - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateGame - execute update: %v", ErrExecQuery, err)
	}

	g.ID = id
	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time
	return g, nil
}

// DeleteGame удаляет настольную игру
func (r *Repository) DeleteGame(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "board_games", id)
}

// ListProducts получает продукты, опционально только доступные
func (r *Repository) ListProducts(ctx context.Context, onlyAvailable bool) ([]*domain.Product, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "title", "price", "description", "is_available", "created_at", "updated_at",
	).
		From("products").
		OrderBy("title ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.IsAvailable, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListProducts - scan row: %v", ErrScanRow, err)
		}
		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProducts - rows error: %v", ErrScanRow, err)
	}
	return products, nil
}

// CreateProduct создает продукт
func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("products").
		Columns("title", "price", "description", "is_available").
		Values(p.Title, p.Price, p.Description, p.IsAvailable).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateProduct - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateProduct - execute insert: %v", ErrExecQuery, err)
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// UpdateProduct обновляет продукт
func (r *Repository) UpdateProduct(ctx context.Context, id int64, p *domain.Product) (*domain.Product, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("title", p.Title).
		Set("price", p.Price).
		Set("description", p.Description).
		Set("is_available", p.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProduct - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProduct - execute update: %v", ErrExecQuery, err)
	}

	p.ID = id
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// DeleteProduct удаляет продукт
func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "products", id)
}

func (r *Repository) deleteByID(ctx context.Context, tableName string, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: deleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: deleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleteByID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
