package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del log append-only sobre PostgreSQL
// (usable con pool o tx). No expone Update ni Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento. user_id se guarda NULL si no hay actor.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, user_id, movement_type, quantity, reference_number, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, userID, movement.MovementType,
		movement.Quantity, movement.ReferenceNumber, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, user_id, movement_type, quantity, reference_number, notes, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var userID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ProductID, &userID, &m.MovementType,
		&m.Quantity, &m.ReferenceNumber, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	if userID != nil {
		m.UserID = *userID
	}
	return &m, nil
}

// List historial más reciente primero (orden total por created_at, id),
// opcionalmente filtrado por producto.
func (r *StockMovementRepo) List(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, user_id, movement_type, quantity, reference_number, notes, created_at
		FROM stock_movements`
	args := []any{}
	if productID != "" {
		query += " WHERE product_id = $1"
		args = append(args, productID)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var userID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &userID, &m.MovementType,
			&m.Quantity, &m.ReferenceNumber, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if userID != nil {
			m.UserID = *userID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
