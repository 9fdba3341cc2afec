package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Crear un producto crea
// también su fila InventoryState (cantidad inicial y umbrales) en la misma
// transacción: el ledger asume que esa fila existe cuando llega un movimiento.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea producto + estado de inventario inicial de forma atómica.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.MinStockLevel < 0 || in.MaxStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	state := &entity.InventoryState{
		ProductID:     product.ID,
		Quantity:      in.InitialQuantity,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		Location:      in.Location,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		stateRepo repository.InventoryStateRepository,
		_ repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return stateRepo.Create(ctx, state)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: out, Limit: page.Limit, Offset: page.Offset}, nil
}

// Update actualiza metadatos del producto y umbrales de inventario.
// No permite modificar la cantidad (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()

	// Umbrales y ubicación viven en InventoryState; se actualizan aparte
	// sin tocar quantity.
	if in.MinStockLevel != nil || in.MaxStockLevel != nil || in.Location != nil {
		err = uc.txRunner.Run(ctx, func(
			stateRepo repository.InventoryStateRepository,
			_ repository.StockMovementRepository,
			productRepo repository.ProductRepository,
		) error {
			state, err := stateRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if state == nil {
				return domain.ErrNotFound
			}
			if in.MinStockLevel != nil {
				state.MinStockLevel = *in.MinStockLevel
			}
			if in.MaxStockLevel != nil {
				state.MaxStockLevel = *in.MaxStockLevel
			}
			if in.Location != nil {
				state.Location = *in.Location
			}
			if err := stateRepo.UpdateThresholds(ctx, state); err != nil {
				return err
			}
			return productRepo.Update(ctx, product)
		})
		if err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. El estado de inventario cae en cascada (FK);
// los movimientos se conservan como rastro de auditoría.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
