package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula el comportamiento del TxRunner de PostgreSQL que importa al
// motor: serialización por transacción (mutex) y rollback total si el
// callback falla (se restaura el snapshot tomado al inicio del Run).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	states    map[string]*entity.InventoryState
	products  map[string]*entity.Product
	movements []*entity.StockMovement

	// failMovementInsert fuerza el fallo del insert del movimiento para
	// verificar la atomicidad ambos-o-ninguno.
	failMovementInsert bool
}

func newMemStore() *memStore {
	return &memStore{
		states:   make(map[string]*entity.InventoryState),
		products: make(map[string]*entity.Product),
	}
}

func (s *memStore) seed(productID string, qty, minLevel int64) {
	s.states[productID] = &entity.InventoryState{
		ProductID:     productID,
		Quantity:      qty,
		MinStockLevel: minLevel,
		UpdatedAt:     time.Now(),
	}
	s.products[productID] = &entity.Product{
		ID:    productID,
		SKU:   "SKU-" + productID,
		Name:  "Producto " + productID,
		Price: decimal.NewFromInt(10),
	}
}

type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	stateRepo repository.InventoryStateRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Snapshot para rollback
	snapStates := make(map[string]*entity.InventoryState, len(r.store.states))
	for k, v := range r.store.states {
		cp := *v
		snapStates[k] = &cp
	}
	snapMovLen := len(r.store.movements)

	err := fn(&memStateRepo{store: r.store}, &memMovementRepo{store: r.store}, nil)
	if err != nil {
		r.store.states = snapStates
		r.store.movements = r.store.movements[:snapMovLen]
	}
	return err
}

type memStateRepo struct{ store *memStore }

func (r *memStateRepo) Create(_ context.Context, state *entity.InventoryState) error {
	cp := *state
	r.store.states[state.ProductID] = &cp
	return nil
}

func (r *memStateRepo) Get(_ context.Context, productID string) (*entity.InventoryState, error) {
	s, ok := r.store.states[productID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStateRepo) GetForUpdate(ctx context.Context, productID string) (*entity.InventoryState, error) {
	// La exclusión por producto ya la da el mutex del Run.
	return r.Get(ctx, productID)
}

func (r *memStateRepo) UpdateQuantity(_ context.Context, productID string, quantity int64, updatedAt time.Time) error {
	s, ok := r.store.states[productID]
	if !ok {
		return domain.ErrNotFound
	}
	s.Quantity = quantity
	s.UpdatedAt = updatedAt
	return nil
}

func (r *memStateRepo) UpdateThresholds(_ context.Context, state *entity.InventoryState) error {
	s, ok := r.store.states[state.ProductID]
	if !ok {
		return domain.ErrNotFound
	}
	s.MinStockLevel = state.MinStockLevel
	s.MaxStockLevel = state.MaxStockLevel
	s.Location = state.Location
	return nil
}

func (r *memStateRepo) ListAll(_ context.Context) ([]repository.InventoryItem, error) {
	var items []repository.InventoryItem
	for id, s := range r.store.states {
		p := r.store.products[id]
		items = append(items, repository.InventoryItem{
			ProductID:     id,
			SKU:           p.SKU,
			ProductName:   p.Name,
			Location:      s.Location,
			Quantity:      s.Quantity,
			MinStockLevel: s.MinStockLevel,
			MaxStockLevel: s.MaxStockLevel,
			Price:         p.Price,
			UpdatedAt:     s.UpdatedAt,
		})
	}
	return items, nil
}

func (r *memStateRepo) ListLowStock(ctx context.Context) ([]repository.InventoryItem, error) {
	all, _ := r.ListAll(ctx)
	var items []repository.InventoryItem
	for _, it := range all {
		if it.Quantity <= it.MinStockLevel {
			items = append(items, it)
		}
	}
	return items, nil
}

type memMovementRepo struct{ store *memStore }

var errInsertForzado = errors.New("insert movimiento: fallo forzado")

func (r *memMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	if r.store.failMovementInsert {
		return errInsertForzado
	}
	cp := *movement
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.store.movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.store.movements[i]
		if productID != "" && m.ProductID != productID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func newUseCase(store *memStore) *inventory.AdjustStockUseCase {
	return inventory.NewAdjustStockUseCase(&memTxRunner{store: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Entrada sobre stock cero: (0, 50) y un movimiento IN 50 en el log.
func TestAdjust_EntradaDesdeCero(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 0, 10)
	uc := newUseCase(store)

	res, err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID:    "p1",
		MovementType: entity.MovementTypeIN,
		Quantity:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.OldQuantity)
	assert.Equal(t, int64(50), res.NewQuantity)

	require.Len(t, store.movements, 1, "debe agregarse exactamente un movimiento")
	assert.Equal(t, entity.MovementTypeIN, store.movements[0].MovementType)
	assert.Equal(t, int64(50), store.movements[0].Quantity)
	assert.Equal(t, int64(50), store.states["p1"].Quantity)
}

// Salida mayor al stock disponible: rechazo con ErrInsufficientStock,
// sin cambio de cantidad y sin movimiento en el log.
func TestAdjust_SalidaInsuficiente_Rechazada(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 50, 10)
	uc := newUseCase(store)

	_, err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID:    "p1",
		MovementType: entity.MovementTypeOUT,
		Quantity:     60,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(50), store.states["p1"].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.movements, "no debe registrarse movimiento")
}

// Ajuste absoluto: fija la cantidad y registra ADJUSTMENT con el valor objetivo.
func TestAdjust_AjusteAbsoluto(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 50, 10)
	uc := newUseCase(store)

	res, err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID:    "p1",
		MovementType: entity.MovementTypeADJUSTMENT,
		Quantity:     30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), res.OldQuantity)
	assert.Equal(t, int64(30), res.NewQuantity)

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeADJUSTMENT, store.movements[0].MovementType)
	assert.Equal(t, int64(30), store.movements[0].Quantity, "el movimiento guarda el valor objetivo, no el delta")
}

// Tipo de movimiento fuera de la enumeración: entrada inválida, nada se abre.
func TestAdjust_TipoInvalido(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 50, 10)
	uc := newUseCase(store)

	for _, tipo := range []string{"", "TRANSFER", "in", "RESET"} {
		_, err := uc.Adjust(context.Background(), inventory.AdjustInput{
			ProductID:    "p1",
			MovementType: tipo,
			Quantity:     5,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidMovementType, "tipo %q debe rechazarse", tipo)
	}
	assert.Empty(t, store.movements)
}

// Producto sin fila de inventario: ErrNotFound.
func TestAdjust_ProductoSinInventario(t *testing.T) {
	store := newMemStore()
	uc := newUseCase(store)

	_, err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID:    "no-existe",
		MovementType: entity.MovementTypeIN,
		Quantity:     5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Validación estricta de la magnitud: IN/OUT exigen > 0 y ADJUSTMENT >= 0.
func TestAdjust_ValidacionMagnitud(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 50, 10)
	uc := newUseCase(store)

	casos := []struct {
		nombre  string
		tipo    string
		qty     int64
		wantErr error
	}{
		{"IN cero", entity.MovementTypeIN, 0, domain.ErrInvalidInput},
		{"IN negativo", entity.MovementTypeIN, -5, domain.ErrInvalidInput},
		{"OUT cero", entity.MovementTypeOUT, 0, domain.ErrInvalidInput},
		{"OUT negativo", entity.MovementTypeOUT, -1, domain.ErrInvalidInput},
		{"ADJUSTMENT negativo", entity.MovementTypeADJUSTMENT, -1, domain.ErrInvalidInput},
		{"ADJUSTMENT cero es válido", entity.MovementTypeADJUSTMENT, 0, nil},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Adjust(context.Background(), inventory.AdjustInput{
				ProductID:    "p1",
				MovementType: c.tipo,
				Quantity:     c.qty,
			})
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Repetir un OUT sin stock suficiente debe rechazar la segunda llamada sin
// tocar la cantidad (el rechazo no tiene efectos acumulables).
func TestAdjust_SalidaInsuficienteRepetida_NoAcumula(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 50, 10)
	uc := newUseCase(store)

	in := inventory.AdjustInput{ProductID: "p1", MovementType: entity.MovementTypeOUT, Quantity: 60}
	_, err := uc.Adjust(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, err = uc.Adjust(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(50), store.states["p1"].Quantity)
	assert.Empty(t, store.movements)
}

// Atomicidad: si el insert del movimiento falla después de actualizar el
// estado, el estado tampoco debe quedar persistido (ambos o ninguno).
func TestAdjust_Atomicidad_FalloEnInsertDeMovimiento(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 20, 10)
	store.failMovementInsert = true
	uc := newUseCase(store)

	_, err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID:    "p1",
		MovementType: entity.MovementTypeIN,
		Quantity:     5,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock, "un fallo de storage no es un rechazo de negocio")

	assert.Equal(t, int64(20), store.states["p1"].Quantity, "el update de estado debe revertirse")
	assert.Empty(t, store.movements)
}

// Dos OUT concurrentes de 6 sobre stock 10: exactamente un éxito y un
// rechazo por stock insuficiente; cantidad final 4, nunca negativa.
func TestAdjust_SalidasConcurrentes(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 10, 0)
	uc := newUseCase(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Adjust(context.Background(), inventory.AdjustInput{
				ProductID:    "p1",
				MovementType: entity.MovementTypeOUT,
				Quantity:     6,
			})
		}(i)
	}
	wg.Wait()

	exitos, rechazos := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			exitos++
		case errors.Is(err, domain.ErrInsufficientStock):
			rechazos++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, exitos, "exactamente un OUT debe confirmarse")
	assert.Equal(t, 1, rechazos, "el otro debe rechazarse por stock insuficiente")
	assert.Equal(t, int64(4), store.states["p1"].Quantity)
	assert.Len(t, store.movements, 1)
}

// Invariante: tras cualquier secuencia de movimientos confirmados la
// cantidad nunca es negativa.
func TestAdjust_CantidadNuncaNegativa(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 0, 0)
	uc := newUseCase(store)

	secuencia := []inventory.AdjustInput{
		{ProductID: "p1", MovementType: entity.MovementTypeIN, Quantity: 5},
		{ProductID: "p1", MovementType: entity.MovementTypeOUT, Quantity: 3},
		{ProductID: "p1", MovementType: entity.MovementTypeOUT, Quantity: 7}, // rechazado
		{ProductID: "p1", MovementType: entity.MovementTypeADJUSTMENT, Quantity: 1},
		{ProductID: "p1", MovementType: entity.MovementTypeOUT, Quantity: 1},
		{ProductID: "p1", MovementType: entity.MovementTypeOUT, Quantity: 1}, // rechazado
	}
	for i, in := range secuencia {
		_, _ = uc.Adjust(context.Background(), in)
		assert.GreaterOrEqual(t, store.states["p1"].Quantity, int64(0),
			"paso %d: la cantidad nunca debe ser negativa", i)
	}
	assert.Equal(t, int64(0), store.states["p1"].Quantity)
	assert.Len(t, store.movements, 4, "solo los movimientos confirmados quedan en el log")
}

// El actor y la referencia del request quedan en el movimiento persistido.
func TestAdjust_RegistraActorYReferencia(t *testing.T) {
	store := newMemStore()
	store.seed("p1", 10, 0)
	uc := newUseCase(store)

	_, err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID:       "p1",
		MovementType:    entity.MovementTypeOUT,
		Quantity:        4,
		ReferenceNumber: "OC-2041",
		Notes:           "despacho bodega central",
		ActorID:         "user-77",
	})
	require.NoError(t, err)
	require.Len(t, store.movements, 1)
	m := store.movements[0]
	assert.Equal(t, "OC-2041", m.ReferenceNumber)
	assert.Equal(t, "despacho bodega central", m.Notes)
	assert.Equal(t, "user-77", m.UserID)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
}
