package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/inventory"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore emula el comportamiento del almacén Postgres que importa para el
// motor de stock: un mutex en lugar del bloqueo de fila (serializa las
// transacciones concurrentes) y un snapshot del estado para emular rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	products  map[int64]*entity.Product
	movements []*entity.Movement
	nextMovID int64
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() ([]*entity.Product, []*entity.Movement, int64) {
	prods := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		prods = append(prods, &cp)
	}
	movs := make([]*entity.Movement, len(s.movements))
	copy(movs, s.movements)
	return prods, movs, s.nextMovID
}

func (s *fakeStore) restore(prods []*entity.Product, movs []*entity.Movement, nextID int64) {
	s.products = make(map[int64]*entity.Product, len(prods))
	for _, p := range prods {
		s.products[p.ID] = p
	}
	s.movements = movs
	s.nextMovID = nextID
}

// fakeTxRunner serializa los callbacks con un mutex (como lo hace el bloqueo
// de fila en la base real) y revierte al snapshot si el callback falla.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prods, movs, nextID := r.store.snapshot()
	if err := fn(&fakeMovementRepo{store: r.store}, &fakeProductRepo{store: r.store}); err != nil {
		r.store.restore(prods, movs, nextID)
		return err
	}
	return nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetActiveForUpdate(id int64) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok || !p.Active {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cur, ok := r.store.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Name = p.Name
	cur.Price = p.Price
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id int64, quantity int64) error {
	cur, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) SetActive(id int64, active bool) error {
	cur, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Active = active
	return nil
}

func (r *fakeProductRepo) List(string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListAvailable() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.store.products, id)
	return nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	// Emula el trigger de la tabla movements para salidas.
	if m.Type == entity.MovementTypeExit {
		p, ok := r.store.products[m.ProductID]
		if !ok || !p.Active {
			return domain.ErrExitInactiveProduct
		}
		if m.Quantity > p.Quantity {
			return domain.ErrExitInsufficientStock
		}
	}
	r.store.nextMovID++
	m.ID = r.store.nextMovID
	r.store.movements = append(r.store.movements, m)
	return nil
}

func (r *fakeMovementRepo) HasForProduct(productID int64) (bool, error) {
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovementRepo) ProductIDsWithHistory() (map[int64]bool, error) {
	ids := make(map[int64]bool)
	for _, m := range r.store.movements {
		ids[m.ProductID] = true
	}
	return ids, nil
}

func (r *fakeMovementRepo) ListWithNames(repository.MovementFilter) ([]*entity.MovementWithNames, error) {
	return nil, nil
}

func newUseCase(products ...*entity.Product) (*inventory.StockUseCase, *fakeStore) {
	store := newFakeStore(products...)
	return inventory.NewStockUseCase(&fakeTxRunner{store: store}), store
}

func producto(id int64, qty int64, active bool) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Tornillos 1/4",
		Price:    decimal.NewFromInt(10),
		Quantity: qty,
		Active:   active,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_SumaStockYAsientaMovimiento(t *testing.T) {
	uc, store := newUseCase(producto(1, 5, true))

	mov, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{ProductID: 1, Quantity: 3, UserID: 9})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.Equal(t, int64(3), mov.Quantity)
	assert.Equal(t, int64(9), mov.UserID)
	assert.NotZero(t, mov.ID)

	assert.Equal(t, int64(8), store.products[1].Quantity)
	assert.Len(t, store.movements, 1)
}

func TestRegisterEntry_ProductoInactivo_Permitida(t *testing.T) {
	// Reabastecimiento administrativo: la entrada no exige producto activo.
	uc, store := newUseCase(producto(1, 0, false))

	_, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{ProductID: 1, Quantity: 10, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10), store.products[1].Quantity)
}

func TestRegisterEntry_CantidadInvalida(t *testing.T) {
	uc, store := newUseCase(producto(1, 5, true))

	for _, qty := range []int64{0, -3} {
		_, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{ProductID: 1, Quantity: qty, UserID: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Equal(t, int64(5), store.products[1].Quantity, "el stock no debe cambiar")
	assert.Empty(t, store.movements, "no debe asentarse ningún movimiento")
}

func TestRegisterEntry_ProductoInexistente(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{ProductID: 99, Quantity: 1, UserID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExit_DescuentaStockYAsientaMovimiento(t *testing.T) {
	uc, store := newUseCase(producto(1, 10, true))

	mov, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 4, UserID: 2})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeExit, mov.Type)
	assert.Equal(t, int64(4), mov.Quantity)
	assert.Equal(t, int64(6), store.products[1].Quantity)
	assert.Len(t, store.movements, 1)
}

func TestRegisterExit_HastaCero(t *testing.T) {
	// El stock puede quedar exactamente en 0.
	uc, store := newUseCase(producto(1, 4, true))

	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 4, UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.products[1].Quantity)
}

func TestRegisterExit_StockInsuficiente(t *testing.T) {
	uc, store := newUseCase(producto(1, 3, true))

	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 4, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), store.products[1].Quantity, "el stock no debe cambiar")
	assert.Empty(t, store.movements)
}

func TestRegisterExit_ProductoInactivo(t *testing.T) {
	uc, store := newUseCase(producto(1, 10, false))

	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 1, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInactiveProduct)
	assert.Empty(t, store.movements)
}

func TestRegisterExit_ProductoInexistente(t *testing.T) {
	// Un producto inexistente es indistinguible de uno inactivo para el caller.
	uc, _ := newUseCase()

	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 99, Quantity: 1, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInactiveProduct)
}

func TestRegisterExit_EntradaInvalida(t *testing.T) {
	uc, _ := newUseCase(producto(1, 10, true))

	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 0, Quantity: 1, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 0, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: -5, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Dos salidas simultáneas de 8 sobre un stock de 10: exactamente una debe
// ganar la carrera y la otra debe fallar por stock insuficiente. El stock
// final es 2, nunca negativo.
func TestRegisterExit_DosSalidasConcurrentes(t *testing.T) {
	uc, store := newUseCase(producto(1, 10, true))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 8, UserID: 2})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var okCount, failCount int
	for err := range errs {
		if err == nil {
			okCount++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			failCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una salida debe tener éxito")
	assert.Equal(t, 1, failCount, "la otra debe fallar por stock insuficiente")
	assert.Equal(t, int64(2), store.products[1].Quantity)
	assert.Len(t, store.movements, 1)
}

// N sobregiros concurrentes nunca dejan stock negativo y el libro de
// movimientos cuadra con el stock final.
func TestRegisterExit_StockNuncaNegativoBajoCarga(t *testing.T) {
	const inicial = 50
	uc, store := newUseCase(producto(1, inicial, true))

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 7, UserID: 2})
		}()
	}
	wg.Wait()

	final := store.products[1].Quantity
	assert.GreaterOrEqual(t, final, int64(0), "el stock nunca debe ser negativo")

	var salidas int64
	for _, m := range store.movements {
		require.Equal(t, entity.MovementTypeExit, m.Type)
		salidas += m.Quantity
	}
	assert.Equal(t, int64(inicial)-salidas, final,
		"el stock final debe cuadrar con la suma del libro de movimientos")
}

// Entradas y salidas mezcladas: el stock final debe ser exactamente el
// inicial más las entradas asentadas menos las salidas asentadas.
func TestStock_LibroCuadraConEntradasYSalidasConcurrentes(t *testing.T) {
	const inicial = 20
	uc, store := newUseCase(producto(1, inicial, true))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = uc.RegisterEntry(context.Background(), inventory.EntryInput{ProductID: 1, Quantity: 5, UserID: 1})
		}()
		go func() {
			defer wg.Done()
			_, _ = uc.RegisterExit(context.Background(), inventory.ExitInput{ProductID: 1, Quantity: 6, UserID: 2})
		}()
	}
	wg.Wait()

	var delta int64
	for _, m := range store.movements {
		switch m.Type {
		case entity.MovementTypeEntry:
			delta += m.Quantity
		case entity.MovementTypeExit:
			delta -= m.Quantity
		}
	}
	assert.Equal(t, int64(inicial)+delta, store.products[1].Quantity)
	assert.GreaterOrEqual(t, store.products[1].Quantity, int64(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_SinStockNiHistorial(t *testing.T) {
	uc, store := newUseCase(producto(1, 0, true))

	err := uc.DeleteProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, store.products, int64(1))
}

func TestDeleteProduct_ConExistencias(t *testing.T) {
	uc, store := newUseCase(producto(1, 3, true))

	err := uc.DeleteProduct(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProductHasStock)
	assert.Contains(t, store.products, int64(1))
}

func TestDeleteProduct_ConHistorial(t *testing.T) {
	// Un producto cuyo stock volvió a 0 pero con movimientos asentados no se
	// puede eliminar: el historial lo referencia.
	uc, store := newUseCase(producto(1, 0, true))
	store.movements = append(store.movements, &entity.Movement{
		ID: 1, ProductID: 1, UserID: 1, Type: entity.MovementTypeEntry, Quantity: 5,
	})

	err := uc.DeleteProduct(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProductHasHistory)
	assert.Contains(t, store.products, int64(1))
}

func TestDeleteProduct_ExistenciasGananAlHistorial(t *testing.T) {
	// Con stock Y historial, el error reportado es el de existencias.
	uc, store := newUseCase(producto(1, 2, true))
	store.movements = append(store.movements, &entity.Movement{
		ID: 1, ProductID: 1, UserID: 1, Type: entity.MovementTypeEntry, Quantity: 2,
	})

	err := uc.DeleteProduct(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProductHasStock)
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.DeleteProduct(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
