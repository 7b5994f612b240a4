package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo para productos. La cantidad se
// maneja exclusivamente vía movimientos; aquí nunca se toca el stock.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo}
}

// Create crea un producto. La cantidad inicial siempre es 0: el stock solo
// entra al sistema por movimientos de entrada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:     name,
		Price:    in.Price,
		Quantity: 0,
		Active:   in.Active,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, false), nil
}

// Update actualiza nombre y precio. No permite modificar la cantidad.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		product.Name = name
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product.Price = in.Price
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	hasHistory, err := uc.movRepo.HasForProduct(product.ID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, hasHistory), nil
}

// Deactivate da de baja un producto: solo cambia el estatus, sin efectos
// sobre la cantidad ni el libro de movimientos.
func (uc *ProductUseCase) Deactivate(id int64) error {
	return uc.setActive(id, false)
}

// Reactivate reactiva un producto dado de baja.
func (uc *ProductUseCase) Reactivate(id int64) error {
	return uc.setActive(id, true)
}

func (uc *ProductUseCase) setActive(id int64, active bool) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(id, active)
}

// List lista productos filtrados por estatus (todos/activo/inactivo),
// marcando cuáles tienen historial de movimientos.
func (uc *ProductUseCase) List(status string) ([]dto.ProductResponse, error) {
	switch status {
	case repository.StatusActive, repository.StatusInactive:
	default:
		status = repository.StatusAll
	}
	list, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	withHistory, err := uc.movRepo.ProductIDsWithHistory()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, withHistory[p.ID]))
	}
	return items, nil
}

// ListAvailableForExit devuelve los productos elegibles para el formulario de
// salida: activos y con stock > 0, ordenados por nombre (así desaparecen de
// la lista al llegar a cero).
func (uc *ProductUseCase) ListAvailableForExit() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, true))
	}
	return items, nil
}

func toProductResponse(p *entity.Product, hasHistory bool) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Quantity:   p.Quantity,
		Active:     p.Active,
		HasHistory: hasHistory,
	}
}
