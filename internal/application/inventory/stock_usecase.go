package inventory

import (
	"context"
	"time"

	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

// StockUseCase es el motor de ajuste de stock: registra entradas y salidas
// como transacciones atómicas (validar → asentar movimiento → ajustar stock)
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// EntryInput entrada para registrar una entrada de stock.
type EntryInput struct {
	ProductID int64
	Quantity  int64
	UserID    int64 // usuario que ejecuta, resuelto por la capa de acceso
}

// ExitInput entrada para registrar una salida de stock.
type ExitInput struct {
	ProductID int64
	Quantity  int64
	UserID    int64
}

// RegisterEntry suma stock a un producto y asienta el movimiento "E" en la
// misma transacción. Se permite la entrada sobre productos inactivos
// (reabastecimiento administrativo); el producto solo debe existir.
// Bloquea la fila del producto igual que las salidas para no perder
// actualizaciones bajo entradas concurrentes.
func (uc *StockUseCase) RegisterEntry(ctx context.Context, input EntryInput) (*entity.Movement, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		if err := productRepo.UpdateQuantity(p.ID, p.Quantity+input.Quantity); err != nil {
			return err
		}
		m := &entity.Movement{
			ProductID:  p.ID,
			UserID:     input.UserID,
			Type:       entity.MovementTypeEntry,
			Quantity:   input.Quantity,
			OccurredAt: time.Now().UTC(),
		}
		if err := movRepo.Create(m); err != nil {
			return err
		}
		mov = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterExit descuenta stock de un producto activo y asienta el movimiento
// "S". El bloqueo de fila serializa las salidas concurrentes sobre el mismo
// producto: dos peticiones simultáneas no pueden validar disponibilidad con
// la misma cantidad previa. El stock puede quedar exactamente en 0, nunca
// negativo. El movimiento se asienta ANTES de descontar; el trigger de la
// tabla revalida contra el stock original y ambos writes confirman juntos.
func (uc *StockUseCase) RegisterExit(ctx context.Context, input ExitInput) (*entity.Movement, error) {
	if input.ProductID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		p, err := productRepo.GetActiveForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrInactiveProduct
		}
		if input.Quantity > p.Quantity {
			return domain.ErrInsufficientStock
		}

		m := &entity.Movement{
			ProductID:  p.ID,
			UserID:     input.UserID,
			Type:       entity.MovementTypeExit,
			Quantity:   input.Quantity,
			OccurredAt: time.Now().UTC(),
		}
		if err := movRepo.Create(m); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(p.ID, p.Quantity-input.Quantity); err != nil {
			return err
		}
		mov = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// DeleteProduct elimina un producto del catálogo. Regla de negocio, en este
// orden: primero bloquea el borrado por existencias, después por historial
// de movimientos. Corre dentro de una transacción con la fila bloqueada para
// que una entrada concurrente no se cuele entre la validación y el borrado.
func (uc *StockUseCase) DeleteProduct(ctx context.Context, productID int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		p, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Quantity > 0 {
			return domain.ErrProductHasStock
		}
		hasHistory, err := movRepo.HasForProduct(p.ID)
		if err != nil {
			return err
		}
		if hasHistory {
			return domain.ErrProductHasHistory
		}
		return productRepo.Delete(p.ID)
	})
}
