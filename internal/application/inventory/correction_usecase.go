package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// Motivos estándar de las correcciones (quedan en el libro como auditoría).
const (
	reasonManualAdd      = "Mantenimiento: agregar stock"
	reasonManualRemove   = "Mantenimiento: retirar stock"
	reasonInventoryCount = "Conteo de inventario"
)

// CorrectionUseCase aplica correcciones de stock: agregar, retirar, transferir
// entre tiendas y registrar conteos físicos. Cada operación escribe el delta
// de snapshot y los movimientos del libro en UNA transacción — una corrección
// aplicada a medias corrompería la invariante "siempre reconciliable".
type CorrectionUseCase struct {
	txRunner    TxRunner
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
}

// NewCorrectionUseCase construye el caso de uso de correcciones.
func NewCorrectionUseCase(
	txRunner TxRunner,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
) *CorrectionUseCase {
	return &CorrectionUseCase{txRunner: txRunner, storeRepo: storeRepo, productRepo: productRepo}
}

// AddStock suma cantidad al snapshot y agrega una entrada (IN) al libro.
func (uc *CorrectionUseCase) AddStock(ctx context.Context, storeID, productID int64, qty decimal.Decimal, note string) error {
	return uc.applyDirect(ctx, storeID, productID, qty, entity.MovementTypeIN, withNote(reasonManualAdd, note))
}

// RemoveStock resta cantidad del snapshot y agrega una salida (OUT) al libro.
// No se bloquea si el resultado queda negativo: es una corrección y el motor
// de reconciliación reporta la inconsistencia si la hubiera.
func (uc *CorrectionUseCase) RemoveStock(ctx context.Context, storeID, productID int64, qty decimal.Decimal, note string) error {
	return uc.applyDirect(ctx, storeID, productID, qty, entity.MovementTypeOUT, withNote(reasonManualRemove, note))
}

func (uc *CorrectionUseCase) applyDirect(ctx context.Context, storeID, productID int64, qty decimal.Decimal, movType, reason string) error {
	if !qty.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if err := uc.ensureStoreAndProduct(ctx, storeID, productID); err != nil {
		return err
	}

	now := time.Now().UTC()
	txID := uuid.New().String()
	delta := qty
	if movType == entity.MovementTypeOUT {
		delta = qty.Neg()
	}

	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, snapRepo repository.SnapshotRepository) error {
		if err := snapRepo.ApplyDelta(ctx, storeID, productID, delta, now); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.Movement{
			TransactionID: txID,
			StoreID:       storeID,
			ProductID:     productID,
			Type:          movType,
			Quantity:      qty,
			Reason:        reason,
			Date:          now,
			CreatedAt:     now,
		})
	})
}

// Transfer mueve cantidad de una tienda a otra: debita el origen, acredita el
// destino y agrega exactamente dos movimientos (OUT en origen, IN en destino)
// con el mismo transaction id, todo o nada.
func (uc *CorrectionUseCase) Transfer(ctx context.Context, fromStoreID, toStoreID, productID int64, qty decimal.Decimal) error {
	if fromStoreID == toStoreID {
		return fmt.Errorf("%w: origen y destino deben ser tiendas distintas", domain.ErrInvalidInput)
	}
	if !qty.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if err := uc.ensureStoreAndProduct(ctx, fromStoreID, productID); err != nil {
		return err
	}
	if _, err := uc.storeRepo.GetByID(ctx, toStoreID); err != nil {
		return err
	}

	now := time.Now().UTC()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, snapRepo repository.SnapshotRepository) error {
		if err := snapRepo.ApplyDelta(ctx, fromStoreID, productID, qty.Neg(), now); err != nil {
			return err
		}
		if err := snapRepo.ApplyDelta(ctx, toStoreID, productID, qty, now); err != nil {
			return err
		}
		out := &entity.Movement{
			TransactionID: txID,
			StoreID:       fromStoreID,
			ProductID:     productID,
			Type:          entity.MovementTypeOUT,
			Quantity:      qty,
			Reason:        fmt.Sprintf("Mantenimiento: transferencia (salida hacia tienda %d)", toStoreID),
			Date:          now,
			CreatedAt:     now,
		}
		if err := movRepo.Create(ctx, out); err != nil {
			return err
		}
		in := &entity.Movement{
			TransactionID: txID,
			StoreID:       toStoreID,
			ProductID:     productID,
			Type:          entity.MovementTypeIN,
			Quantity:      qty,
			Reason:        fmt.Sprintf("Mantenimiento: transferencia (entrada desde tienda %d)", fromStoreID),
			Date:          now,
			CreatedAt:     now,
		}
		return movRepo.Create(ctx, in)
	})
}

// RegisterCount registra un conteo físico: reemplaza el snapshot con la
// cantidad absoluta contada (con count_time) y agrega al libro un ADJUSTMENT
// con el delta firmado contra el stock reconstruido al instante del conteo.
// Así la reproducción desde cualquier ancla anterior sigue siendo consistente.
func (uc *CorrectionUseCase) RegisterCount(ctx context.Context, storeID, productID int64, counted decimal.Decimal, countTime time.Time) error {
	if counted.IsNegative() {
		return fmt.Errorf("%w: un conteo no puede ser negativo", domain.ErrInvalidInput)
	}
	if err := uc.ensureStoreAndProduct(ctx, storeID, productID); err != nil {
		return err
	}
	if countTime.IsZero() {
		countTime = time.Now().UTC()
	}

	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, snapRepo repository.SnapshotRepository) error {
		// Reconstrucción dentro de la misma tx para un delta exacto. Un stock
		// previo inconsistente no bloquea el conteo: el conteo ES la corrección.
		stockUC := NewStockUseCase(movRepo, snapRepo, uc.productRepo)
		current, err := stockUC.StockAt(ctx, storeID, productID, countTime)
		if err != nil && !errors.Is(err, domain.ErrInconsistentLedger) {
			return err
		}

		delta := counted.Sub(current)
		adj := &entity.Movement{
			TransactionID: txID,
			StoreID:       storeID,
			ProductID:     productID,
			Type:          entity.MovementTypeADJUSTMENT,
			Quantity:      delta,
			Reason:        reasonInventoryCount,
			Date:          countTime,
			CreatedAt:     time.Now().UTC(),
		}
		if err := movRepo.Create(ctx, adj); err != nil {
			return err
		}

		ct := countTime
		return snapRepo.Put(ctx, &entity.StockSnapshot{
			StoreID:     storeID,
			ProductID:   productID,
			Quantity:    counted,
			CountTime:   &ct,
			UpdatedTime: countTime,
		})
	})
}

func (uc *CorrectionUseCase) ensureStoreAndProduct(ctx context.Context, storeID, productID int64) error {
	if _, err := uc.storeRepo.GetByID(ctx, storeID); err != nil {
		return err
	}
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	return nil
}

func withNote(reason, note string) string {
	if note == "" {
		return reason
	}
	return reason + " (" + note + ")"
}
