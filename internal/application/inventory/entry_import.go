package inventory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// EntryImportUseCase registra entradas de stock desde el XML de una factura
// de proveedor (NF-e). Todos los ítems del documento se aplican en una sola
// transacción: un ítem inválido rechaza el documento completo.
type EntryImportUseCase struct {
	txRunner    TxRunner
	parser      InvoiceParser
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
}

// NewEntryImportUseCase construye el importador.
func NewEntryImportUseCase(
	txRunner TxRunner,
	parser InvoiceParser,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
) *EntryImportUseCase {
	return &EntryImportUseCase{txRunner: txRunner, parser: parser, storeRepo: storeRepo, productRepo: productRepo}
}

// ImportEntries parsea el documento y agrega una entrada (IN) más su delta de
// snapshot por cada ítem. El código de producto del XML debe resolver a un
// producto del catálogo; si no, ErrNotFound y nada se persiste.
// Devuelve la cantidad de ítems registrados.
func (uc *EntryImportUseCase) ImportEntries(ctx context.Context, storeID int64, doc []byte) (int, error) {
	if _, err := uc.storeRepo.GetByID(ctx, storeID); err != nil {
		return 0, err
	}

	invoice, err := uc.parser.Parse(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if len(invoice.Items) == 0 {
		return 0, fmt.Errorf("%w: el documento no tiene ítems", domain.ErrInvalidInput)
	}

	// Resolver productos antes de abrir la transacción.
	type resolvedItem struct {
		productID int64
		quantity  decimal.Decimal
		date      time.Time
		reason    string
	}
	now := time.Now().UTC()
	items := make([]resolvedItem, 0, len(invoice.Items))
	for _, it := range invoice.Items {
		productID, convErr := strconv.ParseInt(it.ProductCode, 10, 64)
		if convErr != nil {
			return 0, fmt.Errorf("%w: código de producto %q no numérico", domain.ErrInvalidInput, it.ProductCode)
		}
		if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
			return 0, fmt.Errorf("código %q: %w", it.ProductCode, err)
		}
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return 0, fmt.Errorf("%w: cantidad no positiva para el código %q", domain.ErrInvalidInput, it.ProductCode)
		}

		date := it.IssuedAt
		if date.IsZero() {
			date = invoice.IssuedAt
		}
		if date.IsZero() {
			date = now
		}
		reason := "Entrada por XML"
		if invoice.Supplier != "" {
			reason = fmt.Sprintf("Entrada por XML (%s)", invoice.Supplier)
		}
		items = append(items, resolvedItem{productID: productID, quantity: it.Quantity, date: date, reason: reason})
	}

	txID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, snapRepo repository.SnapshotRepository) error {
		for _, it := range items {
			mov := &entity.Movement{
				TransactionID: txID,
				StoreID:       storeID,
				ProductID:     it.productID,
				Type:          entity.MovementTypeIN,
				Quantity:      it.quantity,
				Reason:        it.reason,
				Date:          it.date,
				CreatedAt:     now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			if err := snapRepo.ApplyDelta(ctx, storeID, it.productID, it.quantity, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
