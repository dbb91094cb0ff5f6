package services

import (
	"fmt"

	"bonded-wms/logger"
	"bonded-wms/models"
	"bonded-wms/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StockLedger keeps the stocks table in step with the movement log.
type StockLedger struct {
	DB        *gorm.DB
	stock     *repositories.StockRepository
	movements *repositories.MovementRepository
}

func NewStockLedger(db *gorm.DB) *StockLedger {
	return &StockLedger{
		DB:        db,
		stock:     repositories.NewStockRepository(db),
		movements: repositories.NewMovementRepository(db),
	}
}

// Record persists a new movement and applies it in one transaction, so a
// movement row never exists without its stock effect.
func (l *StockLedger) Record(m *models.StockMovement) (*models.Stock, error) {
	if err := validateMovement(m); err != nil {
		return nil, err
	}

	var stock *models.Stock
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		if err := l.movements.Create(tx, m); err != nil {
			return err
		}
		var err error
		stock, err = l.apply(tx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

// Apply adds a persisted movement to its stock row: inbound adds the
// quantity, outbound subtracts it, and the row is created at zero on first
// use. Nothing stops the quantity from going negative. A movement is only
// ever applied once; a second call returns ErrMovementAlreadyApplied.
func (l *StockLedger) Apply(m *models.StockMovement) (*models.Stock, error) {
	if err := validateMovement(m); err != nil {
		return nil, err
	}

	var stock *models.Stock
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		stock, err = l.apply(tx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (l *StockLedger) apply(tx *gorm.DB, m *models.StockMovement) (*models.Stock, error) {
	now := tx.NowFunc()
	claimed, err := l.movements.MarkApplied(tx, m.ID, now)
	if err != nil {
		return nil, fmt.Errorf("mark movement %s applied: %w", m.ID, err)
	}
	if !claimed {
		return nil, fmt.Errorf("%w: movement %s", repositories.ErrMovementAlreadyApplied, m.ID)
	}

	stock, err := l.stock.ApplyDelta(tx, m.ProductID, m.WarehouseID, m.Delta())
	if err != nil {
		return nil, err
	}
	m.AppliedAt = &now

	logger.L().Debug("stock movement applied",
		zap.Stringer("movement_id", m.ID),
		zap.Uint("product_id", m.ProductID),
		zap.Uint("warehouse_id", m.WarehouseID),
		zap.String("movement_type", string(m.MovementType)),
		zap.Int("quantity", m.Quantity),
		zap.Int("stock_quantity", stock.Quantity))
	return stock, nil
}

func validateMovement(m *models.StockMovement) error {
	if !m.MovementType.IsValid() {
		return fmt.Errorf("%w: movement_type %q", ErrInvalidMovement, m.MovementType)
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidMovement, m.Quantity)
	}
	if m.Reason == "" {
		m.Reason = models.ReasonAdjustment
	}
	if !m.Reason.IsValid() {
		return fmt.Errorf("%w: reason %q", ErrInvalidMovement, m.Reason)
	}
	return nil
}
