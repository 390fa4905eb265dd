package usecase

import (
	"time"

	"github.com/jhoicas/costos-inventario/internal/application/dto"
	"github.com/jhoicas/costos-inventario/internal/domain/entity"
	"github.com/jhoicas/costos-inventario/pkg/config"
	"github.com/jhoicas/costos-inventario/pkg/logger"
)

// StockUseCase casos de uso sobre un producto: alta, entradas, salidas y resumen.
type StockUseCase struct {
	cfg config.InventoryConfig
	log *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(cfg config.InventoryConfig, log *logger.Logger) *StockUseCase {
	return &StockUseCase{cfg: cfg, log: log}
}

// Create crea el producto; los límites de stock no indicados se toman de la configuración.
func (uc *StockUseCase) Create(in dto.ProductRequest) (*entity.Product, error) {
	minStock, maxStock := uc.cfg.MinStock, uc.cfg.MaxStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	if in.MaxStock != nil {
		maxStock = *in.MaxStock
	}
	p, err := entity.NewProduct(entity.ProductParams{
		Code:      in.Code,
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		ExpiresAt: in.ExpiresAt,
		MinStock:  &minStock,
		MaxStock:  &maxStock,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("code", in.Code).Msg("producto rechazado")
		return nil, err
	}
	return p, nil
}

// Receive registra una entrada de stock.
func (uc *StockUseCase) Receive(p *entity.Product, amount int) error {
	log := uc.log.With().Str("code", p.Code).Int("amount", amount).Logger()
	if err := p.AddStock(amount); err != nil {
		log.Warn().Err(err).Int("quantity", p.Quantity).Msg("entrada rechazada")
		return err
	}
	log.Info().Int("quantity", p.Quantity).Msg("entrada registrada")
	return nil
}

// Dispatch registra una salida de stock. Devuelve false si no había stock suficiente.
func (uc *StockUseCase) Dispatch(p *entity.Product, amount int) (bool, error) {
	log := uc.log.With().Str("code", p.Code).Int("amount", amount).Logger()
	ok, err := p.RemoveStock(amount)
	if err != nil {
		log.Warn().Err(err).Msg("salida rechazada")
		return false, err
	}
	if !ok {
		log.Info().Int("quantity", p.Quantity).Msg("stock insuficiente")
		return false, nil
	}
	if p.IsLowStock() {
		log.Warn().Int("quantity", p.Quantity).Int("min_stock", p.MinStock).Msg("stock bajo el mínimo")
	}
	return true, nil
}

// Summarize calcula las cifras derivadas del producto en la fecha ref (cero = ahora).
func (uc *StockUseCase) Summarize(p *entity.Product, ref time.Time) dto.ProductSummary {
	return dto.ProductSummary{
		Code:         p.Code,
		Name:         p.Name,
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		TotalValue:   p.TotalValue(),
		LowStock:     p.IsLowStock(),
		ExpiresAt:    p.ExpiresAt,
		WithinExpiry: p.IsWithinExpiry(ref),
	}
}
