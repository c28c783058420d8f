// Package service holds the business operations that span repositories.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/strokerox/agenciaHG/internal/model"
	"github.com/strokerox/agenciaHG/internal/repository"
	"github.com/strokerox/agenciaHG/internal/utils"
)

const dateLayout = "2006-01-02"

// ErrValidation marks input rejections detected before any store access.
// Handlers answer these with 400 instead of 500.
var ErrValidation = errors.New("invalid sale input")

// SaleInput carries one sale submission as it arrives over the wire. The
// monetary fields are deliberately `any`: the forms submit them as numbers
// or strings interchangeably and absent/garbage values count as zero.
type SaleInput struct {
	NumeroBoleto string `json:"numero_boleto"`
	Tipo         string `json:"tipo"`
	Ruta         string `json:"ruta"`
	FechaIda     string `json:"fecha_ida"`
	FechaRetorno string `json:"fecha_retorno"`
	MontoNeto    any    `json:"monto_neto"`
	FeeEmision   any    `json:"fee_emision"`
	MontoVenta   any    `json:"monto_venta"`
	AerolineaID  uint64 `json:"aerolinea_id"`
	ClienteID    uint64 `json:"cliente_id"`
	Localizador  string `json:"localizador"`
}

// SaleResult reports the persisted sale plus the derived amounts so the
// caller can display them without re-querying.
type SaleResult struct {
	TransactionID uint64
	MontoVenta    decimal.Decimal
	Utilidad      decimal.Decimal
	Comision      decimal.Decimal
}

// SaleRecorder registers sales: it validates the submission, computes
// utilidad and the agent commission, resolves the booking locator, and
// persists the boleto row — all inside one transaction. Dependencies are
// injected at construction; the recorder owns no global state.
type SaleRecorder struct {
	db           *sql.DB
	reservations *repository.ReservationRepo
	sales        *repository.SaleRepo
	rate         decimal.Decimal // commission as a fraction of utilidad
}

func NewSaleRecorder(db *sql.DB, reservations *repository.ReservationRepo, sales *repository.SaleRepo, rate decimal.Decimal) *SaleRecorder {
	if db == nil || reservations == nil || sales == nil {
		panic("nil dependency passed to NewSaleRecorder")
	}
	return &SaleRecorder{db: db, reservations: reservations, sales: sales, rate: rate}
}

// Record registers one sale. On any failure after BeginTx the transaction
// rolls back fully: no boleto row and no freshly-created reserva row
// survive a failed attempt.
func (s *SaleRecorder) Record(ctx context.Context, in SaleInput) (SaleResult, error) {
	sale, err := s.buildSale(in)
	if err != nil {
		return SaleResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaleResult{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// The reserva row must exist before the boleto FK can point at it.
	if _, err := s.reservations.FindOrCreateTx(ctx, tx, sale.Localizador); err != nil {
		return SaleResult{}, err
	}
	if err := s.sales.CreateTx(ctx, tx, sale); err != nil {
		return SaleResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return SaleResult{}, err
	}
	committed = true

	return SaleResult{
		TransactionID: sale.ID,
		MontoVenta:    sale.MontoVenta,
		Utilidad:      sale.Utilidad,
		Comision:      sale.FeeComision,
	}, nil
}

// buildSale validates the submission and computes the derived fields. It
// touches no storage, so a rejection here costs nothing.
func (s *SaleRecorder) buildSale(in SaleInput) (*model.Sale, error) {
	ruta := strings.TrimSpace(in.Ruta)
	if ruta == "" {
		return nil, fmt.Errorf("%w: ruta is required", ErrValidation)
	}
	locator := strings.TrimSpace(in.Localizador)
	if locator == "" {
		return nil, fmt.Errorf("%w: localizador is required", ErrValidation)
	}
	if in.ClienteID == 0 {
		return nil, fmt.Errorf("%w: cliente_id is required", ErrValidation)
	}
	if in.AerolineaID == 0 {
		return nil, fmt.Errorf("%w: aerolinea_id is required", ErrValidation)
	}

	tipo := strings.ToUpper(strings.TrimSpace(in.Tipo))
	if tipo == "" {
		tipo = model.SaleTypeTicket
	}

	ida, err := parseRequiredDate(in.FechaIda, "fecha_ida")
	if err != nil {
		return nil, err
	}
	retorno, err := parseOptionalDate(in.FechaRetorno, "fecha_retorno")
	if err != nil {
		return nil, err
	}

	neto := utils.ParseAmount(in.MontoNeto)
	fee := utils.ParseAmount(in.FeeEmision)
	venta := utils.ParseAmount(in.MontoVenta)

	// utilidad = venta - neto - fee; comision = utilidad * rate.
	// A sale below cost yields a negative utilidad and a negative
	// comision; the agent owes that share back, so neither is clamped.
	utilidad := venta.Sub(neto).Sub(fee)
	comision := utilidad.Mul(s.rate)

	var numero *string
	if n := strings.TrimSpace(in.NumeroBoleto); n != "" {
		numero = &n
	}

	return &model.Sale{
		NumeroBoleto: numero,
		Tipo:         tipo,
		Ruta:         ruta,
		FechaIda:     ida,
		FechaRetorno: retorno,
		MontoNeto:    neto,
		FeeEmision:   fee,
		MontoVenta:   venta,
		Utilidad:     utilidad,
		FeeComision:  comision,
		AirlineID:    in.AerolineaID,
		ClientID:     in.ClienteID,
		Localizador:  locator,
	}, nil
}

func parseRequiredDate(s, field string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrValidation, field)
	}
	return t, nil
}

// parseOptionalDate maps an empty string to nil so the column stores NULL,
// never an empty-string literal the DATE type would reject.
func parseOptionalDate(s, field string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrValidation, field)
	}
	return &t, nil
}
