package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale types stored in boletos.tipo.
const (
	SaleTypeTicket      = "BOLETO"
	SaleTypeReservation = "RESERVA"
)

// Sale is a row in the `boletos` table: one ticket or reservation-only entry
// sold to a single passenger. The monetary fields use decimal values so that
// utilidad and fee_comision stay exact to the cent.
//
// Fields:
//  ID           – boletos.id_transaccion, primary key.
//  NumeroBoleto – boletos.numero_boleto, airline ticket number (nullable,
//                 reservation-only sales have none).
//  Tipo         – boletos.tipo, BOLETO or RESERVA.
//  Ruta         – boletos.ruta, e.g. "MIA-BOG-MIA".
//  FechaIda     – boletos.fecha_ida, departure date.
//  FechaRetorno – boletos.fecha_retorno, return date (nullable for one-way).
//  MontoNeto    – boletos.monto_neto, agency cost.
//  FeeEmision   – boletos.fee_emision, issuance fee.
//  MontoVenta   – boletos.monto_venta, amount charged to the client.
//  Utilidad     – boletos.utilidad, monto_venta - monto_neto - fee_emision.
//  FeeComision  – boletos.fee_comision, agent share of utilidad.
//  AirlineID    – boletos.aerolinea_id (FK aerolineas).
//  ClientID     – boletos.cliente_id (FK clientes).
//  Localizador  – boletos.localizador_id (FK reservas.localizador).
type Sale struct {
	ID           uint64          // boletos.id_transaccion
	NumeroBoleto *string         // boletos.numero_boleto (nullable)
	Tipo         string          // boletos.tipo
	Ruta         string          // boletos.ruta
	FechaIda     time.Time       // boletos.fecha_ida
	FechaRetorno *time.Time      // boletos.fecha_retorno (nullable)
	MontoNeto    decimal.Decimal // boletos.monto_neto
	FeeEmision   decimal.Decimal // boletos.fee_emision
	MontoVenta   decimal.Decimal // boletos.monto_venta
	Utilidad     decimal.Decimal // boletos.utilidad
	FeeComision  decimal.Decimal // boletos.fee_comision
	AirlineID    uint64          // boletos.aerolinea_id
	ClientID     uint64          // boletos.cliente_id
	Localizador  string          // boletos.localizador_id
}

// SaleView is one row of the sales report: the boletos row joined with the
// passenger name, airline name and locator. Joined columns are pointers so
// that history stays visible when a related directory row has been removed.
type SaleView struct {
	ID           uint64          `json:"id_transaccion"`
	Localizador  *string         `json:"localizador"`
	NumeroBoleto *string         `json:"numero_boleto"`
	Pasajero     *string         `json:"pasajero"`
	Aerolinea    *string         `json:"aerolinea"`
	Ruta         string          `json:"ruta"`
	FechaIda     string          `json:"fecha_ida"`
	MontoVenta   decimal.Decimal `json:"monto_venta"`
	Utilidad     decimal.Decimal `json:"utilidad"`
	FeeComision  decimal.Decimal `json:"fee_comision"`
}
