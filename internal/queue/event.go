// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for them.
package queue

// SaleRecordedEvent is published after a sale commits. It carries enough
// for downstream consumers (audit log, notifications) to act without
// querying the primary database. Amounts travel as decimal strings so no
// consumer re-rounds them.
type SaleRecordedEvent struct {
	TransactionID uint64 `json:"transaction_id"`
	Localizador   string `json:"localizador"`
	NumeroBoleto  string `json:"numero_boleto,omitempty"`
	Tipo          string `json:"tipo"`
	Ruta          string `json:"ruta"`
	ClienteID     uint64 `json:"cliente_id"`
	AerolineaID   uint64 `json:"aerolinea_id"`
	MontoVenta    string `json:"monto_venta"`
	Utilidad      string `json:"utilidad"`
	FeeComision   string `json:"fee_comision"`
	RecordedAt    string `json:"recorded_at"`
}
