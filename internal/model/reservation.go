package model

import "time"

// Reservation is a booking record in the `reservas` table, keyed by its
// locator (PNR). A reservation is created the first time a locator shows up
// on a sale and is never updated afterwards; several sales (one per
// passenger on the booking) may reference the same locator.
//
// Fields:
//  Localizador – reservas.localizador, natural primary key.
//  FechaVenta  – reservas.fecha_venta, when the locator was first sold.
type Reservation struct {
	Localizador string    // reservas.localizador
	FechaVenta  time.Time // reservas.fecha_venta
}
