package model

// Airline is a row in the `aerolineas` directory. The API treats airlines
// as read-only reference data; rows are seeded out of band.
type Airline struct {
	ID     uint64 `json:"id_aerolinea"` // aerolineas.id_aerolinea
	Nombre string `json:"nombre"`       // aerolineas.nombre
}
