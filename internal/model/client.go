package model

// Client represents a passenger in the `clientes` directory. Names are
// stored upper-cased so lookups and report display stay consistent.
//
// Fields:
//  ID       – clientes.id_cliente, primary key.
//  Nombre   – clientes.nombre, first name.
//  Apellido – clientes.apellido, last name.
type Client struct {
	ID       uint64 `json:"id_cliente"` // clientes.id_cliente
	Nombre   string `json:"nombre"`     // clientes.nombre
	Apellido string `json:"apellido"`   // clientes.apellido
}
