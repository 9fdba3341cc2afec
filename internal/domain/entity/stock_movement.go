package entity

import "time"

// Tipos de movimiento de inventario (enumeración cerrada; cualquier otro
// valor se rechaza como entrada inválida, nunca se persiste).
const (
	MovementTypeIN         = "IN"         // entrada: suma la magnitud al stock
	MovementTypeOUT        = "OUT"        // salida: resta la magnitud del stock
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste: fija el stock al valor absoluto
)

// ValidMovementType reporta si t pertenece a la enumeración.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del log de movimientos: una fila por
// operación confirmada del ledger, nunca se actualiza ni se borra.
// Quantity guarda el valor tal como lo pidió el caller: magnitud para IN/OUT,
// valor absoluto objetivo para ADJUSTMENT.
type StockMovement struct {
	ID              string
	ProductID       string
	UserID          string // actor opcional; vacío si no hay usuario autenticado
	MovementType    string
	Quantity        int64
	ReferenceNumber string
	Notes           string
	CreatedAt       time.Time
}
