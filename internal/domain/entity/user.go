package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero" // puede registrar movimientos
	RoleVendedor  = "vendedor"  // solo lectura de inventario
)

// User representa un usuario de la aplicación. El ledger solo usa su ID
// como actor opcional de un movimiento.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | bodeguero | vendedor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
