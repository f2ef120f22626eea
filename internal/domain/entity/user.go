package entity

import "time"

// User representa un usuario del sistema. Puede pertenecer opcionalmente
// a una Company y/o a una Branch (FKs anulables).
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string   // bcrypt hash, nunca plano en dominio después de persistir
	CompanyID    *int64   // nil = sin empresa asociada
	BranchID     *int64   // nil = sin sucursal asociada
	Company      *Company // expansión de la relación en lecturas (nil si no hay FK)
	Branch       *Branch
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Company empresa relacionada; en este servicio solo existe como destino de la FK company_id.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Branch sucursal; destino de la FK branch_id.
type Branch struct {
	ID        int64
	CompanyID *int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
