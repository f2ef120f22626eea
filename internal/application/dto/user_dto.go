package dto

import (
	"time"

	"github.com/rene-marchioretto/users-api/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,min=1"`
	Password  string `json:"password" validate:"required,min=1"`
	CompanyID *int64 `json:"companyId" validate:"omitempty,gt=0"`
	BranchID  *int64 `json:"branchId" validate:"omitempty,gt=0"`
}

// Validate aplica las reglas de los tags. Se ejecuta antes de cualquier acceso al almacén.
func (r CreateUserRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return newValidationError(err)
	}
	return nil
}

// UpdateUserRequest entrada para actualización parcial: todos los campos opcionales.
// Solo los campos presentes en el body se reenvían al almacén; companyId/branchId
// admiten null explícito para limpiar la FK.
type UpdateUserRequest struct {
	Email     *string       `json:"email" validate:"omitempty,email"`
	Name      *string       `json:"name" validate:"omitempty,min=1"`
	Password  *string       `json:"password" validate:"omitempty,min=1"`
	CompanyID OptionalInt64 `json:"companyId"`
	BranchID  OptionalInt64 `json:"branchId"`
}

// Validate valida los campos presentes y rechaza un body sin ningún campo.
func (r UpdateUserRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return newValidationError(err)
	}
	if r.Empty() {
		return &ValidationError{Message: "el body no trae ningún campo a actualizar"}
	}
	if r.CompanyID.Set && r.CompanyID.Valid && r.CompanyID.Value <= 0 {
		return &ValidationError{Message: "campo 'companyId' inválido (regla gt)"}
	}
	if r.BranchID.Set && r.BranchID.Valid && r.BranchID.Value <= 0 {
		return &ValidationError{Message: "campo 'branchId' inválido (regla gt)"}
	}
	return nil
}

// Empty indica si ningún campo vino en el body.
func (r UpdateUserRequest) Empty() bool {
	return r.Email == nil && r.Name == nil && r.Password == nil &&
		!r.CompanyID.Set && !r.BranchID.Set
}

// UserResponse salida de un usuario (nunca incluye el password ni su hash).
type UserResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	CompanyID *int64           `json:"companyId"`
	BranchID  *int64           `json:"branchId"`
	Company   *CompanyResponse `json:"company,omitempty"`
	Branch    *BranchResponse  `json:"branch,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// CompanyResponse empresa expandida en la respuesta de un usuario.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BranchResponse sucursal expandida en la respuesta de un usuario.
type BranchResponse struct {
	ID        int64     `json:"id"`
	CompanyID *int64    `json:"companyId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUser mapea la entidad a su shape de salida.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	out := &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CompanyID: u.CompanyID,
		BranchID:  u.BranchID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Company != nil {
		out.Company = &CompanyResponse{
			ID:        u.Company.ID,
			Name:      u.Company.Name,
			CreatedAt: u.Company.CreatedAt,
			UpdatedAt: u.Company.UpdatedAt,
		}
	}
	if u.Branch != nil {
		out.Branch = &BranchResponse{
			ID:        u.Branch.ID,
			CompanyID: u.Branch.CompanyID,
			Name:      u.Branch.Name,
			CreatedAt: u.Branch.CreatedAt,
			UpdatedAt: u.Branch.UpdatedAt,
		}
	}
	return out
}
