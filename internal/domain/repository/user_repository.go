package repository

import (
	"context"

	"github.com/rene-marchioretto/users-api/internal/domain/entity"
)

// NullableRef valor tri-estado para una FK anulable en un patch:
// Set=false -> el campo no vino en la petición (no tocar);
// Set=true, Value=nil -> vino explícitamente null (limpiar la FK);
// Set=true, Value!=nil -> nueva referencia.
type NullableRef struct {
	Set   bool
	Value *int64
}

// Ref construye una referencia presente con valor.
func Ref(id int64) NullableRef {
	return NullableRef{Set: true, Value: &id}
}

// NullRef construye una referencia presente y explícitamente nula.
func NullRef() NullableRef {
	return NullableRef{Set: true}
}

// UserPatch campos a modificar en una actualización parcial.
// Un puntero nil (o NullableRef con Set=false) significa "campo ausente":
// el valor almacenado no se toca.
type UserPatch struct {
	Email        *string
	Name         *string
	PasswordHash *string
	CompanyID    NullableRef
	BranchID     NullableRef
}

// Empty indica si el patch no trae ningún campo presente.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Name == nil && p.PasswordHash == nil &&
		!p.CompanyID.Set && !p.BranchID.Set
}

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure. Cada método es exactamente
// un round trip al almacén.
type UserRepository interface {
	// Create inserta el usuario y devuelve la fila creada (ID y timestamps asignados por el almacén).
	// Devuelve domain.ErrEmailAlreadyExists si el email ya existe y
	// domain.ErrInvalidReference si company_id/branch_id no referencian filas existentes.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// List devuelve todos los usuarios con Company/Branch expandidas.
	List(ctx context.Context) ([]*entity.User, error)
	// GetByID devuelve el usuario o domain.ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail devuelve el usuario con ese email único o domain.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update aplica solo los campos presentes del patch y devuelve la fila resultante.
	Update(ctx context.Context, id int64, patch UserPatch) (*entity.User, error)
	// Delete elimina la fila y devuelve el snapshot previo al borrado.
	Delete(ctx context.Context, id int64) (*entity.User, error)
}
