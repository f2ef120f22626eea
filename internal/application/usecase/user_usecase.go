package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/rene-marchioretto/users-api/internal/application/dto"
	"github.com/rene-marchioretto/users-api/internal/domain"
	"github.com/rene-marchioretto/users-api/internal/domain/entity"
	"github.com/rene-marchioretto/users-api/internal/domain/repository"
)

// UserUseCase aplica las reglas de negocio para usuarios. Cada operación es
// un único round trip al puerto de persistencia; los errores del almacén se
// propagan sin traducir más allá de los sentinelas de dominio.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. El password se hashea con bcrypt antes de persistir;
// la unicidad del email la garantiza el índice único del almacén
// (domain.ErrEmailAlreadyExists si colisiona).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		CompanyID:    in.CompanyID,
		BranchID:     in.BranchID,
	}
	created, err := uc.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(created), nil
}

// List devuelve todos los usuarios con Company/Branch expandidas.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.FromUser(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID (domain.ErrUserNotFound si no existe).
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// GetByEmail obtiene un usuario por su email único.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// body llegan al almacén, los ausentes no se tocan. Un patch vacío se rechaza
// antes de cualquier acceso al almacén.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	patch := repository.UserPatch{
		Email: in.Email,
		Name:  in.Name,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	if in.CompanyID.Set {
		patch.CompanyID = repository.NullableRef{Set: true, Value: in.CompanyID.Ptr()}
	}
	if in.BranchID.Set {
		patch.BranchID = repository.NullableRef{Set: true, Value: in.BranchID.Ptr()}
	}
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(updated), nil
}

// Delete elimina el usuario y devuelve el snapshot previo al borrado.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}
