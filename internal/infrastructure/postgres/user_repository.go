package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rene-marchioretto/users-api/internal/domain"
	"github.com/rene-marchioretto/users-api/internal/domain/entity"
	"github.com/rene-marchioretto/users-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Columnas escalares devueltas por INSERT/UPDATE/DELETE ... RETURNING.
const userColumns = `id, email, name, password_hash, company_id, branch_id, created_at, updated_at`

// Lecturas: fila del usuario expandida con su Company y Branch (LEFT JOIN).
const selectExpanded = `
	SELECT u.id, u.email, u.name, u.password_hash, u.company_id, u.branch_id, u.created_at, u.updated_at,
	       c.id, c.name, c.created_at, c.updated_at,
	       b.id, b.company_id, b.name, b.created_at, b.updated_at
	FROM users u
	LEFT JOIN companies c ON c.id = u.company_id
	LEFT JOIN branches  b ON b.id = u.branch_id`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Cada método ejecuta exactamente una sentencia.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserta el usuario; el almacén asigna id y timestamps.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, company_id, branch_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	var u entity.User
	err := r.pool.QueryRow(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.CompanyID, user.BranchID,
	).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CompanyID, &u.BranchID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios con sus relaciones expandidas.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, selectExpanded+` ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanExpanded(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por su clave primaria.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanExpanded(r.pool.QueryRow(ctx, selectExpanded+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por su email único.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanExpanded(r.pool.QueryRow(ctx, selectExpanded+` WHERE u.email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update aplica solo los campos presentes del patch en una única sentencia.
func (r *UserRepo) Update(ctx context.Context, id int64, patch repository.UserPatch) (*entity.User, error) {
	sets, args := patchSets(patch)
	if len(sets) == 0 {
		return nil, domain.ErrInvalidInput
	}
	sets = append(sets, "updated_at = now()")
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), userColumns,
	)
	var u entity.User
	err := r.pool.QueryRow(ctx, query, append([]any{id}, args...)...).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CompanyID, &u.BranchID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// Delete elimina la fila y devuelve el snapshot previo al borrado.
func (r *UserRepo) Delete(ctx context.Context, id int64) (*entity.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns
	var u entity.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CompanyID, &u.BranchID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &u, nil
}

// patchSets construye los fragmentos SET y sus argumentos a partir de los
// campos presentes del patch. Los placeholders arrancan en $2 ($1 es el id).
func patchSets(patch repository.UserPatch) ([]string, []any) {
	var sets []string
	var args []any
	next := func() int { return len(args) + 2 }
	if patch.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", next()))
		args = append(args, *patch.Email)
	}
	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", next()))
		args = append(args, *patch.Name)
	}
	if patch.PasswordHash != nil {
		sets = append(sets, fmt.Sprintf("password_hash = $%d", next()))
		args = append(args, *patch.PasswordHash)
	}
	if patch.CompanyID.Set {
		sets = append(sets, fmt.Sprintf("company_id = $%d", next()))
		args = append(args, patch.CompanyID.Value)
	}
	if patch.BranchID.Set {
		sets = append(sets, fmt.Sprintf("branch_id = $%d", next()))
		args = append(args, patch.BranchID.Value)
	}
	return sets, args
}

// scanExpanded escanea una fila del SELECT expandido y arma la entidad con
// sus relaciones (las columnas del JOIN llegan como NULL si no hay FK).
func scanExpanded(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var cID, bID, bCompanyID *int64
	var cName, bName *string
	var cCreated, cUpdated, bCreated, bUpdated *time.Time
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CompanyID, &u.BranchID,
		&u.CreatedAt, &u.UpdatedAt,
		&cID, &cName, &cCreated, &cUpdated,
		&bID, &bCompanyID, &bName, &bCreated, &bUpdated,
	)
	if err != nil {
		return nil, err
	}
	if cID != nil {
		u.Company = &entity.Company{ID: *cID, Name: *cName, CreatedAt: *cCreated, UpdatedAt: *cUpdated}
	}
	if bID != nil {
		u.Branch = &entity.Branch{ID: *bID, CompanyID: bCompanyID, Name: *bName, CreatedAt: *bCreated, UpdatedAt: *bUpdated}
	}
	return &u, nil
}
