package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rene-marchioretto/users-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// CreateUserRequest
// ──────────────────────────────────────────────────────────────────────────────

func validCreate() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    "a@x.com",
		Name:     "A",
		Password: "secreto123",
	}
}

func TestCreateUserRequest_Valida(t *testing.T) {
	in := validCreate()
	require.NoError(t, in.Validate())

	companyID := int64(7)
	in.CompanyID = &companyID
	require.NoError(t, in.Validate())
}

func TestCreateUserRequest_EmailInvalido(t *testing.T) {
	in := validCreate()
	in.Email = "no-es-un-email"
	err := in.Validate()
	require.Error(t, err)
	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "Email")
}

func TestCreateUserRequest_CamposRequeridos(t *testing.T) {
	cases := map[string]dto.CreateUserRequest{
		"sin email":    {Name: "A", Password: "secreto123"},
		"sin name":     {Email: "a@x.com", Password: "secreto123"},
		"sin password": {Email: "a@x.com", Name: "A"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, in.Validate())
		})
	}
}

// El contrato solo exige password no vacío: un solo carácter es válido.
func TestCreateUserRequest_PasswordDeUnCaracter(t *testing.T) {
	in := validCreate()
	in.Password = "p"
	require.NoError(t, in.Validate())
}

func TestCreateUserRequest_PasswordVacio(t *testing.T) {
	in := validCreate()
	in.Password = ""
	require.Error(t, in.Validate())
}

func TestCreateUserRequest_FKNegativa(t *testing.T) {
	in := validCreate()
	bad := int64(-1)
	in.BranchID = &bad
	require.Error(t, in.Validate())
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateUserRequest: parseo ausente vs null explícito
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUserRequest_ClaveAusente(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"B"}`), &in))

	require.NotNil(t, in.Name)
	assert.Equal(t, "B", *in.Name)
	// companyId no vino: no debe marcarse como presente
	assert.False(t, in.CompanyID.Set)
	assert.False(t, in.BranchID.Set)
	require.NoError(t, in.Validate())
}

func TestUpdateUserRequest_NullExplicito(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"companyId":null}`), &in))

	assert.True(t, in.CompanyID.Set, "la clave vino en el body")
	assert.False(t, in.CompanyID.Valid, "con valor null")
	assert.Nil(t, in.CompanyID.Ptr())
	require.NoError(t, in.Validate())
}

func TestUpdateUserRequest_ConValor(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"companyId":3}`), &in))

	assert.True(t, in.CompanyID.Set)
	assert.True(t, in.CompanyID.Valid)
	require.NotNil(t, in.CompanyID.Ptr())
	assert.Equal(t, int64(3), *in.CompanyID.Ptr())
}

func TestUpdateUserRequest_BodyVacio(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &in))

	assert.True(t, in.Empty())
	require.Error(t, in.Validate())
}

func TestUpdateUserRequest_EmailInvalido(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"basura"}`), &in))
	require.Error(t, in.Validate())
}

func TestUpdateUserRequest_PasswordDeUnCaracter(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"password":"p"}`), &in))
	require.NoError(t, in.Validate())
}

func TestUpdateUserRequest_PasswordVacio(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"password":""}`), &in))
	require.Error(t, in.Validate())
}

func TestUpdateUserRequest_FKCero(t *testing.T) {
	var in dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"companyId":0}`), &in))
	require.Error(t, in.Validate())
}
