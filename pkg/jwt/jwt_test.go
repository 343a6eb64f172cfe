package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/garden-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "garden-test"
)

var testIdentity = pkgjwt.Identity{UserID: "17", Username: "ana", Role: "Employee"}

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, id)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_EmisorDistinto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)

	// Sin emisor configurado no se valida el claim iss.
	_, err = pkgjwt.Parse(testSecret, "", tok)
	assert.NoError(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIdentity, testIssuer, 60)
	assert.Error(t, err)
}
