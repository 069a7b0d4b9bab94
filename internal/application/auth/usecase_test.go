package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almeidajf/ferramentaria-api/internal/application/auth"
	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/memory"
	pkgjwt "github.com/almeidajf/ferramentaria-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthEnv(t *testing.T) (*auth.UseCase, *memory.UsuarioRepo) {
	t.Helper()
	repo := memory.NewUsuarioRepository(memory.NewStore())
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "ferramentaria-test",
	})
	return uc, repo
}

func TestRegistrar_PerfilPadraoOperador(t *testing.T) {
	uc, _ := newAuthEnv(t)

	u, err := uc.Registrar(dto.RegisterRequest{
		Nome:  "João Silva",
		Email: "joao@oficina.com.br",
		Senha: "senha-secreta",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PerfilOperador, u.Perfil, "sem perfil informado, entra como operador")
	assert.Equal(t, entity.UsuarioAtivo, u.Status)
}

func TestRegistrar_NaoExpoeSenha(t *testing.T) {
	uc, repo := newAuthEnv(t)

	_, err := uc.Registrar(dto.RegisterRequest{
		Email: "joao@oficina.com.br",
		Senha: "senha-secreta",
	})
	require.NoError(t, err)

	gravado, err := repo.GetByEmail("joao@oficina.com.br")
	require.NoError(t, err)
	require.NotNil(t, gravado)
	assert.NotEqual(t, "senha-secreta", gravado.SenhaHash, "a senha deve ser gravada como hash bcrypt")
	assert.NotEmpty(t, gravado.SenhaHash)
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthEnv(t)

	_, err := uc.Registrar(dto.RegisterRequest{Email: "joao@oficina.com.br", Senha: "abc123"})
	require.NoError(t, err)

	_, err = uc.Registrar(dto.RegisterRequest{Email: "joao@oficina.com.br", Senha: "outra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevolveTokenComPerfil(t *testing.T) {
	uc, _ := newAuthEnv(t)

	_, err := uc.Registrar(dto.RegisterRequest{
		Email:  "maria@oficina.com.br",
		Senha:  "senha-secreta",
		Perfil: entity.PerfilAprovador,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@oficina.com.br", Senha: "senha-secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, perfil, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, userID)
	assert.Equal(t, entity.PerfilAprovador, perfil)
	assert.NotNil(t, out.Usuario.UltimoAcesso, "login bem-sucedido registra o último acesso")
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	uc, _ := newAuthEnv(t)

	_, err := uc.Registrar(dto.RegisterRequest{Email: "joao@oficina.com.br", Senha: "correta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "joao@oficina.com.br", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	uc, repo := newAuthEnv(t)

	_, err := uc.Registrar(dto.RegisterRequest{Email: "joao@oficina.com.br", Senha: "senha"})
	require.NoError(t, err)

	u, err := repo.GetByEmail("joao@oficina.com.br")
	require.NoError(t, err)
	u.Status = entity.UsuarioInativo
	require.NoError(t, repo.Update(u))

	_, err = uc.Login(dto.LoginRequest{Email: "joao@oficina.com.br", Senha: "senha"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc, _ := newAuthEnv(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@oficina.com.br", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
