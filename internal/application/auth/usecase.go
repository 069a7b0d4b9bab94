package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
	"github.com/almeidajf/ferramentaria-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: registro e login.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar cria um usuário: faz hash da senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o email já existe.
func (uc *UseCase) Registrar(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.NewValidationError("email", "senha")
	}
	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	perfil := in.Perfil
	if perfil == "" {
		perfil = entity.PerfilOperador
	}
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     in.Email,
		SenhaHash: string(hash),
		Perfil:    perfil,
		SetorID:   in.SetorID,
		Status:    entity.UsuarioAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica email/senha, gera JWT e retorna token + usuário.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if u.Status != entity.UsuarioAtivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Perfil, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u.UltimoAcesso = &now
	u.UpdatedAt = now
	// Falha ao gravar o último acesso não invalida o login.
	_ = uc.usuarioRepo.Update(u)

	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(u),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:           u.ID,
		Nome:         u.Nome,
		Email:        u.Email,
		Perfil:       u.Perfil,
		SetorID:      u.SetorID,
		Status:       u.Status,
		UltimoAcesso: u.UltimoAcesso,
		CreatedAt:    u.CreatedAt,
	}
}
