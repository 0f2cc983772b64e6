package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
	"github.com/merchanthaus/crm-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. El rol admin no
// vive en una tabla: se deriva de la pertenencia del email al conjunto
// configurado de administradores (inyectado, no hardcodeado).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	jwtCfg      JWTConfig
	adminEmails map[string]struct{}
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, adminEmails []string) *AuthUseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, adminEmails: admins}
}

// IsAdmin indica si el email pertenece al conjunto de administradores configurado.
func (uc *AuthUseCase) IsAdmin(email string) bool {
	_, ok := uc.adminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = email
	}
	role := entity.RoleMember
	if uc.IsAdmin(email) {
		role = entity.RoleAdmin
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	// El rol se re-deriva en cada login por si cambió la configuración de admins.
	role := entity.RoleMember
	if uc.IsAdmin(user.Email) {
		role = entity.RoleAdmin
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	user.Role = role
	return &dto.LoginResponse{
		Token: token,
		User:  *uc.toUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		TeamMember: entity.MemberForEmail(u.Email),
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
