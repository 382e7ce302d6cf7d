package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
	"github.com/jhoicas/freshstock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// bcryptPrefixes prefijos de los hashes bcrypt aceptados ($2a$, $2b$, $2y$).
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, activityRepo repository.ActivityRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, activityRepo: activityRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/password, registra "User Login", genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if !PasswordMatches(user.Password, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, strconv.Itoa(user.ID), user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if uc.activityRepo != nil {
		err := uc.activityRepo.Append(ctx, &entity.Activity{
			Activity: entity.ActivityUserLogin,
			User:     user.Name,
			Details:  user.Name + " logged into the system",
		})
		if err != nil {
			return nil, err
		}
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(*user),
	}, nil
}

// PasswordMatches compara contra un hash bcrypt o, para los datos de demo, contra
// el texto plano en tiempo constante.
func PasswordMatches(stored, given string) bool {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// IsHashed indica si stored ya es un hash bcrypt.
func IsHashed(stored string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// HashPassword genera un hash bcrypt (invctl seed --hash-passwords).
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
