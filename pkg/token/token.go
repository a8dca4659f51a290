package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. La capa HTTP distingue ErrExpired (498 para access
// tokens) de ErrInvalid (401, firma incorrecta o token malformado).
var (
	ErrExpired = errors.New("token expirado")
	ErrInvalid = errors.New("token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// TokenVersion solo viaja en refresh tokens: se compara contra el contador del
// member al rotar, de modo que un refresh token reemplazado deja de ser válido.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string   `json:"user_id"`
	Email        string   `json:"email,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	TokenVersion int      `json:"token_version,omitempty"`
}

// Config secretos y expiraciones para cada tipo de token.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Service emite y verifica tokens firmados HS256. Operación pura: sin I/O.
type Service struct {
	cfg Config
}

// NewService construye el servicio. Sin TTL configurado aplica 1h para access
// y 7d para refresh.
func NewService(cfg Config) *Service {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Service{cfg: cfg}
}

// IssueAccess genera un access token firmado con el access secret.
func (s *Service) IssueAccess(userID, email string, roles []string) (string, error) {
	return s.sign(Claims{
		UserID: userID,
		Email:  email,
		Roles:  roles,
	}, s.cfg.AccessSecret, s.cfg.AccessTTL)
}

// IssueRefresh genera un refresh token firmado con el refresh secret,
// incluyendo la versión de token vigente del member.
func (s *Service) IssueRefresh(userID string, version int) (string, error) {
	return s.sign(Claims{
		UserID:       userID,
		TokenVersion: version,
	}, s.cfg.RefreshSecret, s.cfg.RefreshTTL)
}

// VerifyAccess valida un access token y devuelve sus claims.
func (s *Service) VerifyAccess(tokenString string) (*Claims, error) {
	return verify(tokenString, s.cfg.AccessSecret)
}

// VerifyRefresh valida un refresh token y devuelve sus claims.
func (s *Service) VerifyRefresh(tokenString string) (*Claims, error) {
	return verify(tokenString, s.cfg.RefreshSecret)
}

func (s *Service) sign(claims Claims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.cfg.Issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// verify valida firma y expiración contra el secret indicado.
// Un token vencido retorna ErrExpired; cualquier otro fallo retorna ErrInvalid.
func verify(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
