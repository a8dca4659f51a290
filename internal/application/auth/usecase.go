package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/token"
)

// IdentityClient puerto hacia el proveedor de identidad externo. Lo implementa
// *gtrack.Client.
type IdentityClient interface {
	Login(ctx context.Context, email, password string) (*dto.UpstreamLogin, error)
}

// EmailQueue puerto hacia la cola de notificaciones. Lo implementa *queue.Queue.
type EmailQueue interface {
	Enqueue(ctx context.Context, jobName string, payload any) error
}

// emailRe validación mínima de formato, igual que en el resto de la app.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UseCase orquesta el login delegado y la rotación de refresh tokens.
// No hay passwords locales de members: las credenciales viajan al upstream y
// el perfil devuelto se sobreescribe en la caché local.
type UseCase struct {
	identity IdentityClient
	members  repository.MemberRepository
	tokens   *token.Service
	emails   EmailQueue
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. emails puede ser nil si no hay Redis
// configurado; el login sigue funcionando sin notificaciones.
func NewUseCase(
	identity IdentityClient,
	members repository.MemberRepository,
	tokens *token.Service,
	emails EmailQueue,
	log *logger.Logger,
) *UseCase {
	return &UseCase{identity: identity, members: members, tokens: tokens, emails: emails, log: log}
}

// loginEmailJob payload del trabajo de correo post-login.
type loginEmailJob struct {
	MemberID string    `json:"memberId"`
	Email    string    `json:"email"`
	LoginAt  time.Time `json:"loginAt"`
}

// Login reenvía las credenciales al upstream, sincroniza el perfil local y
// emite el par de tokens propios. La respuesta íntegra del upstream se
// devuelve al cliente sin modificar.
func (uc *UseCase) Login(ctx context.Context, in dto.MemberLoginRequest) (*dto.MemberLoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if !emailRe.MatchString(in.Email) {
		return nil, domain.NewValidation("A valid email is required")
	}
	if in.Password == "" {
		return nil, domain.NewValidation("Password is required")
	}

	upstream, err := uc.identity.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := memberFromUpstream(upstream.User, now)
	version, err := uc.members.Upsert(ctx, member)
	if err != nil {
		return nil, err
	}

	access, err := uc.tokens.IssueAccess(member.ID, member.Email, nil)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.tokens.IssueRefresh(member.ID, version)
	if err != nil {
		return nil, err
	}

	// La notificación es best-effort: un Redis caído no bloquea el login.
	if uc.emails != nil {
		job := loginEmailJob{MemberID: member.ID, Email: member.Email, LoginAt: now.UTC()}
		if err := uc.emails.Enqueue(ctx, "member-login", job); err != nil {
			uc.log.Warn().Err(err).Str("member_id", member.ID).Msg("no se pudo encolar el correo de login")
		}
	}

	return &dto.MemberLoginResponse{
		AccessToken:    access,
		RefreshToken:   refresh,
		GTrackResponse: upstream.Raw,
	}, nil
}

// Refresh rota el par de tokens. El refresh token entrante debe ser válido y
// llevar la versión vigente del member; al rotar se incrementa el contador,
// con lo que el token anterior queda invalidado aunque no haya expirado.
func (uc *UseCase) Refresh(ctx context.Context, in dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	if in.RefreshToken == "" {
		return nil, domain.NewValidation("Refresh token is required")
	}

	claims, err := uc.tokens.VerifyRefresh(in.RefreshToken)
	if err != nil {
		return nil, domain.NewUnauthorized("Invalid or expired refresh token")
	}

	member, err := uc.members.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.TokenVersion != claims.TokenVersion {
		return nil, domain.NewUnauthorized("Invalid or expired refresh token")
	}

	version, err := uc.members.BumpTokenVersion(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	access, err := uc.tokens.IssueAccess(member.ID, member.Email, nil)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.tokens.IssueRefresh(member.ID, version)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshTokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func memberFromUpstream(u *dto.UpstreamUser, now time.Time) *entity.Member {
	return &entity.Member{
		ID:                 u.ID,
		Email:              u.Email,
		StackholderType:    u.StackholderType,
		GS1CompanyPrefix:   u.GS1CompanyPrefix,
		CompanyNameEnglish: u.CompanyNameEnglish,
		CompanyNameArabic:  u.CompanyNameArabic,
		ContactPerson:      u.ContactPerson,
		CompanyLandline:    u.CompanyLandline,
		MobileNo:           u.MobileNo,
		Extension:          u.Extension,
		ZipCode:            u.ZipCode,
		Website:            u.Website,
		GLN:                u.GLN,
		Address:            u.Address,
		Longitude:          u.Longitude,
		Latitude:           u.Latitude,
		Status:             u.Status,
		GS1UserID:          u.GS1UserID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
