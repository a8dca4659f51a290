package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación del puerto MemberRepository sobre PostgreSQL.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador de persistencia para members.
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

const memberColumns = `
	id, email, stackholder_type, gs1_company_prefix, company_name_english,
	company_name_arabic, contact_person, company_landline, mobile_no, extension,
	zip_code, website, gln, address, longitude, latitude, status, gs1_userid,
	token_version, created_at, updated_at`

// GetByID obtiene un member por el ID asignado por el proveedor de identidad.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	var m entity.Member
	err := r.q.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id).Scan(
		&m.ID, &m.Email, &m.StackholderType, &m.GS1CompanyPrefix, &m.CompanyNameEnglish,
		&m.CompanyNameArabic, &m.ContactPerson, &m.CompanyLandline, &m.MobileNo, &m.Extension,
		&m.ZipCode, &m.Website, &m.GLN, &m.Address, &m.Longitude, &m.Latitude, &m.Status,
		&m.GS1UserID, &m.TokenVersion, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// Upsert inserta o sobreescribe completo el perfil del member en una sola
// sentencia (last-write-wins). token_version no se toca: sobrevive al upsert
// para no invalidar refresh tokens vigentes con cada login.
func (r *MemberRepo) Upsert(ctx context.Context, m *entity.Member) (int, error) {
	query := `
		INSERT INTO members (
			id, email, stackholder_type, gs1_company_prefix, company_name_english,
			company_name_arabic, contact_person, company_landline, mobile_no, extension,
			zip_code, website, gln, address, longitude, latitude, status, gs1_userid
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			stackholder_type = EXCLUDED.stackholder_type,
			gs1_company_prefix = EXCLUDED.gs1_company_prefix,
			company_name_english = EXCLUDED.company_name_english,
			company_name_arabic = EXCLUDED.company_name_arabic,
			contact_person = EXCLUDED.contact_person,
			company_landline = EXCLUDED.company_landline,
			mobile_no = EXCLUDED.mobile_no,
			extension = EXCLUDED.extension,
			zip_code = EXCLUDED.zip_code,
			website = EXCLUDED.website,
			gln = EXCLUDED.gln,
			address = EXCLUDED.address,
			longitude = EXCLUDED.longitude,
			latitude = EXCLUDED.latitude,
			status = EXCLUDED.status,
			gs1_userid = EXCLUDED.gs1_userid,
			updated_at = now()
		RETURNING token_version`
	var version int
	err := r.q.QueryRow(ctx, query,
		m.ID, m.Email, m.StackholderType, m.GS1CompanyPrefix, m.CompanyNameEnglish,
		m.CompanyNameArabic, m.ContactPerson, m.CompanyLandline, m.MobileNo, m.Extension,
		m.ZipCode, m.Website, m.GLN, m.Address, m.Longitude, m.Latitude, m.Status, m.GS1UserID,
	).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("upsert member: %w", err)
	}
	return version, nil
}

// BumpTokenVersion incrementa el contador de rotación del member y devuelve el
// nuevo valor; con él se firma el refresh token recién emitido.
func (r *MemberRepo) BumpTokenVersion(ctx context.Context, id string) (int, error) {
	var version int
	err := r.q.QueryRow(ctx,
		`UPDATE members SET token_version = token_version + 1, updated_at = now()
		 WHERE id = $1 RETURNING token_version`, id,
	).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("bump token version: member %s no existe", id)
		}
		return 0, fmt.Errorf("bump token version: %w", err)
	}
	return version, nil
}
