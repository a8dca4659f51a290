package entity

import "time"

// Member espejo local del perfil que devuelve la API de identidad GTrack.
// El ID lo asigna el proveedor externo, nunca esta aplicación; el registro se
// sobreescribe completo en cada login (el local es solo caché del upstream).
//
// Los nombres de campo replican los del upstream, incluida la grafía
// "stackholderType" que usa su API.
type Member struct {
	ID                 string
	Email              string
	StackholderType    string
	GS1CompanyPrefix   string
	CompanyNameEnglish string
	CompanyNameArabic  string
	ContactPerson      string
	CompanyLandline    string
	MobileNo           string
	Extension          string
	ZipCode            string
	Website            string
	GLN                string
	Address            string
	Longitude          string
	Latitude           string
	Status             string
	GS1UserID          string

	// TokenVersion se incrementa en cada rotación de refresh token; un refresh
	// token con versión anterior queda invalidado aunque no haya expirado.
	TokenVersion int

	CreatedAt time.Time
	UpdatedAt time.Time
}
