package dto

import "encoding/json"

// MemberLoginRequest credenciales que se reenvían a la API de identidad.
type MemberLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest cuerpo del refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpstreamUser perfil de member tal como lo devuelve la API GTrack.
// Los tags JSON replican los nombres del upstream, incluida la grafía
// "stackholderType".
type UpstreamUser struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	StackholderType    string `json:"stackholderType"`
	GS1CompanyPrefix   string `json:"gs1CompanyPrefix"`
	CompanyNameEnglish string `json:"companyNameEnglish"`
	CompanyNameArabic  string `json:"companyNameArabic"`
	ContactPerson      string `json:"contactPerson"`
	CompanyLandline    string `json:"companyLandline"`
	MobileNo           string `json:"mobileNo"`
	Extension          string `json:"extension"`
	ZipCode            string `json:"zipCode"`
	Website            string `json:"website"`
	GLN                string `json:"gln"`
	Address            string `json:"address"`
	Longitude          string `json:"longitude"`
	Latitude           string `json:"latitude"`
	Status             string `json:"status"`
	GS1UserID          string `json:"gs1Userid"`
}

// UpstreamLogin resultado de un login exitoso contra el upstream: el usuario
// parseado para el upsert local y el cuerpo completo sin modificar, que se
// devuelve tal cual al cliente.
type UpstreamLogin struct {
	User *UpstreamUser
	Raw  json.RawMessage
}

// MemberLoginResponse tokens locales más la respuesta íntegra del upstream.
type MemberLoginResponse struct {
	AccessToken    string          `json:"accessToken"`
	RefreshToken   string          `json:"refreshToken"`
	GTrackResponse json.RawMessage `json:"GTrackResponse"`
}

// RefreshTokenResponse par de tokens rotado.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
