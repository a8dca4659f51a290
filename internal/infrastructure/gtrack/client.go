package gtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa el puerto de identidad.
var _ auth.IdentityClient = (*Client)(nil)

// Client adaptador del proveedor de identidad GTrack: reenvía credenciales al
// endpoint de login del upstream y entrega la respuesta parseada más el cuerpo
// íntegro.
type Client struct {
	loginURL   string
	httpClient *http.Client
}

// NewClient construye el cliente con la URL de login del upstream.
func NewClient(loginURL string) *Client {
	return &Client{
		loginURL: loginURL,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginEnvelope campos del cuerpo del upstream que la app necesita; el resto
// viaja intacto en Raw.
type loginEnvelope struct {
	Message string            `json:"message"`
	User    *dto.UpstreamUser `json:"user"`
}

// Login llama al endpoint de login del upstream. Si el upstream reporta fallo,
// su mensaje y su código HTTP se propagan tal cual; en éxito devuelve el
// usuario parseado y el cuerpo sin modificar.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.UpstreamLogin, error) {
	body, err := json.Marshal(loginPayload{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("gtrack: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gtrack: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("gtrack: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("gtrack: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("gtrack: leer respuesta: %w", err)
	}

	var envelope loginEnvelope
	// Un cuerpo no-JSON del upstream no es fatal: en fallo usamos el mensaje
	// genérico y en éxito el parseo de abajo lo detecta.
	_ = json.Unmarshal(rawBody, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := envelope.Message
		if msg == "" {
			msg = "Login failed"
		}
		return nil, domain.NewUpstream(resp.StatusCode, msg)
	}

	if envelope.User == nil || envelope.User.ID == "" {
		return nil, fmt.Errorf("gtrack: respuesta de login sin usuario (HTTP %d)", resp.StatusCode)
	}

	return &dto.UpstreamLogin{User: envelope.User, Raw: rawBody}, nil
}
