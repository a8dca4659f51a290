package gtrack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/gtrack"
)

func TestLogin_OK_ParseaUsuarioYConservaElCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "member@test.com", body["email"])
		assert.Equal(t, "secreta", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "Login successful",
			"user": {
				"id": "m-1",
				"email": "member@test.com",
				"stackholderType": "manufacturer",
				"companyNameEnglish": "Acme Trading",
				"gs1Userid": "GS1-77"
			},
			"memberships": [{"plan": "gold"}]
		}`))
	}))
	defer srv.Close()

	client := gtrack.NewClient(srv.URL)
	out, err := client.Login(context.Background(), "member@test.com", "secreta")
	require.NoError(t, err)

	assert.Equal(t, "m-1", out.User.ID)
	assert.Equal(t, "manufacturer", out.User.StackholderType)
	assert.Equal(t, "GS1-77", out.User.GS1UserID)
	assert.Contains(t, string(out.Raw), "memberships",
		"los campos que la app no modela viajan intactos en Raw")
}

func TestLogin_UpstreamRechaza_PropagaCodigoYMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid credentials"}`))
	}))
	defer srv.Close()

	client := gtrack.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "member@test.com", "mala")

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestLogin_FalloSinMensaje_UsaMensajeGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	client := gtrack.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "member@test.com", "x")

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
	assert.Equal(t, "Login failed", appErr.Message)
}

func TestLogin_ExitoSinUsuario_EsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	client := gtrack.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "member@test.com", "x")
	require.Error(t, err, "un 200 sin usuario es una respuesta malformada")
}

func TestLogin_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := gtrack.NewClient(srv.URL)
	_, err := client.Login(ctx, "member@test.com", "x")
	require.Error(t, err)
}
