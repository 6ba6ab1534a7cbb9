package pagseguro_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	pagseguro "github.com/DanielPopoola/pagseguro-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(host string) *pagseguro.Config {
	return &pagseguro.Config{
		Environment: "sandbox",
		Host:        host,
		Credentials: pagseguro.CredentialsConfig{AppID: "app-123", AppKey: "key-456"},
		HTTP:        pagseguro.HTTPConfig{Timeout: 2 * time.Second, UserAgent: "pagseguro-go/test"},
		Retry:       pagseguro.RetryConfig{MaxRetries: 1},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_CancelByCode_EndToEnd(t *testing.T) {
	var gotPath, gotQuery, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/xml;charset=ISO-8859-1")
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?><result><date>2011-11-23T13:40:23.000-02:00</date><status>OK</status></result>`)
	}))
	defer srv.Close()

	client, err := pagseguro.New(testConfig(srv.URL), pagseguro.WithLogger(quietLogger()))
	require.NoError(t, err)
	defer client.Close(context.Background())

	res, err := client.PreApprovals.CancelByCode(context.Background(), "12D2F2A4B0B0CBB1144F7FA1F4C3B5A1")

	require.NoError(t, err)
	assert.Equal(t, "OK", res.Status)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/v2/pre-approvals/cancel/12D2F2A4B0B0CBB1144F7FA1F4C3B5A1", gotPath)
	assert.Equal(t, "appId=app-123&appKey=key-456", gotQuery)
}

func TestClient_SearchAuthorizations_EndToEnd(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/authorizations", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/xml;charset=ISO-8859-1")
		_, _ = io.WriteString(w, `<authorizationSearchResult><date>2011-04-01T10:12:00.000-03:00</date><authorizations/><resultsInThisPage>0</resultsInThisPage><currentPage>1</currentPage><totalPages>0</totalPages></authorizationSearchResult>`)
	}))
	defer srv.Close()

	client, err := pagseguro.New(testConfig(srv.URL), pagseguro.WithLogger(quietLogger()))
	require.NoError(t, err)
	defer client.Close(context.Background())

	search, err := pagseguro.NewAuthorizationSearch(pagseguro.AuthorizationSearchParams{
		InitialDate: time.Date(2011, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	res, err := client.Authorizations.Search(context.Background(), search)

	require.NoError(t, err)
	assert.Empty(t, res.Authorizations)
	assert.False(t, res.HasNextPage())
	assert.Equal(t, "2011-03-01T00:00", gotQuery.Get("initialDate"))
	assert.Equal(t, "app-123", gotQuery.Get("appId"))
	assert.Equal(t, "key-456", gotQuery.Get("appKey"))
}

func TestClient_Register_ServiceErrorEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml;charset=ISO-8859-1")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("<errors><error><code>11007</code><message>Permiss\xe3o inv\xe1lida</message></error></errors>"))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	client, err := pagseguro.New(testConfig(srv.URL),
		pagseguro.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)

	reg, err := pagseguro.NewAuthorizationRegistration(pagseguro.AuthorizationRegistrationParams{
		Permissions: []pagseguro.Permission{pagseguro.PermissionDirectPayment},
	})
	require.NoError(t, err)

	_, err = client.Authorizations.Register(context.Background(), reg)

	svcErr, ok := pagseguro.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Permissão inválida", svcErr.Errors[0].Message)
	assert.Contains(t, logs.String(), "payment service call rejected")
	assert.NotContains(t, logs.String(), "key-456")
}

func TestClient_RetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/xml;charset=ISO-8859-1")
		_, _ = io.WriteString(w, `<result><date>2011-11-23T13:40:23-02:00</date><status>OK</status></result>`)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Retry = pagseguro.RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond}
	client, err := pagseguro.New(cfg, pagseguro.WithLogger(quietLogger()))
	require.NoError(t, err)

	res, err := client.PreApprovals.CancelByCode(context.Background(), "ABC")

	require.NoError(t, err)
	assert.Equal(t, "OK", res.Status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := pagseguro.New(testConfig(srv.URL), pagseguro.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = client.PreApprovals.CancelByCode(context.Background(), "ABC")

	tErr, ok := pagseguro.IsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, tErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig("")
	cfg.Credentials = pagseguro.CredentialsConfig{}

	_, err := pagseguro.New(cfg)

	assert.Error(t, err)
}
