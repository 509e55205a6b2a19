package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu          sync.Mutex
	token       string
	invalidated int
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.invalidated++
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeSession) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL+"/", 0)
	session := &fakeSession{token: "tok-123"}
	client.Bind(session)
	return client, session
}

// ============ TESTS ============

// TestClientAttachesHeaders - bearer and JSON headers on every call
func TestClientAttachesHeaders(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	})

	_, err := client.ListLeads(context.Background(), ListLeadsParams{Limit: 1000})
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestClientOmitsBearerWithoutToken(t *testing.T) {
	var auth string
	client, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"u1","email":"a@b.es"}`))
	})
	session.token = ""

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClientHealthNeverSendsToken(t *testing.T) {
	var auth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"ok","capabilities":{"auth_enabled":true}}`))
	})

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.Capabilities["auth_enabled"])
	assert.Empty(t, auth)
}

func TestClientGetSkipsEmptyParams(t *testing.T) {
	var rawQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	})

	err := client.Get(context.Background(), "/leads", map[string]string{"limit": "10", "fuente": ""}, nil)
	require.NoError(t, err)
	assert.Equal(t, "limit=10", rawQuery)
}

func TestClientPostNilBodySendsEmptyObject(t *testing.T) {
	var body string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Write([]byte(`{"candidates":3,"enriched":1}`))
	})

	out, err := client.EnrichEmails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", body)
	assert.Equal(t, 3, out.Candidates)
	assert.Equal(t, 1, out.Enriched)
}

// TestClientUnauthorizedInvalidatesSession - 401 calls Invalidate on the bound session
func TestClientUnauthorizedInvalidatesSession(t *testing.T) {
	for _, path := range []string{"/leads", "/capture", "/campaign/send", "/auth/me"} {
		t.Run(path, func(t *testing.T) {
			client, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"No autenticado"}`))
			})

			var err error
			if path == "/leads" || path == "/auth/me" {
				err = client.Get(context.Background(), path, nil, nil)
			} else {
				err = client.Post(context.Background(), path, nil, nil)
			}

			require.Error(t, err)
			assert.True(t, IsUnauthorized(err))
			assert.Equal(t, MsgSessionExpired, err.Error())
			assert.Equal(t, 1, session.invalidated)
			assert.Empty(t, session.Token())
		})
	}
}

// TestClientRequestFailedUsesDetail - error detail from the body
func TestClientRequestFailedUsesDetail(t *testing.T) {
	client, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Indica al menos una zona o codigo postal"}`))
	})

	_, err := client.Capture(context.Background(), CaptureRequest{})
	require.Error(t, err)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindRequest, kind)
	assert.Equal(t, "Indica al menos una zona o codigo postal", err.Error())
	assert.Equal(t, 0, session.invalidated)
}

func TestClientRequestFailedFallsBackToStatus(t *testing.T) {
	cases := map[string]string{
		"not json":     "<html>boom</html>",
		"no detail":    `{"error":"x"}`,
		"detail list":  `{"detail":[{"loc":["body","max_items"],"msg":"too big"}]}`,
		"empty detail": `{"detail":""}`,
		"empty body":   ``,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(body))
			})

			err := client.Post(context.Background(), "/capture", nil, nil)
			require.Error(t, err)
			assert.Equal(t, "HTTP 422", err.Error())
		})
	}
}

// TestClientTransportFailure - unreachable server is a transport error
func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Health(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Equal(t, MsgFailedToFetch, err.Error())
}

func TestClientObserverSeesEveryCall(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	var calls []int
	client.ObserveWith(func(method, path string, status int, elapsed time.Duration) {
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/campaign/send", path)
		calls = append(calls, status)
	})

	_, err := client.SendCampaign(context.Background(), CampaignRequest{LeadIDs: []int64{1}})
	require.Error(t, err)
	assert.Equal(t, []int{http.StatusInternalServerError}, calls)
}

// TestClientSendCampaignPayload - campaign body field names
func TestClientSendCampaignPayload(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaign/send", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&payload)
		w.Write([]byte(`{"total":2,"sent":2,"errors":0}`))
	})

	out, err := client.SendCampaign(context.Background(), CampaignRequest{
		Asunto:       "Hola {{ nombre }}",
		Remitente:    "Equipo Comercial",
		TemplateText: "Cuerpo",
		LeadIDs:      []int64{4, 9},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Sent)
	assert.Equal(t, "Hola {{ nombre }}", payload["asunto"])
	assert.Equal(t, false, payload["only_pending"])
	assert.Equal(t, []any{float64(4), float64(9)}, payload["lead_ids"])
}
