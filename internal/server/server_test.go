package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-lettergen/internal/clock"
	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/generator"
)

type captureSink struct {
	payloads []map[string]any
	err      error
}

func (s *captureSink) Deliver(_ context.Context, payload map[string]any) error {
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, payload)
	return nil
}

type fixture struct {
	srv   *Server
	store *client.MemoryStore
	sink  *captureSink
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	store := client.NewMemoryStore()
	sink := &captureSink{}
	gen := generator.New(
		generator.WithStore(store),
		generator.WithSink(sink),
		generator.WithClock(clock.Fixed("2025-03-14", "10:30")),
	)

	srv, err := New(gen, store)
	require.NoError(t, err)

	return fixture{srv: srv, store: store, sink: sink}
}

func (f fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedClient(t *testing.T, store *client.MemoryStore) client.Record {
	t.Helper()

	rec, err := store.Put(context.Background(), client.Record{
		Name:         "John Smith",
		MatterNumber: "M-001",
		Court:        "Downing Centre Local Court",
		Charges:      "Larceny",
	})
	require.NoError(t, err)
	return rec
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(7), body["documents"])
}

func TestListForms(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/forms/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	forms, ok := body["forms"].([]any)
	require.True(t, ok)
	require.Len(t, forms, 7)

	first, ok := forms[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CCL", first["type"])
	assert.Equal(t, "CCL_Template.docx", first["template"])
}

func TestGetFormJSON(t *testing.T) {
	f := newFixture(t)
	seeded := seedClient(t, f.store)

	rec := f.do(t, http.MethodGet, "/api/v1/forms/CCL?client="+seeded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "CCL", body["type"])

	sections, ok := body["sections"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, sections)

	raw := rec.Body.String()
	assert.Contains(t, raw, `"clientCharges":"Larceny"`)
	assert.Contains(t, raw, `"id":"legalAidStatus"`)
}

func TestGetFormHTML(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/forms/CCL?format=html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), `data-form-type="CCL"`)
}

func TestGetFormUnknown(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/forms/Nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientRoundTrip(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/clients/", map[string]any{
		"name":         "Jane Doe",
		"matterNumber": "M-002",
		"legalAid":     true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode(t, rec)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	rec = f.do(t, http.MethodGet, "/api/v1/clients/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Jane Doe", got["name"])
	assert.Equal(t, true, got["legalAid"])

	rec = f.do(t, http.MethodPut, "/api/v1/clients/"+id, map[string]any{
		"name":  "Jane Doe",
		"court": "Parramatta Local Court",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/clients/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	clients, ok := body["clients"].([]any)
	require.True(t, ok)
	assert.Len(t, clients, 1)
}

func TestSaveClientRequiresName(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/clients/", map[string]any{
		"matterNumber": "M-003",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate(t *testing.T) {
	f := newFixture(t)
	seeded := seedClient(t, f.store)

	rec := f.do(t, http.MethodPost, "/api/v1/generate", map[string]any{
		"type":     "CCL",
		"clientId": seeded.ID,
		"values": map[string]any{
			"legalAidStatus": "No",
			"estimate":       "3500",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "CCL", body["type"])
	prompt, ok := body["prompt"].(string)
	require.True(t, ok)
	assert.Contains(t, prompt, "CLIENT: John Smith")
	assert.Contains(t, prompt, "Estimate: 3500")
	assert.Equal(t, false, body["sent"])
	assert.Empty(t, f.sink.payloads)

	stored, err := f.store.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Len(t, stored.Letters, 1)
	assert.Equal(t, "CCL", stored.Letters[0].Type)
	assert.False(t, stored.Letters[0].Sent)
}

func TestGenerateSend(t *testing.T) {
	f := newFixture(t)
	seeded := seedClient(t, f.store)

	rec := f.do(t, http.MethodPost, "/api/v1/generate", map[string]any{
		"type":     "Mention",
		"clientId": seeded.ID,
		"send":     true,
		"values": map[string]any{
			"courtDate": "2025-04-02",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.sink.payloads, 1)
	assert.Equal(t, "Mention", f.sink.payloads[0]["type"])

	stored, err := f.store.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Len(t, stored.Letters, 1)
	assert.True(t, stored.Letters[0].Sent)
}

func TestGenerateUnknownType(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/generate", map[string]any{
		"type": "Nope",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateUnknownClient(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/generate", map[string]any{
		"type":     "CCL",
		"clientId": "missing",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
