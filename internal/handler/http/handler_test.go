package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	sheetService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/service/records"
	reportService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/report"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type entity[T any] interface {
	*T
	EntityID() int64
	SetEntityID(int64)
}

// memRepo is an in-memory repository; sheetOf is nil for top-level records.
type memRepo[T any, P entity[T]] struct {
	mu       sync.Mutex
	table    *fields.Table
	notFound error
	sheetOf  func(T) *int64
	items    []T
	next     int64
}

func (m *memRepo[T, P]) List(_ context.Context, filter record.Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for _, it := range m.items {
		if filter.InformationSheetID != nil && m.sheetOf != nil {
			id := m.sheetOf(it)
			if id == nil || *id != *filter.InformationSheetID {
				continue
			}
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *memRepo[T, P]) GetByID(_ context.Context, id int64) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if P(&it).EntityID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, m.notFound
}

func (m *memRepo[T, P]) Create(_ context.Context, item T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	P(&item).SetEntityID(m.next)
	m.items = append(m.items, item)
	return item, nil
}

func (m *memRepo[T, P]) Update(_ context.Context, id int64, patch fields.Patch) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if P(&it).EntityID() == id {
			merged, err := fields.Merge(m.table, it, patch)
			if err != nil {
				return it, err
			}
			m.items[i] = merged
			return merged, nil
		}
	}
	var zero T
	return zero, m.notFound
}

func (m *memRepo[T, P]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if P(&it).EntityID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return m.notFound
}

type sheetRepo struct {
	*memRepo[informationsheet.InformationSheet, *informationsheet.InformationSheet]
}

func (s sheetRepo) List(ctx context.Context) ([]informationsheet.InformationSheet, error) {
	return s.memRepo.List(ctx, record.Filter{})
}

func (s sheetRepo) Create(ctx context.Context, sheet informationsheet.InformationSheet) (informationsheet.InformationSheet, error) {
	sheet.DisciplinaryActions = nil
	return s.memRepo.Create(ctx, sheet)
}

type fakeAuth struct {
	jwt jwt.Service
}

func (f *fakeAuth) Login(_ context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if req.Username != "admin" || req.Password != "s3cret-pass" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	token, exp, err := f.jwt.GenerateAccessToken(1, req.Username)
	return auth.TokenResponse{AccessToken: token, ExpiresAt: exp, Username: req.Username}, err
}

func (f *fakeAuth) EnsureAdmin(context.Context, string, string) error { return nil }

type testServer struct {
	t     *testing.T
	srv   *httptest.Server
	jwt   jwt.Service
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	actions := &memRepo[disciplinaryaction.DisciplinaryAction, *disciplinaryaction.DisciplinaryAction]{
		table: disciplinaryaction.Fields, notFound: disciplinaryaction.ErrDisciplinaryActionNotFound,
		sheetOf: func(a disciplinaryaction.DisciplinaryAction) *int64 { return a.InformationSheetID },
	}
	sheets := sheetRepo{&memRepo[informationsheet.InformationSheet, *informationsheet.InformationSheet]{
		table: informationsheet.Fields, notFound: informationsheet.ErrInformationSheetNotFound,
	}}
	recs := records.NewRecordsService(
		&memRepo[bankexperience.BankExperience, *bankexperience.BankExperience]{
			table: bankexperience.Fields, notFound: bankexperience.ErrBankExperienceNotFound,
			sheetOf: func(b bankexperience.BankExperience) *int64 { return b.InformationSheetID },
		},
		&memRepo[nonbankexperience.NonBankExperience, *nonbankexperience.NonBankExperience]{
			table: nonbankexperience.Fields, notFound: nonbankexperience.ErrNonBankExperienceNotFound,
			sheetOf: func(n nonbankexperience.NonBankExperience) *int64 { return n.InformationSheetID },
		},
		actions,
		&memRepo[professionaltraining.ProfessionalTraining, *professionaltraining.ProfessionalTraining]{
			table: professionaltraining.Fields, notFound: professionaltraining.ErrProfessionalTrainingNotFound,
			sheetOf: func(p professionaltraining.ProfessionalTraining) *int64 { return p.InformationSheetID },
		},
	)
	inTx := func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	sheetSvc := sheetService.NewInformationSheetService(sheets, actions, inTx)
	reports := reportService.NewReportService(sheetSvc, recs, report.Letterhead{BankName: "Banque", City: "Alger", Signatory: "Le DRH"})

	router := NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"http://localhost:3000"}, jwtService, Handlers{
		Auth:                  NewAuthHandler(jwtService, &fakeAuth{jwt: jwtService}),
		InformationSheets:     NewInformationSheetHandler(sheetSvc),
		BankExperiences:       NewResourceHandler[bankexperience.BankExperience]("Bank experience", bankexperience.Fields, recs.BankExperiences),
		NonBankExperiences:    NewResourceHandler[nonbankexperience.NonBankExperience]("Non-bank experience", nonbankexperience.Fields, recs.NonBankExperiences),
		DisciplinaryActions:   NewResourceHandler[disciplinaryaction.DisciplinaryAction]("Disciplinary action", disciplinaryaction.Fields, recs.DisciplinaryActions),
		ProfessionalTrainings: NewResourceHandler[professionaltraining.ProfessionalTraining]("Professional training", professionaltraining.Fields, recs.ProfessionalTrainings),
		Reports:               NewReportHandler(reports),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	ts := &testServer{t: t, srv: srv, jwt: jwtService}
	ts.token, _, err = jwtService.GenerateAccessToken(1, "admin")
	require.NoError(t, err)
	return ts
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		TotalItems int `json:"total_items"`
	} `json:"meta"`
}

func (ts *testServer) do(method, path, body string) (*http.Response, []byte) {
	ts.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rd)
	require.NoError(ts.t, err)
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.srv.Client().Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)
	return resp, raw
}

func (ts *testServer) json(method, path, body string, wantStatus int) envelope {
	ts.t.Helper()
	resp, raw := ts.do(method, path, body)
	require.Equal(ts.t, wantStatus, resp.StatusCode, string(raw))
	var env envelope
	require.NoError(ts.t, json.Unmarshal(raw, &env), string(raw))
	return env
}

func dataObject(t *testing.T, env envelope) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m
}

const sheetBody = `{
	"matricule": "M-0100", "nom": "BENALI", "prenom": "Karim",
	"date_naissance": "1985-03-12", "sexe": "M", "date_recrutement": "2010-09-01",
	"poste": "Guichetier",
	"disciplinary_actions": [
		{"type_sanction": "Avertissement", "reference_decision": "DRH/2019/12", "date_decision": "2019-05-02"}
	]
}`

func TestAuth_Login(t *testing.T) {
	ts := newTestServer(t)
	ts.token = ""

	env := ts.json(http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"s3cret-pass"}`, http.StatusCreated)
	data := dataObject(t, env)
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "admin", data["username"])

	env = ts.json(http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"wrong"}`, http.StatusUnauthorized)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	env = ts.json(http.MethodPost, "/api/v1/auth/login", `{"username":"","password":""}`, http.StatusUnprocessableEntity)
	assert.Contains(t, env.Error.Details, "username")

	ts.json(http.MethodPost, "/api/v1/auth/login", `not json`, http.StatusBadRequest)
}

func TestAuth_RoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)
	ts.token = ""

	for _, path := range []string{
		"/api/v1/information-sheets",
		"/api/v1/bank-experiences",
		"/api/v1/non-bank-experiences",
		"/api/v1/disciplinary-actions",
		"/api/v1/professional-trainings",
		"/api/v1/information-sheets/export",
	} {
		resp, _ := ts.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAuth_Logout(t *testing.T) {
	ts := newTestServer(t)

	ts.json(http.MethodPost, "/api/v1/auth/logout", "", http.StatusOK)
	ts.json(http.MethodGet, "/api/v1/information-sheets", "", http.StatusUnauthorized)
}

func TestResource_CRUD(t *testing.T) {
	ts := newTestServer(t)

	env := ts.json(http.MethodPost, "/api/v1/bank-experiences",
		`{"information_sheet_id": 3, "affectation": "Agence Alger", "poste": "Caissier", "date_debut": "2012-01-01", "pbi": 4}`,
		http.StatusCreated)
	created := dataObject(t, env)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, float64(3), created["information_sheet_id"])
	assert.Equal(t, "2012-01-01", created["date_debut"])
	assert.NotContains(t, created, "dateDebut")
	assert.NotContains(t, created, "date_fin")

	ts.json(http.MethodPost, "/api/v1/bank-experiences",
		`{"affectation": "Siège", "poste": "Analyste", "date_debut": "2016-01-01"}`, http.StatusCreated)

	env = ts.json(http.MethodGet, "/api/v1/bank-experiences", "", http.StatusOK)
	assert.Equal(t, 2, env.Meta.TotalItems)

	env = ts.json(http.MethodGet, "/api/v1/bank-experiences?information_sheet_id=3", "", http.StatusOK)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Agence Alger", list[0]["affectation"])

	env = ts.json(http.MethodPut, "/api/v1/bank-experiences/1", `{"date_fin": "2015-06-30"}`, http.StatusOK)
	updated := dataObject(t, env)
	assert.Equal(t, "2015-06-30", updated["date_fin"])
	assert.Equal(t, "Caissier", updated["poste"])

	env = ts.json(http.MethodGet, "/api/v1/bank-experiences/1", "", http.StatusOK)
	assert.Equal(t, "2015-06-30", dataObject(t, env)["date_fin"])

	ts.json(http.MethodDelete, "/api/v1/bank-experiences/1", "", http.StatusOK)
	env = ts.json(http.MethodGet, "/api/v1/bank-experiences/1", "", http.StatusNotFound)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestResource_Errors(t *testing.T) {
	ts := newTestServer(t)
	ts.json(http.MethodPost, "/api/v1/professional-trainings",
		`{"specialite": "Audit", "etablissement": "ESB", "date_debut": "2020-01-01"}`, http.StatusCreated)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"validation", http.MethodPost, "/api/v1/professional-trainings", `{"specialite": "Audit"}`, http.StatusUnprocessableEntity},
		{"inverted dates", http.MethodPut, "/api/v1/professional-trainings/1", `{"date_fin": "2019-01-01"}`, http.StatusUnprocessableEntity},
		{"unknown field", http.MethodPut, "/api/v1/professional-trainings/1", `{"salaire": 1}`, http.StatusBadRequest},
		{"wrong type", http.MethodPut, "/api/v1/professional-trainings/1", `{"diplome": 5}`, http.StatusBadRequest},
		{"camelCase field", http.MethodPut, "/api/v1/professional-trainings/1", `{"dateFin": "2021-01-01"}`, http.StatusBadRequest},
		{"id change", http.MethodPut, "/api/v1/professional-trainings/1", `{"id": 9}`, http.StatusBadRequest},
		{"missing record", http.MethodPut, "/api/v1/professional-trainings/99", `{"diplome": "Master"}`, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/api/v1/professional-trainings/99", "", http.StatusNotFound},
		{"bad id", http.MethodGet, "/api/v1/professional-trainings/abc", "", http.StatusBadRequest},
		{"bad filter", http.MethodGet, "/api/v1/professional-trainings?information_sheet_id=x", "", http.StatusBadRequest},
		{"null body", http.MethodPost, "/api/v1/professional-trainings", `null`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/professional-trainings", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := ts.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode, string(raw))
		})
	}
}

func TestResource_ValidationDetailsUseWireNames(t *testing.T) {
	ts := newTestServer(t)

	env := ts.json(http.MethodPost, "/api/v1/non-bank-experiences", `{"poste": "Comptable", "date_debut": "2001-13-01"}`,
		http.StatusUnprocessableEntity)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "organisme")
	assert.Contains(t, env.Error.Details, "date_debut")
}

func TestInformationSheet_EmbedsActions(t *testing.T) {
	ts := newTestServer(t)

	env := ts.json(http.MethodPost, "/api/v1/information-sheets", sheetBody, http.StatusCreated)
	created := dataObject(t, env)
	require.Equal(t, float64(1), created["id"])
	actions, ok := created["disciplinary_actions"].([]any)
	require.True(t, ok)
	require.Len(t, actions, 1)
	assert.Equal(t, "DRH/2019/12", actions[0].(map[string]any)["reference_decision"])

	env = ts.json(http.MethodGet, "/api/v1/disciplinary-actions?information_sheet_id=1", "", http.StatusOK)
	assert.Equal(t, 1, env.Meta.TotalItems)

	env = ts.json(http.MethodGet, "/api/v1/information-sheets/1", "", http.StatusOK)
	got := dataObject(t, env)
	assert.Equal(t, "1985-03-12", got["date_naissance"])
	assert.Len(t, got["disciplinary_actions"], 1)

	ts.json(http.MethodPut, "/api/v1/information-sheets/1", `{"disciplinary_actions": []}`, http.StatusBadRequest)
	env = ts.json(http.MethodPut, "/api/v1/information-sheets/1", `{"poste": "Chargé de clientèle"}`, http.StatusOK)
	assert.Equal(t, "Chargé de clientèle", dataObject(t, env)["poste"])
}

func TestReports(t *testing.T) {
	ts := newTestServer(t)
	ts.json(http.MethodPost, "/api/v1/information-sheets", sheetBody, http.StatusCreated)

	resp, raw := ts.do(http.MethodGet, "/api/v1/information-sheets/1/reports/work-certificate", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attestation-travail-m-0100.html")
	assert.Contains(t, string(raw), "ATTESTATION DE TRAVAIL")

	resp, raw = ts.do(http.MethodGet, "/api/v1/information-sheets/1/reports/work-certificate?format=markdown", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "## ATTESTATION DE TRAVAIL")

	resp, raw = ts.do(http.MethodGet, "/api/v1/information-sheets/1/reports/investigation-letter?disciplinary_action_id=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Contains(t, string(raw), "DRH/2019/12")

	ts.json(http.MethodGet, "/api/v1/information-sheets/1/reports/investigation-letter", "", http.StatusBadRequest)
	ts.json(http.MethodGet, "/api/v1/information-sheets/1/reports/investigation-letter?disciplinary_action_id=7", "", http.StatusNotFound)
	ts.json(http.MethodGet, "/api/v1/information-sheets/9/reports/work-certificate", "", http.StatusNotFound)

	resp, raw = ts.do(http.MethodGet, "/api/v1/information-sheets/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(raw, []byte("PK")))
}

func TestHeartbeat(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := ts.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
