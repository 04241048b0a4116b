package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/content"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/services"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) AnalyzeInquiry(ctx context.Context, description string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, description)
	result, _ := args.Get(0).(*models.AnalysisResult)
	return result, args.Error(1)
}

func (m *mockService) AnalyzeBrief(ctx context.Context, upload *models.BriefUpload) (*models.BriefAnalysisResponse, error) {
	args := m.Called(ctx, upload)
	resp, _ := args.Get(0).(*models.BriefAnalysisResponse)
	return resp, args.Error(1)
}

func (m *mockService) SubmitInquiry(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.SubmitResponse)
	return resp, args.Error(1)
}

func (m *mockService) Ready(ctx context.Context) (*models.Readiness, error) {
	args := m.Called(ctx)
	readiness, _ := args.Get(0).(*models.Readiness)
	return readiness, args.Error(1)
}

var _ services.InquiryService = (*mockService)(nil)

func testLogger() *utils.Logger {
	return utils.NewLoggerWithWriter(io.Discard, "debug")
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file here"))
	}
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestAnalyzeInquiryHandler(t *testing.T) {
	svc := new(mockService)
	fallback := models.FallbackResult()
	svc.On("AnalyzeInquiry", mock.Anything, "Two storey office fit-out").Return(&fallback, nil)

	h := NewInquiryHandler(svc, 5<<20, testLogger())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries/analyze", strings.NewReader(`{"description":"Two storey office fit-out"}`))
	h.AnalyzeInquiry(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"summary": "We received your request and will review it manually.",
		"recommendedService": "General Consultation",
		"complexityEstimation": "Medium",
		"estimatedTimeline": "TBD"
	}`, rec.Body.String())
}

func TestAnalyzeInquiryHandlerErrors(t *testing.T) {
	svc := new(mockService)
	svc.On("AnalyzeInquiry", mock.Anything, "short").
		Return(nil, utils.NewBadRequestError("Description must be at least 10 characters"))

	h := NewInquiryHandler(svc, 5<<20, testLogger())

	cases := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{"invalid json", `{"description":`, http.StatusBadRequest, "Invalid JSON body"},
		{"precondition", `{"description":"short"}`, http.StatusBadRequest, "Description must be at least 10 characters"},
		{"too large", `{"description":"` + strings.Repeat("x", MaxJSONBodySize) + `"}`, http.StatusRequestEntityTooLarge, "Request body too large"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.AnalyzeInquiry(rec, httptest.NewRequest(http.MethodPost, "/api/v1/inquiries/analyze", strings.NewReader(tc.body)))

			assert.Equal(t, tc.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.errMsg, body["error"])
		})
	}
}

func TestAnalyzeBriefHandler(t *testing.T) {
	svc := new(mockService)
	svc.On("AnalyzeBrief", mock.Anything, mock.MatchedBy(func(u *models.BriefUpload) bool {
		return u.Filename == "brief.txt" && u.ContentType == "text/plain" && string(u.File) == "Warehouse extension, 20,000 sqft"
	})).Return(&models.BriefAnalysisResponse{
		Filename:        "brief.txt",
		ContentType:     "text/plain",
		ExtractedLength: 32,
		Analysis:        models.FallbackResult(),
	}, nil)

	body, contentType := multipartBody(t, "file", "brief.txt", []byte("Warehouse extension, 20,000 sqft"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries/analyze/brief", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	NewInquiryHandler(svc, 5<<20, testLogger()).AnalyzeBrief(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.BriefAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "brief.txt", resp.Filename)
	assert.Equal(t, models.ComplexityMedium, resp.Analysis.ComplexityEstimation)
	svc.AssertExpectations(t)
}

func TestAnalyzeBriefHandlerRejections(t *testing.T) {
	cases := []struct {
		name     string
		field    string
		data     []byte
		maxBrief int64
		status   int
	}{
		{"no file", "", nil, 5 << 20, http.StatusBadRequest},
		{"empty file", "file", nil, 5 << 20, http.StatusBadRequest},
		{"file over limit", "file", bytes.Repeat([]byte("a"), 100), 16, http.StatusRequestEntityTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			body, contentType := multipartBody(t, tc.field, "brief.txt", tc.data)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries/analyze/brief", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			NewInquiryHandler(svc, tc.maxBrief, testLogger()).AnalyzeBrief(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			svc.AssertNotCalled(t, "AnalyzeBrief", mock.Anything, mock.Anything)
		})
	}
}

func TestAnalyzeBriefHandlerRejectsNonMultipart(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries/analyze/brief", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	NewInquiryHandler(new(mockService), 5<<20, testLogger()).AnalyzeBrief(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitInquiryHandler(t *testing.T) {
	svc := new(mockService)
	svc.On("SubmitInquiry", mock.Anything, &models.SubmitRequest{
		FirstName: "Ada", LastName: "Okafor", Email: "ada@company.com", Description: "Office fit-out",
	}).Return(&models.SubmitResponse{Reference: "TC-0A1B2C3D", Status: "received", Message: "Thanks"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(
		`{"firstName":"Ada","lastName":"Okafor","email":"ada@company.com","description":"Office fit-out"}`))
	NewInquiryHandler(svc, 5<<20, testLogger()).SubmitInquiry(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference":"TC-0A1B2C3D"`)
	assert.Contains(t, rec.Body.String(), `"status":"received"`)
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(new(mockService), testLogger()).Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestReadyHandler(t *testing.T) {
	cases := []struct {
		name      string
		readiness *models.Readiness
		err       error
		status    int
		body      string
	}{
		{
			name:      "model",
			readiness: &models.Readiness{Status: "ready", Analysis: models.AnalysisModeModel},
			status:    http.StatusOK,
			body:      `{"status":"ready","analysis":"model"}`,
		},
		{
			name:      "fallback only",
			readiness: &models.Readiness{Status: "ready", Analysis: models.AnalysisModeFallback},
			status:    http.StatusOK,
			body:      `{"status":"ready","analysis":"fallback"}`,
		},
		{
			name:   "unavailable",
			err:    utils.NewServiceUnavailableError("Readiness check cancelled", context.Canceled),
			status: http.StatusServiceUnavailable,
			body:   `{"status":"unavailable","details":"Readiness check cancelled"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Ready", mock.Anything).Return(tc.readiness, tc.err)

			rec := httptest.NewRecorder()
			NewHealthHandler(svc, testLogger()).Ready(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}

func TestRouteErrorHandlers(t *testing.T) {
	h := NewRouteErrorHandler(testLogger())

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method DELETE not allowed"}`, rec.Body.String())
}

func TestContentHandler(t *testing.T) {
	catalog, err := content.Load()
	require.NoError(t, err)
	h := NewContentHandler(catalog, testLogger())

	rec := httptest.NewRecorder()
	h.Services(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content/services", nil))
	var svcs []models.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &svcs))
	assert.Len(t, svcs, 6)

	rec = httptest.NewRecorder()
	h.Projects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content/projects?category=Residential", nil))
	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Azure Residence", projects[0].Title)
	assert.Contains(t, rec.Body.String(), `"imageUrl"`)

	rec = httptest.NewRecorder()
	h.Projects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content/projects?category=Maritime", nil))
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Contact(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content/contact", nil))
	assert.Contains(t, rec.Body.String(), "+1 (212) 555-0199")
}
