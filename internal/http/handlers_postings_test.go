package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/fixly/fixly-api/internal/domain/auth"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
	"github.com/fixly/fixly-api/internal/mocks"
	"github.com/fixly/fixly-api/internal/service"
)

func newTestPostingHandlers(t *testing.T) (*PostingHandlers, *mocks.MockPostingRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPostingRepository(ctrl)
	svc := service.NewPostingService(service.PostingServiceOptions{Repo: repo})
	return &PostingHandlers{Svc: svc}, repo
}

// withPrincipal stamps an authenticated principal onto the request, the way
// RequireAuth would.
func withPrincipal(r *http.Request, p domainauth.Principal) *http.Request {
	return r.WithContext(SetPrincipalInContext(r.Context(), p))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestCreatePosting_Success(t *testing.T) {
	h, repo := newTestPostingHandlers(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(42), nil)

	r := jsonRequest(t, http.MethodPost, "/api/job-postings", map[string]any{
		"title":       "Fix leaking sink",
		"description": "Kitchen sink drips",
		"location":    "Springfield",
		"urgency":     "high",
		"date":        "2026-09-15",
	})
	r = withPrincipal(r, domainauth.Principal{UserID: 7, Role: domainauth.RoleClient})
	w := httptest.NewRecorder()

	h.CreatePosting(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(42), body["job_id"])
}

func TestCreatePosting_ValidationFailure(t *testing.T) {
	h, _ := newTestPostingHandlers(t)

	r := jsonRequest(t, http.MethodPost, "/api/job-postings", map[string]any{
		"title": "   ",
	})
	r = withPrincipal(r, domainauth.Principal{UserID: 7, Role: domainauth.RoleClient})
	w := httptest.NewRecorder()

	h.CreatePosting(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestCreatePosting_MalformedJSON(t *testing.T) {
	h, _ := newTestPostingHandlers(t)

	r := httptest.NewRequest(http.MethodPost, "/api/job-postings", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	h.CreatePosting(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPostings_EmptyRendersAsArray(t *testing.T) {
	h, repo := newTestPostingHandlers(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/job-postings", nil)
	w := httptest.NewRecorder()

	h.ListPostings(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListClientPostings_InvalidID(t *testing.T) {
	h, _ := newTestPostingHandlers(t)

	r := httptest.NewRequest(http.MethodGet, "/api/job-postings/abc", nil)
	r.SetPathValue("userId", "abc")
	w := httptest.NewRecorder()

	h.ListClientPostings(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePosting_NotFound(t *testing.T) {
	h, repo := newTestPostingHandlers(t)
	repo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
		Return(apperrors.NotFound("job posting not found"))

	r := jsonRequest(t, http.MethodPut, "/api/job-postings/5", map[string]any{
		"title":       "Fix sink",
		"description": "desc",
		"location":    "Springfield",
		"urgency":     "low",
		"date":        "2026-09-15",
	})
	r.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	h.UpdatePosting(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchPosting_NoFields(t *testing.T) {
	h, _ := newTestPostingHandlers(t)

	r := jsonRequest(t, http.MethodPatch, "/api/job-postings/5", map[string]any{})
	r.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	h.PatchPosting(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditPosting_LegacyAlias(t *testing.T) {
	h, repo := newTestPostingHandlers(t)
	repo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(nil)

	r := jsonRequest(t, http.MethodPost, "/api/edit-postings", map[string]any{
		"job_id":      5,
		"title":       "Fix sink",
		"description": "desc",
		"location":    "Springfield",
		"urgency":     "low",
		"date":        "2026-09-15",
	})
	w := httptest.NewRecorder()

	h.EditPosting(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePosting_Forbidden(t *testing.T) {
	h, repo := newTestPostingHandlers(t)
	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&model.JobPosting{ID: 5, ClientID: 7}, nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/job-postings/5", nil)
	r.SetPathValue("id", "5")
	r = withPrincipal(r, domainauth.Principal{UserID: 99, Role: domainauth.RoleClient})
	w := httptest.NewRecorder()

	h.DeletePosting(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeletePosting_Success(t *testing.T) {
	h, repo := newTestPostingHandlers(t)
	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&model.JobPosting{ID: 5, ClientID: 7}, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(true, nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/job-postings/5", nil)
	r.SetPathValue("id", "5")
	r = withPrincipal(r, domainauth.Principal{UserID: 7, Role: domainauth.RoleClient})
	w := httptest.NewRecorder()

	h.DeletePosting(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeletePosting_MissingPrincipal(t *testing.T) {
	h, _ := newTestPostingHandlers(t)

	r := httptest.NewRequest(http.MethodDelete, "/api/job-postings/5", nil)
	r.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	h.DeletePosting(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWriteServiceError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteServiceError(w, apperrors.Internal("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "internal server error", body["error"])
}

func TestWriteServiceError_UnavailableMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteServiceError(w, apperrors.Wrap(context.DeadlineExceeded, apperrors.ErrCodeUnavailable, "query timeout"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "service temporarily unavailable", body["error"])
}
