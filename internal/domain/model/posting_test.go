package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fixly/fixly-api/internal/errors"
)

func floatPtr(v float64) *float64 { return &v }

func validCreateRequest() CreatePostingRequest {
	return CreatePostingRequest{
		ClientID:    7,
		Title:       "  Fix leaking sink  ",
		Description: "Kitchen sink drips constantly",
		Location:    "Oslo",
		Urgency:     "high",
		Date:        "2026-09-15",
	}
}

func TestCreatePostingRequest_Validate_TrimsFields(t *testing.T) {
	req := validCreateRequest()
	require.NoError(t, req.Validate())
	assert.Equal(t, "Fix leaking sink", req.Title)
	assert.False(t, req.ServiceDate().IsZero())
}

func TestCreatePostingRequest_Validate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePostingRequest)
	}{
		{"missing client", func(r *CreatePostingRequest) { r.ClientID = 0 }},
		{"missing title", func(r *CreatePostingRequest) { r.Title = "   " }},
		{"missing description", func(r *CreatePostingRequest) { r.Description = "" }},
		{"missing location", func(r *CreatePostingRequest) { r.Location = "" }},
		{"missing urgency", func(r *CreatePostingRequest) { r.Urgency = "" }},
		{"unparsable date", func(r *CreatePostingRequest) { r.Date = "next tuesday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreatePostingRequest_Validate_BudgetBounds(t *testing.T) {
	req := validCreateRequest()
	req.MinBudget = floatPtr(500)
	req.MaxBudget = floatPtr(100)
	err := req.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// Equal bounds are allowed.
	req = validCreateRequest()
	req.MinBudget = floatPtr(250)
	req.MaxBudget = floatPtr(250)
	require.NoError(t, req.Validate())

	// A single bound is allowed.
	req = validCreateRequest()
	req.MinBudget = floatPtr(100)
	require.NoError(t, req.Validate())
}

func TestParseServiceDate_Formats(t *testing.T) {
	for _, v := range []string{"2026-09-15", "2026-09-15T10:30:00Z", " 2026-09-15 "} {
		_, err := ParseServiceDate(v)
		assert.NoError(t, err, v)
	}
	_, err := ParseServiceDate("15/09/2026")
	assert.Error(t, err)
}

func TestPatchPostingRequest_Validate(t *testing.T) {
	var empty PatchPostingRequest
	err := empty.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	title := "New title"
	patch := PatchPostingRequest{Title: &title}
	require.NoError(t, patch.Validate())

	blank := "  "
	patch = PatchPostingRequest{Location: &blank}
	assert.Error(t, patch.Validate())

	patch = PatchPostingRequest{MinBudget: floatPtr(900), MaxBudget: floatPtr(100)}
	assert.Error(t, patch.Validate())
}

func TestDecodeImageList_NormalizesDefensively(t *testing.T) {
	assert.Equal(t, []string{}, DecodeImageList(nil))
	assert.Equal(t, []string{}, DecodeImageList([]byte(`not json`)))
	assert.Equal(t, []string{}, DecodeImageList([]byte(`null`)))
	assert.Equal(t, []string{}, DecodeImageList([]byte(`{"a":1}`)))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, DecodeImageList([]byte(`["a.jpg","b.jpg"]`)))
}

func TestEncodeImageList_NilBecomesEmptyArray(t *testing.T) {
	assert.JSONEq(t, `[]`, string(EncodeImageList(nil)))
	assert.JSONEq(t, `["x.png"]`, string(EncodeImageList([]string{"x.png"})))
}
