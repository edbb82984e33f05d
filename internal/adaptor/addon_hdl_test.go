package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type fakeAddOnService struct {
	publicFn func(ctx context.Context) ([]response.AddOnResponse, error)
}

func (f *fakeAddOnService) GetPublicAddOns(ctx context.Context) ([]response.AddOnResponse, error) {
	return f.publicFn(ctx)
}

func (f *fakeAddOnService) GetAddOns(context.Context) ([]response.AddOnResponse, error) {
	return nil, nil
}

func (f *fakeAddOnService) CreateAddOn(context.Context, *request.SaveAddOnRequest) (*response.AddOnResponse, error) {
	return nil, nil
}

func (f *fakeAddOnService) UpdateAddOn(context.Context, string, *request.SaveAddOnRequest) (*response.AddOnResponse, error) {
	return nil, nil
}

func (f *fakeAddOnService) DeleteAddOn(context.Context, string) error {
	return nil
}

func TestGetAddOnsTopLevelKey(t *testing.T) {
	service := &fakeAddOnService{
		publicFn: func(context.Context) ([]response.AddOnResponse, error) {
			return []response.AddOnResponse{
				{ID: "a-1", Name: "Surfboard rental", Price: 25, Category: "equipment", IsActive: true},
			}, nil
		},
	}
	handler := NewAddOnHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.GetAddOns(rec, httptest.NewRequest(http.MethodGet, "/api/add-ons", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	// The list sits at the top level, not under data.
	_, hasData := body["data"]
	assert.False(t, hasData)

	addOns, ok := body["addOns"].([]any)
	require.True(t, ok)
	require.Len(t, addOns, 1)
	assert.Equal(t, "Surfboard rental", addOns[0].(map[string]any)["name"])
}

func TestGetAddOnsErrorDegradesToEmptyList(t *testing.T) {
	service := &fakeAddOnService{
		publicFn: func(context.Context) ([]response.AddOnResponse, error) {
			return nil, errors.New("pq: relation does not exist")
		},
	}
	handler := NewAddOnHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.GetAddOns(rec, httptest.NewRequest(http.MethodGet, "/api/add-ons", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	addOns, ok := body["addOns"].([]any)
	require.True(t, ok)
	assert.Empty(t, addOns)
}
