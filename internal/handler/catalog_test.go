package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/handler/gen"
)

func TestListDestinations_200(t *testing.T) {
	svc := &mockCatalogServicer{
		destinations: func() []domain.Destination {
			return []domain.Destination{{ID: "1", Name: "Big Sur", Location: "California", Image: "bs.jpg"}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []gen.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Big Sur", resp[0].Name)
}

func TestListAmenities_200(t *testing.T) {
	svc := &mockCatalogServicer{
		amenities: func() []domain.Amenity {
			return []domain.Amenity{{Icon: "eco", Title: "Leave No Trace", Description: "d"}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/amenities", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []gen.Amenity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "eco", resp[0].Icon)
}

func TestListCampsites_PassesQuery(t *testing.T) {
	var got string
	svc := &mockCatalogServicer{
		campsites: func(q string) []domain.Campsite {
			got = q
			return []domain.Campsite{campsiteFixture()}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/campsites?q=Tahoe", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tahoe", got)

	var resp []gen.Campsite
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "s1", resp[0].Id)
}

func TestListCampsites_NoQuery_EmptyString(t *testing.T) {
	got := "unset"
	svc := &mockCatalogServicer{
		campsites: func(q string) []domain.Campsite {
			got = q
			return []domain.Campsite{}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/campsites", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", got)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetCampsite_200_MapsOptionalFields(t *testing.T) {
	svc := &mockCatalogServicer{
		campsiteByID: func(id string) (domain.Campsite, bool) {
			return campsiteFixture(), id == "s1"
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/campsites/s1", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Campsite
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 85, resp.Price)
	assert.InDelta(t, 4.8, resp.Rating, 0.0001)
	require.NotNil(t, resp.IsEco)
	assert.True(t, *resp.IsEco)
	assert.Nil(t, resp.IsNew, "unset flag should be omitted")
	require.NotNil(t, resp.Coordinates)
	assert.Equal(t, "35%", resp.Coordinates.Top)
}

func TestGetCampsite_404(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/campsites/nope", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(emptyCatalog(), nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "nope")
}
