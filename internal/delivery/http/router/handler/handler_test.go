package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestPaginationFromQuery(t *testing.T) {
	cases := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", target: "/books", wantPage: 1, wantLimit: 20},
		{name: "explicit values", target: "/books?page=3&limit=50", wantPage: 3, wantLimit: 50},
		{name: "limit capped", target: "/books?limit=500", wantPage: 1, wantLimit: 100},
		{name: "garbage falls back", target: "/books?page=abc&limit=-1", wantPage: 1, wantLimit: 20},
		{name: "zero page falls back", target: "/books?page=0", wantPage: 1, wantLimit: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pagination := paginationFromQuery(newTestContext(t, tc.target))
			assert.Equal(t, tc.wantPage, pagination.Page)
			assert.Equal(t, tc.wantLimit, pagination.Limit)
		})
	}
}

func TestIDParam(t *testing.T) {
	c := newTestContext(t, "/books/x")
	id := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	parsed, err := idParam(c)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	c.SetParamValues("not-a-uuid")
	_, err = idParam(c)
	require.Error(t, err)
}

func TestActorID(t *testing.T) {
	c := newTestContext(t, "/books")

	_, err := actorID(c)
	require.Error(t, err, "missing header is rejected")

	c.Request().Header.Set(HeaderXActorID, "nope")
	_, err = actorID(c)
	require.Error(t, err, "malformed header is rejected")

	actor := uuid.New()
	c.Request().Header.Set(HeaderXActorID, actor.String())
	parsed, err := actorID(c)
	require.NoError(t, err)
	assert.Equal(t, actor, parsed)
}
