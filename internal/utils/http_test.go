package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{
			name: "Basic council",
			path: "Fife",
			want: "Fife",
		},
		{
			name: "Council with JSON extension",
			path: "Fife.json",
			want: "Fife",
		},
		{
			name: "Escaped spaces",
			path: "Dundee%20City.json",
			want: "Dundee City",
		},
		{
			name: "Multiple dots",
			path: "St.Andrews.data.json",
			want: "St.Andrews.data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/test/:council", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "council")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result, "ExtractIDFromParams should correctly extract and clean the parameter")
		})
	}
}

func TestExtractIDFromParams_MissingParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	assert.Empty(t, ExtractIDFromParams(req, "council"))
}
