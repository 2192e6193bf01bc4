package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hand-painted Bowl", "hand-painted-bowl"},
		{"Wool & Felt  Slippers", "wool-felt-slippers"},
		{"  Trimmed  ", "trimmed"},
		{"ALL CAPS", "all-caps"},
		{"already-a-slug", "already-a-slug"},
		{"123 Numbers", "123-numbers"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		offset   int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"negative page clamped", "page=-2&limit=10", 1, 10, 0},
		{"oversized limit clamped", "page=1&limit=500", 1, 20, 0},
		{"garbage ignored", "page=abc&limit=xyz", 1, 20, 0},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			params := GetPaginationParams(c)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.pageSize, params.PageSize)
			assert.Equal(t, tt.offset, params.Offset)
		})
	}
}
