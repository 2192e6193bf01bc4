package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bazroba/pkg/errors"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSuccessEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Success(c, map[string]string{"hello": "world"})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Timestamp)
}

func TestErrorMapsAppError(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, apperrors.NotFound("Product", nil))
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, apperrors.CodeNotFound, body.Error.Code)
	assert.Equal(t, "Product not found", body.Error.Message)
}

func TestErrorHidesUnexpectedErrors(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, errors.New("pq: connection reset"))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, apperrors.CodeInternal, body.Error.Code)
	assert.NotContains(t, body.Error.Message, "pq:")
}

func TestErrorFormatsValidationFailures(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	rec, body := record(t, func(c echo.Context) error {
		return Error(c, err)
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "email must be a valid email address", body.Error.Message)
}

func TestPaginatedComputesTotalPages(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Paginated(c, []string{"a", "b"}, 45, 2, 20)
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var page PaginatedResponse
	require.NoError(t, json.Unmarshal(raw, &page))

	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}
