package validation

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ID       int    `param:"id" json:"-"`
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Duration int    `json:"duration" validate:"required"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "member_id", Message: "must reference a member"}}
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(http.MethodPut, `{"name":"Ann","date":"2024-03-01","duration":45,"id":99}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	req := &sampleRequest{}
	require.NoError(t, BindAndValidate(c, req))

	assert.Equal(t, 7, req.ID)
	assert.Equal(t, "Ann", req.Name)
	assert.Equal(t, 45, req.Duration)
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":"","date":"2024-13-01","duration":0}`)

	err := BindAndValidate(c, &sampleRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.MessageMissingData, httpErr.Message)
	assert.Equal(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "date", Error: "must be a date in YYYY-MM-DD format"},
		{Field: "duration", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidateNullIsMissing(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":null,"date":"2024-01-01","duration":30}`)

	err := BindAndValidate(c, &sampleRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":5}`)

	err := BindAndValidate(c, &sampleRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, MessageInvalidRequest, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateBadPathParam(t *testing.T) {
	c := newContext(http.MethodPut, `{"name":"Ann","date":"2024-03-01","duration":45}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := BindAndValidate(c, &sampleRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, MessageInvalidRequest, httpErr.Message)
	assert.NotContains(t, httpErr.Message, "strconv")
}

func TestBindAndValidateLogsBindDetail(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c := newContext(http.MethodPost, `{"name":5}`)
	c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

	err := BindAndValidate(c, &sampleRequest{})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "request binding failed")
	assert.Contains(t, buf.String(), "Unmarshal type error")
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{}`)

	err := BindAndValidate(c, &customRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []errs.FieldError{{Field: "member_id", Error: "must reference a member"}}, httpErr.Errors)
}
