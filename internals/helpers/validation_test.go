package helper

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feeRequest struct {
	Name string           `json:"name" validate:"required,max=10"`
	Fee  *decimal.Decimal `json:"fee" validate:"omitempty,gte=0"`
	Kind string           `json:"kind" validate:"omitempty,oneof=Cash Mobile_Banking"`
}

func (r *feeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Kind == "" {
		r.Kind = "Cash"
	}
}

type patchRequest struct {
	Note *string             `json:"note"`
	Paid Optional[time.Time] `json:"paid"`
}

func (r patchRequest) HasAnyField() bool {
	return r.Note != nil || r.Paid.Set
}

func bindErr(t *testing.T, body string, bind func(c *fiber.Ctx) error) error {
	t.Helper()
	var got error
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		got = bind(c)
		return nil
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func TestBindBody(t *testing.T) {
	var req feeRequest
	bind := func(c *fiber.Ctx) (err error) {
		req, err = BindBody[feeRequest](c)
		return err
	}

	t.Run("normalizes and accepts", func(t *testing.T) {
		require.NoError(t, bindErr(t, `{"name":"  A-101  ","fee":1500}`, bind))
		assert.Equal(t, "A-101", req.Name)
		assert.Equal(t, "Cash", req.Kind)
		require.NotNil(t, req.Fee)
		assert.True(t, req.Fee.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("negative fee", func(t *testing.T) {
		err := bindErr(t, `{"name":"A","fee":-1}`, bind)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Errors, 1)
		assert.Equal(t, "fee", vErr.Errors[0].Path)
	})

	t.Run("missing name and bad kind", func(t *testing.T) {
		err := bindErr(t, `{"kind":"Card"}`, bind)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		paths := []string{}
		for _, fe := range vErr.Errors {
			paths = append(paths, fe.Path)
		}
		assert.ElementsMatch(t, []string{"name", "kind"}, paths)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := bindErr(t, `{"name":`, bind)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "body", vErr.Errors[0].Path)
	})
}

func TestBindUpdateRequiresAField(t *testing.T) {
	bind := func(c *fiber.Ctx) error {
		_, err := BindUpdate[patchRequest](c)
		return err
	}

	err := bindErr(t, `{}`, bind)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "At least one field must be provided", vErr.Errors[0].Message)

	// an explicit null counts as a field
	assert.NoError(t, bindErr(t, `{"paid":null}`, bind))
}

func TestOptional(t *testing.T) {
	var absent, null, set patchRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"paid":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"paid":"2026-03-05T00:00:00Z"}`), &set))

	assert.False(t, absent.Paid.Set)
	assert.True(t, null.Paid.Set)
	assert.Nil(t, null.Paid.Value)
	assert.True(t, set.Paid.Set)
	require.NotNil(t, set.Paid.Value)
	assert.Equal(t, 2026, set.Paid.Value.Year())

	out, err := json.Marshal(null.Paid)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
