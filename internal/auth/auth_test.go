package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestVerify_RoundTrip(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	token, err := GenerateToken("test-secret", userID, time.Hour)
	assert.NoError(t, err)

	parsed, err := Verify("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", uuid.Must(uuid.NewV4()), time.Hour)
	assert.NoError(t, err)

	_, err = Verify("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", uuid.Must(uuid.NewV4()), -time.Minute)
	assert.NoError(t, err)

	_, err = Verify("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := Verify("test-secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

type whoAmIOutput struct {
	Body struct {
		UserID string `json:"userID"`
	}
}

func newMiddlewareTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, "test-secret", logrus.New()))

	huma.Register(api, huma.Operation{
		OperationID: "who-am-i",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		if id, ok := UserID(ctx); ok {
			out.Body.UserID = id.String()
		}
		return out, nil
	})

	return api
}

func TestMiddleware_ValidToken(t *testing.T) {
	api := newMiddlewareTestAPI(t)

	userID := uuid.Must(uuid.NewV4())
	token, err := GenerateToken("test-secret", userID, time.Hour)
	assert.NoError(t, err)

	resp := api.Get("/whoami", "Authorization: Bearer "+token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())
}

func TestMiddleware_MissingToken(t *testing.T) {
	api := newMiddlewareTestAPI(t)

	resp := api.Get("/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_BadToken(t *testing.T) {
	api := newMiddlewareTestAPI(t)

	resp := api.Get("/whoami", "Authorization: Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
