package dependent

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

type mockDependentService struct {
	mock.Mock
}

func (m *mockDependentService) CreateDependent(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockDependentService) ListDependents(ctx context.Context, userID uuid.UUID) ([]service.Dependent, error) {
	args := m.Called(ctx, userID)
	dependents, _ := args.Get(0).([]service.Dependent)
	return dependents, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockDependentService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(auth.WithUser(ctx, userID))
	})
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateDependent_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	dependentID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDependentService)
	mockSvc.On("CreateDependent", mock.Anything, userID, "Alex").Return(dependentID, nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/dependent", CreateDependentBody{Name: "Alex"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateDependentResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, dependentID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateDependent_EmptyName(t *testing.T) {
	mockSvc := new(mockDependentService)

	// minLength:"1" violation.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/dependent", CreateDependentBody{Name: ""})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateDependent")
}

func TestHTTP_ListDependents_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockDependentService)
	mockSvc.On("ListDependents", mock.Anything, userID).Return([]service.Dependent{
		{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Alex", CreatedAt: now},
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/dependent")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListDependentsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Dependents, 1)
	assert.Equal(t, "Alex", body.Dependents[0].Name)
	mockSvc.AssertExpectations(t)
}
