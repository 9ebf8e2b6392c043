package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/application/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPropertyUseCase is a mock implementation of PropertyUseCase
type MockPropertyUseCase struct {
	mock.Mock
}

func (m *MockPropertyUseCase) Create(ctx context.Context, orgID, userID uuid.UUID, req property.CreatePropertyRequest) (*property.PropertyResponse, error) {
	args := m.Called(ctx, orgID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.PropertyResponse), args.Error(1)
}

func (m *MockPropertyUseCase) GetByID(ctx context.Context, orgID, id uuid.UUID) (*property.PropertyResponse, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.PropertyResponse), args.Error(1)
}

func (m *MockPropertyUseCase) List(ctx context.Context, orgID uuid.UUID, filter property.PropertyListFilter) ([]property.PropertyResponse, int64, error) {
	args := m.Called(ctx, orgID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]property.PropertyResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyUseCase) Update(ctx context.Context, orgID, id uuid.UUID, req property.UpdatePropertyRequest) (*property.PropertyResponse, error) {
	args := m.Called(ctx, orgID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.PropertyResponse), args.Error(1)
}

func (m *MockPropertyUseCase) Activate(ctx context.Context, orgID, id uuid.UUID) (*property.PropertyResponse, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.PropertyResponse), args.Error(1)
}

func (m *MockPropertyUseCase) Deactivate(ctx context.Context, orgID, id uuid.UUID) (*property.PropertyResponse, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.PropertyResponse), args.Error(1)
}

func (m *MockPropertyUseCase) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

// MockUnitUseCase is a mock implementation of UnitUseCase
type MockUnitUseCase struct {
	mock.Mock
}

func (m *MockUnitUseCase) Create(ctx context.Context, orgID, userID uuid.UUID, req property.CreateUnitRequest) (*property.UnitResponse, error) {
	args := m.Called(ctx, orgID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.UnitResponse), args.Error(1)
}

func (m *MockUnitUseCase) GetByID(ctx context.Context, orgID, id uuid.UUID) (*property.UnitResponse, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.UnitResponse), args.Error(1)
}

func (m *MockUnitUseCase) List(ctx context.Context, orgID uuid.UUID, filter property.UnitListFilter) ([]property.UnitResponse, int64, error) {
	args := m.Called(ctx, orgID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]property.UnitResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockUnitUseCase) Update(ctx context.Context, orgID, id uuid.UUID, req property.UpdateUnitRequest) (*property.UnitResponse, error) {
	args := m.Called(ctx, orgID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.UnitResponse), args.Error(1)
}

func (m *MockUnitUseCase) SetStatus(ctx context.Context, orgID, id uuid.UUID, req property.SetUnitStatusRequest) (*property.UnitResponse, error) {
	args := m.Called(ctx, orgID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.UnitResponse), args.Error(1)
}

func (m *MockUnitUseCase) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func newPropertyTestRouter(props PropertyUseCase, units UnitUseCase) *gin.Engine {
	ph := NewPropertyHandler(props)
	uh := NewUnitHandler(units)
	r := newAuthedRouter()
	r.POST("/properties", ph.Create)
	r.GET("/properties", ph.List)
	r.GET("/properties/:id", ph.GetByID)
	r.PUT("/properties/:id", ph.Update)
	r.POST("/properties/:id/activate", ph.Activate)
	r.POST("/properties/:id/deactivate", ph.Deactivate)
	r.DELETE("/properties/:id", ph.Delete)
	r.POST("/units", uh.Create)
	r.PUT("/units/:id/status", uh.SetStatus)
	r.DELETE("/units/:id", uh.Delete)
	return r
}

func validPropertyBody() map[string]any {
	return map[string]any{
		"name": "Maple Court",
		"type": "apartment",
		"address": map[string]any{
			"street":      "12 Maple St",
			"city":        "Springfield",
			"postal_code": "12345",
			"country":     "US",
		},
	}
}

func TestPropertyHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		props := new(MockPropertyUseCase)
		created := &property.PropertyResponse{ID: uuid.New(), Name: "Maple Court", Type: "apartment", Status: "active"}
		props.On("Create", mock.Anything, testOrgID, testUserID, mock.MatchedBy(func(req property.CreatePropertyRequest) bool {
			return req.Name == "Maple Court" && req.Address.City == "Springfield"
		})).Return(created, nil)

		w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodPost, "/properties", validPropertyBody())

		require.Equal(t, http.StatusCreated, w.Code)
		data := decodeResponse(t, w).Data.(map[string]any)
		assert.Equal(t, created.ID.String(), data["id"])
		props.AssertExpectations(t)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name  string
			edit  func(map[string]any)
			field string
		}{
			{"missing name", func(b map[string]any) { delete(b, "name") }, "name"},
			{"unknown type", func(b map[string]any) { b["type"] = "castle" }, "type"},
			{"bad country", func(b map[string]any) { b["address"].(map[string]any)["country"] = "USA" }, "country"},
			{"year too early", func(b map[string]any) { b["year_built"] = 1200 }, "year_built"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				props := new(MockPropertyUseCase)
				body := validPropertyBody()
				tt.edit(body)

				w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodPost, "/properties", body)

				require.Equal(t, http.StatusBadRequest, w.Code)
				resp := decodeResponse(t, w)
				require.NotEmpty(t, resp.Error.Details)
				assert.Contains(t, resp.Error.Details[0].Field, tt.field)
				props.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}

func TestPropertyHandler_List(t *testing.T) {
	props := new(MockPropertyUseCase)
	items := []property.PropertyResponse{{ID: uuid.New(), Name: "A"}, {ID: uuid.New(), Name: "B"}}
	props.On("List", mock.Anything, testOrgID, mock.MatchedBy(func(f property.PropertyListFilter) bool {
		return f.Status == "active" && f.City == "Springfield" && f.Page == 2 && f.PageSize == 2
	})).Return(items, int64(5), nil)

	w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodGet,
		"/properties?status=active&city=Springfield&page=2&page_size=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Len(t, resp.Data.([]any), 2)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(5), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	t.Run("rejects unknown status", func(t *testing.T) {
		w := doRequest(newPropertyTestRouter(new(MockPropertyUseCase), new(MockUnitUseCase)), http.MethodGet, "/properties?status=sold", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPropertyHandler_GetByID(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		props := new(MockPropertyUseCase)
		props.On("GetByID", mock.Anything, testOrgID, id).Return(&property.PropertyResponse{ID: id}, nil)

		w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodGet, "/properties/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		props := new(MockPropertyUseCase)
		props.On("GetByID", mock.Anything, testOrgID, id).Return(nil, shared.ErrNotFound)

		w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodGet, "/properties/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(newPropertyTestRouter(new(MockPropertyUseCase), new(MockUnitUseCase)), http.MethodGet, "/properties/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPropertyHandler_Transitions(t *testing.T) {
	id := uuid.New()
	props := new(MockPropertyUseCase)
	props.On("Deactivate", mock.Anything, testOrgID, id).Return(&property.PropertyResponse{ID: id, Status: "inactive"}, nil)
	props.On("Activate", mock.Anything, testOrgID, id).
		Return(nil, shared.NewDomainError("ALREADY_ACTIVE", "Property is already active"))
	r := newPropertyTestRouter(props, new(MockUnitUseCase))

	w := doRequest(r, http.MethodPost, "/properties/"+id.String()+"/deactivate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inactive", decodeResponse(t, w).Data.(map[string]any)["status"])

	w = doRequest(r, http.MethodPost, "/properties/"+id.String()+"/activate", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ERR_ALREADY_ACTIVE", decodeResponse(t, w).Error.Code)
}

func TestPropertyHandler_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("no content", func(t *testing.T) {
		props := new(MockPropertyUseCase)
		props.On("Delete", mock.Anything, testOrgID, id).Return(nil)

		w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodDelete, "/properties/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("property with units", func(t *testing.T) {
		props := new(MockPropertyUseCase)
		props.On("Delete", mock.Anything, testOrgID, id).
			Return(shared.NewDomainError("PROPERTY_HAS_UNITS", "Property still has units"))

		w := doRequest(newPropertyTestRouter(props, new(MockUnitUseCase)), http.MethodDelete, "/properties/"+id.String(), nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "ERR_PROPERTY_HAS_UNITS", decodeResponse(t, w).Error.Code)
	})
}

func TestUnitHandler(t *testing.T) {
	propertyID := uuid.New()
	unitID := uuid.New()

	t.Run("create", func(t *testing.T) {
		units := new(MockUnitUseCase)
		units.On("Create", mock.Anything, testOrgID, testUserID, mock.MatchedBy(func(req property.CreateUnitRequest) bool {
			return req.PropertyID == propertyID && req.UnitNumber == "2B"
		})).Return(&property.UnitResponse{ID: unitID}, nil)

		w := doRequest(newPropertyTestRouter(new(MockPropertyUseCase), units), http.MethodPost, "/units", map[string]any{
			"property_id": propertyID,
			"unit_number": "2B",
			"bedrooms":    2,
			"market_rent": "1450.00",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		units.AssertExpectations(t)
	})

	t.Run("occupied is not a settable status", func(t *testing.T) {
		units := new(MockUnitUseCase)

		w := doRequest(newPropertyTestRouter(new(MockPropertyUseCase), units), http.MethodPut,
			"/units/"+unitID.String()+"/status", map[string]string{"status": "occupied"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		units.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete occupied unit", func(t *testing.T) {
		units := new(MockUnitUseCase)
		units.On("Delete", mock.Anything, testOrgID, unitID).
			Return(shared.NewDomainError("UNIT_OCCUPIED", "Unit is occupied"))

		w := doRequest(newPropertyTestRouter(new(MockPropertyUseCase), units), http.MethodDelete, "/units/"+unitID.String(), nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
