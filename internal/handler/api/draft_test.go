//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"equiplend/internal/domain/pool"
	"equiplend/internal/domain/schedule"
	"equiplend/internal/handler/api"
	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"
	"equiplend/tests/common/httptest"
	commandsmock "equiplend/tests/mock/commands"
	queriesmock "equiplend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDraftCommands
	mockQueries  *queriesmock.MockDraftQueries
	handler      *api.DraftHandler
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)
	s.handler = api.NewDraftHandler(s.mockCommands, s.mockQueries)

	// Setup routes
	s.router.POST("/drafts", s.handler.Create)
	s.router.GET("/drafts/:id", s.handler.Get)
	s.router.DELETE("/drafts/:id", s.handler.Abandon)
	s.router.POST("/drafts/:id/dates", s.handler.PickDates)
	s.router.POST("/drafts/:id/dates/reset", s.handler.ResetDates)
	s.router.POST("/drafts/:id/pool/toggle", s.handler.ToggleType)
	s.router.PUT("/drafts/:id/sets/:setId", s.handler.AddSet)
	s.router.DELETE("/drafts/:id/sets/:setId", s.handler.RemoveSet)
	s.router.POST("/drafts/:id/submit", s.handler.Submit)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func draftView(id uuid.UUID) *queries.DraftView {
	return &queries.DraftView{
		ID:                 id,
		Phase:              "issue",
		DisallowedWeekdays: []time.Weekday{time.Saturday, time.Sunday},
		Pools: []queries.PoolView{
			{Manufacturer: "BrandX", Model: "CamKit", Category: "camera", Total: 2, Available: 2},
		},
		Selection: []uuid.UUID{},
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *DraftHandlerTestSuite) TestCreate() {
	url := "/drafts"

	s.Run("success: returns 201 Created with the draft id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().StartDraft(gomock.Any()).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusCreated, rec.Code)

		var body resdto.DraftCreatedResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: policy unavailable maps to 502", func() {
		s.mockCommands.EXPECT().StartDraft(gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("down"), commands.ErrPolicyUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("error: inventory unavailable maps to 502", func() {
		s.mockCommands.EXPECT().StartDraft(gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("down"), commands.ErrInventoryUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DraftHandlerTestSuite) TestGet() {
	s.Run("success: returns the draft view", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(draftView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.DraftResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(id, body.ID)
		s.Equal("issue", body.Phase)
		s.Equal([]string{"Saturday", "Sunday"}, body.DisallowedWeekdays)
		s.Empty(body.DisallowedDates)
		s.Len(body.Pools, 1)
	})

	s.Run("error: unknown draft returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(nil, queries.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), `"message":"Draft not found"`)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestPickDates
// ================================================================================

func (s *DraftHandlerTestSuite) TestPickDates() {
	id := uuid.New()
	url := "/drafts/" + id.String() + "/dates"

	s.Run("success: forwards parsed dates and returns the fresh view", func() {
		s.mockCommands.EXPECT().
			PickDates(gomock.Any(), id, []time.Time{time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(draftView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"dates": []string{"2026-03-02"}})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: rule rejection maps to 422 with the message", func() {
		s.mockCommands.EXPECT().PickDates(gomock.Any(), id, gomock.Any()).
			Return(&schedule.Rejection{
				Reason:  schedule.ErrIssueDayNotAllowed,
				Message: "rentals can only start on Monday",
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"dates": []string{"2026-03-03"}})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "rentals can only start on Monday")
	})

	s.Run("error: empty dates array fails validation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"dates": []string{}})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unparseable date returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"dates": []string{"03/02/2026"}})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestResetDates
// ================================================================================

func (s *DraftHandlerTestSuite) TestResetDates() {
	id := uuid.New()
	url := "/drafts/" + id.String() + "/dates/reset"

	s.Run("success", func() {
		s.mockCommands.EXPECT().ResetDates(gomock.Any(), id).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(draftView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unknown draft returns 404", func() {
		s.mockCommands.EXPECT().ResetDates(gomock.Any(), id).Return(commands.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestToggleType
// ================================================================================

func (s *DraftHandlerTestSuite) TestToggleType() {
	id := uuid.New()
	url := "/drafts/" + id.String() + "/pool/toggle"
	reqBody := map[string]any{"manufacturer": "BrandX", "model": "CamKit"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			ToggleType(gomock.Any(), id, pool.TypeKey{Manufacturer: "BrandX", Model: "CamKit"}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(draftView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unknown type returns 404", func() {
		s.mockCommands.EXPECT().ToggleType(gomock.Any(), id, gomock.Any()).
			Return(pool.ErrUnknownSetType).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: missing model fails validation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"manufacturer": "BrandX"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestAddSet / TestRemoveSet
// ================================================================================

func (s *DraftHandlerTestSuite) TestAddSet() {
	id := uuid.New()
	setID := uuid.New()
	url := "/drafts/" + id.String() + "/sets/" + setID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().AddSet(gomock.Any(), id, setID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(draftView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: unavailable set returns 409", func() {
		s.mockCommands.EXPECT().AddSet(gomock.Any(), id, setID).
			Return(pool.ErrSetUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: unknown set returns 404", func() {
		s.mockCommands.EXPECT().AddSet(gomock.Any(), id, setID).
			Return(pool.ErrUnknownSet).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *DraftHandlerTestSuite) TestRemoveSet() {
	id := uuid.New()
	setID := uuid.New()
	url := "/drafts/" + id.String() + "/sets/" + setID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().RemoveSet(gomock.Any(), id, setID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), id).Return(draftView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *DraftHandlerTestSuite) TestSubmit() {
	id := uuid.New()
	url := "/drafts/" + id.String() + "/submit"
	reqBody := map[string]any{"name": "  field trip  ", "type": "course"}

	s.Run("success: trims the name and returns the backend message", func() {
		s.mockCommands.EXPECT().
			SubmitDraft(gomock.Any(), id, commands.SubmitDraftParams{Name: "field trip", Type: "course"}).
			Return("booked", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var body resdto.SubmitResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("booked", body.Message)
	})

	s.Run("error: incomplete range returns 422", func() {
		s.mockCommands.EXPECT().SubmitDraft(gomock.Any(), id, gomock.Any()).
			Return("", commands.ErrRangeIncomplete).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: empty selection returns 422", func() {
		s.mockCommands.EXPECT().SubmitDraft(gomock.Any(), id, gomock.Any()).
			Return("", commands.ErrEmptySelection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: backend rejection returns 502", func() {
		s.mockCommands.EXPECT().SubmitDraft(gomock.Any(), id, gomock.Any()).
			Return("dates already taken", errs.Mark(errs.New("status 409"), commands.ErrBookingRejected)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("error: missing name fails validation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"type": "course"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestAbandon
// ================================================================================

func (s *DraftHandlerTestSuite) TestAbandon() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().AbandonDraft(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/drafts/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown draft returns 404", func() {
		s.mockCommands.EXPECT().AbandonDraft(gomock.Any(), id).Return(commands.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/drafts/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
