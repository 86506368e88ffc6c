package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plandto "github.com/tcworld/magadmin/internal/application/plan/dto"
	planuc "github.com/tcworld/magadmin/internal/application/plan/usecases"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
)

type planMocks struct {
	create *mockCreatePlanUC
	update *mockUpdatePlanUC
	get    *mockGetPlanUC
	list   *mockListPlansUC
	delete *mockIDUC
}

func newTestPlanHandler() (*PlanHandler, *planMocks) {
	m := &planMocks{
		create: &mockCreatePlanUC{},
		update: &mockUpdatePlanUC{},
		get:    &mockGetPlanUC{},
		list:   &mockListPlansUC{},
		delete: &mockIDUC{},
	}
	return NewPlanHandler(m.create, m.update, m.get, m.list, m.delete, testutil.NewMockLogger()), m
}

func TestPlanHandler_CreatePlan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestPlanHandler()
		m.create.result = &plandto.PlanDTO{ID: "P1", Name: "Yearly", SubscriptionPrice: "250.00", DurationInMonths: 12}

		body := `{"_id":"P1","version":"2024","name":"Yearly","subscription_price":"250.00",` +
			`"subscription_language":"KAN","subscription_mode":"POST","duration_in_months":12}`
		c, w := testutil.NewTestContext(http.MethodPost, "/api/plans", body)
		h.CreatePlan(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "P1", m.create.cmd.ID)
		assert.Equal(t, "KAN", m.create.cmd.LanguageID)
		assert.Equal(t, "POST", m.create.cmd.ModeID)
		require.NotNil(t, m.create.cmd.Price)
		assert.True(t, decimal.RequireFromString("250").Equal(*m.create.cmd.Price))
		require.NotNil(t, m.create.cmd.DurationInMonths)
		assert.Equal(t, 12, *m.create.cmd.DurationInMonths)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var data plandto.PlanDTO
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "250.00", data.SubscriptionPrice)
	})

	t.Run("wrong field type", func(t *testing.T) {
		h, _ := newTestPlanHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/api/plans", `{"_id":"P1","duration_in_months":"twelve"}`)
		h.CreatePlan(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, resp.Error.Fields, "duration_in_months")
	})

	t.Run("validation error from use case", func(t *testing.T) {
		h, m := newTestPlanHandler()
		m.create.err = apperrors.FieldValidation("subscription_language", "Language matching query does not exist.")

		c, w := testutil.NewTestContext(http.MethodPost, "/api/plans", `{"_id":"P1"}`)
		h.CreatePlan(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, []string{"Language matching query does not exist."}, resp.Error.Fields["subscription_language"])
	})
}

func TestPlanHandler_UpdatePlan(t *testing.T) {
	h, m := newTestPlanHandler()
	m.update.result = &plandto.PlanDTO{ID: "P1", Name: "Renamed"}

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/plans/P1", `{"name":"Renamed"}`)
	testutil.SetURLParam(c, "id", "P1")
	h.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "P1", m.update.cmd.ID)
	require.NotNil(t, m.update.cmd.Name)
	assert.Equal(t, "Renamed", *m.update.cmd.Name)
	assert.Nil(t, m.update.cmd.Price)
}

func TestPlanHandler_GetPlan_NotFound(t *testing.T) {
	h, m := newTestPlanHandler()
	m.get.err = apperrors.NewNotFoundError("Plan matching query does not exist.")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans/nope", nil)
	testutil.SetURLParam(c, "id", "nope")
	h.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanHandler_ListPlans(t *testing.T) {
	h, m := newTestPlanHandler()
	m.list.result = &planuc.ListPlansResult{Items: []*plandto.PlanDTO{{ID: "P1"}}, Total: 1, Page: 2, PageSize: 5}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans", nil)
	testutil.SetQueryParams(c, map[string]string{"language": "KAN", "mode": "POST", "page": "2", "page_size": "5"})
	h.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "KAN", m.list.query.LanguageID)
	assert.Equal(t, "POST", m.list.query.ModeID)
	assert.Equal(t, 2, m.list.query.Page)
	assert.Equal(t, 5, m.list.query.PageSize)
}

func TestPlanHandler_DeletePlan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestPlanHandler()

		c, _ := testutil.NewTestContext(http.MethodDelete, "/api/plans/P1", nil)
		testutil.SetURLParam(c, "id", "P1")
		h.DeletePlan(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
		assert.Equal(t, "P1", m.delete.id)
	})

	t.Run("still referenced", func(t *testing.T) {
		h, m := newTestPlanHandler()
		m.delete.err = apperrors.NewConflictError("Plan is referenced by subscriptions")

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/plans/P1", nil)
		testutil.SetURLParam(c, "id", "P1")
		h.DeletePlan(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
