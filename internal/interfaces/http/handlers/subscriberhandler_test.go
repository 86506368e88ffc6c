package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subscriberdto "github.com/tcworld/magadmin/internal/application/subscriber/dto"
	subscriberuc "github.com/tcworld/magadmin/internal/application/subscriber/usecases"
	"github.com/tcworld/magadmin/internal/interfaces/http/handlers/testutil"
	"github.com/tcworld/magadmin/internal/shared/constants"
	apperrors "github.com/tcworld/magadmin/internal/shared/errors"
)

type subscriberMocks struct {
	create   *mockCreateSubscriberUC
	update   *mockUpdateSubscriberUC
	get      *mockGetSubscriberUC
	list     *mockListSubscribersUC
	delete   *mockIDUC
	activate *mockIDUC
	report   *mockReportUC
}

func newTestSubscriberHandler() (*SubscriberHandler, *subscriberMocks) {
	m := &subscriberMocks{
		create:   &mockCreateSubscriberUC{},
		update:   &mockUpdateSubscriberUC{},
		get:      &mockGetSubscriberUC{},
		list:     &mockListSubscribersUC{},
		delete:   &mockIDUC{},
		activate: &mockIDUC{},
		report:   &mockReportUC{},
	}
	h := NewSubscriberHandler(m.create, m.update, m.get, m.list, m.delete, m.activate, m.report, testutil.NewMockLogger())
	return h, m
}

func TestSubscriberHandler_CreateSubscriber(t *testing.T) {
	h, m := newTestSubscriberHandler()
	m.create.result = &subscriberdto.SubscriberDTO{ID: "S1", Name: "Asha"}

	body := map[string]string{
		"_id":      "S1",
		"name":     "Asha",
		"address":  "12 MG Road",
		"category": "1",
		"stype":    "PAID",
		"email":    "asha@example.com",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers", body)
	h.CreateSubscriber(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "S1", m.create.cmd.ID)
	assert.Equal(t, "1", m.create.cmd.CategoryID)
	assert.Equal(t, "PAID", m.create.cmd.TypeID)
	require.NotNil(t, m.create.cmd.Name)
	assert.Equal(t, "Asha", *m.create.cmd.Name)
}

func TestSubscriberHandler_UpdateSubscriber(t *testing.T) {
	h, m := newTestSubscriberHandler()
	m.update.result = &subscriberdto.SubscriberDTO{ID: "S1"}

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/subscribers/S1", `{"city_town":"Mysuru","stype":"FREE"}`)
	testutil.SetURLParam(c, "id", "S1")
	h.UpdateSubscriber(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "S1", m.update.cmd.ID)
	require.NotNil(t, m.update.cmd.Changes.CityTown)
	assert.Equal(t, "Mysuru", *m.update.cmd.Changes.CityTown)
	require.NotNil(t, m.update.cmd.Changes.TypeID)
	assert.Equal(t, "FREE", *m.update.cmd.Changes.TypeID)
	assert.Nil(t, m.update.cmd.Changes.Name)
}

func TestSubscriberHandler_ListSubscribers(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		h, m := newTestSubscriberHandler()
		m.list.result = &subscriberuc.ListSubscribersResult{Page: 1, PageSize: 20}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers", nil)
		testutil.SetQueryParams(c, map[string]string{"is_deleted": "false", "category": "1", "search": "ash"})
		h.ListSubscribers(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, m.list.query.IsDeleted)
		assert.False(t, *m.list.query.IsDeleted)
		assert.Equal(t, "1", m.list.query.CategoryID)
		assert.Equal(t, "ash", m.list.query.Search)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		h, _ := newTestSubscriberHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers", nil)
		testutil.SetQueryParams(c, map[string]string{"is_deleted": "maybe"})
		h.ListSubscribers(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSubscriberHandler_Lifecycle(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		h, m := newTestSubscriberHandler()

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/subscribers/S1", nil)
		testutil.SetURLParam(c, "id", "S1")
		h.DeleteSubscriber(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "S1", m.delete.id)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Subscriber marked as deleted.", resp.Message)
	})

	t.Run("activate unknown", func(t *testing.T) {
		h, m := newTestSubscriberHandler()
		m.activate.err = apperrors.NewNotFoundError("Subscriber matching query does not exist.")

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/S9/activate", nil)
		testutil.SetURLParam(c, "id", "S9")
		h.ActivateSubscriber(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubscriberHandler_Report(t *testing.T) {
	t.Run("rows with char limit", func(t *testing.T) {
		h, m := newTestSubscriberHandler()
		m.report.rows = []*subscriberdto.ReportRowDTO{{Name: "Asha", AddressLine1: "12 MG Road"}}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers/report", nil)
		testutil.SetQueryParams(c, map[string]string{"char_limit": "30"})
		h.Report(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, m.report.charLimit)
		assert.Equal(t, 30, *m.report.charLimit)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var rows []map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Data, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "12 MG Road", rows[0]["Address line 1"])
	})

	t.Run("non numeric char limit", func(t *testing.T) {
		h, _ := newTestSubscriberHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers/report", nil)
		testutil.SetQueryParams(c, map[string]string{"char_limit": "wide"})
		h.Report(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, resp.Error.Fields, "char_limit")
	})
}

func TestSubscriberHandler_ReportPDF(t *testing.T) {
	h, m := newTestSubscriberHandler()
	m.report.pdf = []byte("%PDF-1.3 fake")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers/report/pdf", nil)
	h.ReportPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.ContentTypePDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="subscriber_labels.pdf"`)
	assert.Equal(t, "%PDF-1.3 fake", w.Body.String())
	assert.Nil(t, m.report.charLimit)
}

func TestSubscriberHandler_SampleReportPDF(t *testing.T) {
	h, m := newTestSubscriberHandler()
	m.report.pdf = []byte("%PDF-1.3 sample")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers/report/pdf/sample", nil)
	h.SampleReportPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="sample_subscriber_labels.pdf"`)
}

func TestSubscriberHandler_EmailReport(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		h, m := newTestSubscriberHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/report/email", `{"email":"ops@example.com","char_limit":40}`)
		h.EmailReport(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops@example.com", m.report.mailedTo)
		require.NotNil(t, m.report.charLimit)
		assert.Equal(t, 40, *m.report.charLimit)
	})

	t.Run("invalid address", func(t *testing.T) {
		h, m := newTestSubscriberHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/report/email", `{"email":"not-an-address"}`)
		h.EmailReport(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, m.report.mailedTo)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, []string{"Enter a valid email address."}, resp.Error.Fields["email"])
	})
}
