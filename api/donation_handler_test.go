package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonate(t *testing.T) {
	donations := &fakeDonationStore{}
	handler := newDonationHandler(donations)
	donor := &models.User{UUID: uuid.New(), Username: "fan"}

	req := httptest.NewRequest(http.MethodPost, "/payment/donate", strings.NewReader(`{"amount":10.5,"donationMessage":"great blog"}`))
	req = req.WithContext(ctxWithUser(req.Context(), donor))
	rec := httptest.NewRecorder()
	handler.donate().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Donation recorded successfully")
	require.Len(t, donations.donations, 1)
	assert.Equal(t, donor.UUID, donations.donations[0].DonorUUID)
	assert.Equal(t, 10.5, donations.donations[0].Amount)
}

func TestDonateRejectsNonPositiveAmount(t *testing.T) {
	donations := &fakeDonationStore{}
	handler := newDonationHandler(donations)
	donor := &models.User{UUID: uuid.New(), Username: "fan"}

	req := httptest.NewRequest(http.MethodPost, "/payment/donate", strings.NewReader(`{"amount":0}`))
	req = req.WithContext(ctxWithUser(req.Context(), donor))
	rec := httptest.NewRecorder()
	handler.donate().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, donations.donations)
}

func TestGetDonations(t *testing.T) {
	donations := &fakeDonationStore{donations: []*models.Donation{
		{ID: 1, DonorUUID: uuid.New(), Amount: 5, DonationMessage: "first"},
		{ID: 2, DonorUUID: uuid.New(), Amount: 20, DonationMessage: "second"},
	}}
	handler := newDonationHandler(donations)

	req := httptest.NewRequest(http.MethodGet, "/payment/get-donations", nil)
	rec := httptest.NewRecorder()
	handler.getDonations().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":5`)
	assert.Contains(t, rec.Body.String(), `"amount":20`)
}
