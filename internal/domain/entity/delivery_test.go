package entity

import (
	"testing"
	"time"

	"farmlink/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)

func newTestDelivery(t *testing.T, milestones ...string) *Delivery {
	t.Helper()

	d, err := NewDelivery(NewDeliveryParams{
		BidID:     "bid-1",
		ProductID: "prod-1",
		Farmer:    Party{UID: "farmer-1", Name: "Green Acres", Email: " Farm@Example.com "},
		Buyer:     Party{UID: "buyer-1", Name: "Corner Shop", Email: "buyer@example.com"},
		Terms: Terms{
			DeliveryOption: "express",
			Quantity:       decimal.RequireFromString("12.5"),
			Unit:           "kg",
			PricePerUnit:   decimal.RequireFromString("3.2"),
		},
		Milestones: milestones,
	}, testNow)
	require.NoError(t, err)

	return d
}

func TestNewDelivery_InitialState(t *testing.T) {
	d := newTestDelivery(t)

	assert.Equal(t, 0, d.CurrentStep)
	assert.Equal(t, "Order confirmed", d.Status)
	assert.Equal(t, DefaultMilestones, d.Milestones)
	require.Len(t, d.Events, 4)

	first := d.Events[0]
	assert.Equal(t, EventCompleted, first.Status)
	require.NotNil(t, first.Timestamp)
	assert.Equal(t, testNow, *first.Timestamp)
	assert.Equal(t, "Bid accepted: 12.5 kg @ 3.20/kg (total 40.00)", first.Detail)

	for _, event := range d.Events[1:] {
		assert.Equal(t, EventPending, event.Status)
		assert.Nil(t, event.Timestamp)
	}

	assert.Equal(t, "1-2 days", d.ETA)
	assert.Equal(t, "farm@example.com", d.Farmer.Email)
	assert.NotEqual(t, uuid.Nil, d.ID)
}

func TestNewDelivery_RejectsInvalidInput(t *testing.T) {
	base := NewDeliveryParams{
		BidID:     "bid-1",
		ProductID: "prod-1",
		Farmer:    Party{UID: "farmer-1"},
		Buyer:     Party{UID: "buyer-1"},
	}

	tests := []struct {
		name   string
		mutate func(p *NewDeliveryParams)
	}{
		{"blank bid", func(p *NewDeliveryParams) { p.BidID = "  " }},
		{"blank product", func(p *NewDeliveryParams) { p.ProductID = "" }},
		{"blank farmer", func(p *NewDeliveryParams) { p.Farmer.UID = "" }},
		{"blank buyer", func(p *NewDeliveryParams) { p.Buyer.UID = " " }},
		{"single milestone", func(p *NewDeliveryParams) { p.Milestones = []string{"Only"} }},
		{"blank milestone", func(p *NewDeliveryParams) { p.Milestones = []string{"Confirmed", " "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := base
			tt.mutate(&params)

			d, err := NewDelivery(params, testNow)
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, ErrInvalidDelivery))
		})
	}
}

func TestNewDelivery_CustomMilestones(t *testing.T) {
	d := newTestDelivery(t, "Harvested", "Collected")

	assert.Equal(t, []string{"Harvested", "Collected"}, d.Milestones)
	assert.Equal(t, "Harvested", d.Status)
	assert.Equal(t, 1, d.LastStep())
}

func TestDeliveryAdvance_SequentialSteps(t *testing.T) {
	d := newTestDelivery(t)

	for step := 1; step <= d.LastStep(); step++ {
		at := testNow.Add(time.Duration(step) * time.Hour)
		require.NoError(t, d.Advance(step, at))

		assert.Equal(t, step, d.CurrentStep)
		assert.Equal(t, d.Milestones[step], d.Status)
		assert.Equal(t, EventCompleted, d.Events[step].Status)
		assert.Equal(t, at, *d.Events[step].Timestamp)
		assert.Equal(t, at, d.UpdatedAt)
	}

	assert.True(t, d.IsCompleted())
}

func TestDeliveryAdvance_RejectsInvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		target int
	}{
		{"repeat current step", 1, 1},
		{"move backwards", 2, 1},
		{"skip a step", 0, 2},
		{"past terminal step", 3, 4},
		{"negative step", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDelivery(t)
			for step := 1; step <= tt.start; step++ {
				require.NoError(t, d.Advance(step, testNow))
			}
			before := *d
			beforeEvents := append([]DeliveryEvent(nil), d.Events...)

			err := d.Advance(tt.target, testNow.Add(time.Hour))

			assert.True(t, errors.Is(err, ErrInvalidTransition))
			assert.Equal(t, before.CurrentStep, d.CurrentStep)
			assert.Equal(t, before.Status, d.Status)
			assert.Equal(t, beforeEvents, d.Events)
		})
	}
}

func TestTermsETA(t *testing.T) {
	tests := map[string]string{
		"express":  "1-2 days",
		"Standard": "3-5 days",
		"pickup":   "Ready for pickup",
		"":         "3-5 days",
	}

	for option, want := range tests {
		assert.Equal(t, want, Terms{DeliveryOption: option}.ETA(), option)
	}
}

func TestFormatForDisplay_ActiveMilestone(t *testing.T) {
	d := newTestDelivery(t)

	view := FormatForDisplay(d, time.UTC, "")
	assert.Equal(t, 1, view.ActiveStep)
	assert.Equal(t, EventInProgress, view.Events[1].Status)
	assert.True(t, view.Events[1].Active)
	assert.Equal(t, EventPending, view.Events[2].Status)
	assert.False(t, view.Completed)

	// the source delivery is not modified
	assert.Equal(t, EventPending, d.Events[1].Status)

	for step := 1; step <= d.LastStep(); step++ {
		require.NoError(t, d.Advance(step, testNow))
	}

	view = FormatForDisplay(d, time.UTC, "")
	assert.Equal(t, d.LastStep(), view.ActiveStep)
	assert.Equal(t, EventCompleted, view.Events[d.LastStep()].Status)
	assert.True(t, view.Completed)
}

func TestFormatForDisplay_ResolvesLocation(t *testing.T) {
	d := newTestDelivery(t)
	loc := time.FixedZone("UTC+8", 8*60*60)

	view := FormatForDisplay(d, loc, "2006-01-02 15:04")

	require.NotNil(t, view.Events[0].Timestamp)
	assert.Equal(t, "2026-03-01 16:30", view.Events[0].DisplayTime)
	assert.True(t, view.Events[0].Timestamp.Equal(testNow))
	assert.Empty(t, view.Events[1].DisplayTime)
	assert.Nil(t, view.Events[1].Timestamp)
	assert.Equal(t, "2026-03-01 16:30", view.DisplayTime)
	assert.Equal(t, "40", view.Total.String())
}

func TestActiveStep_Empty(t *testing.T) {
	assert.Equal(t, 0, ActiveStep(nil))
}
