package entity

import (
	"fmt"
	"strings"
	"time"

	"farmlink/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventStatus is the progress of a single milestone.
type EventStatus string

const (
	EventPending    EventStatus = "pending"
	EventInProgress EventStatus = "in-progress"
	EventCompleted  EventStatus = "completed"
)

// Delivery options offered on a bid.
const (
	DeliveryOptionExpress  = "express"
	DeliveryOptionStandard = "standard"
	DeliveryOptionPickup   = "pickup"
)

// MinMilestones is the shortest milestone list a delivery can be created with.
const MinMilestones = 2

// DefaultMilestones is the fulfilment sequence used when none is supplied.
var DefaultMilestones = []string{"Order confirmed", "Packed", "In transit", "Delivered"}

var defaultEventDetails = map[string]string{
	"Packed":     "Farmer is packing your produce",
	"In transit": "Shipment is on the way",
	"Delivered":  "Order delivered",
}

var (
	// ErrInvalidTransition is returned when a milestone is not the direct successor of the current one.
	ErrInvalidTransition = errors.New("invalid milestone transition")
	// ErrInvalidDelivery is returned when a delivery cannot be built from the given input.
	ErrInvalidDelivery = errors.New("invalid delivery")
)

// DeliveryEvent is one entry of the append-only fulfilment log.
type DeliveryEvent struct {
	Label     string      `json:"label"`
	Detail    string      `json:"detail"`
	Status    EventStatus `json:"status"`
	Timestamp *time.Time  `json:"timestamp"` // nil until the milestone is reached
}

// Terms is the commercial snapshot taken when the bid was accepted.
type Terms struct {
	DeliveryOption string          `json:"delivery_option"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"`
}

// Total returns quantity times unit price.
func (t Terms) Total() decimal.Decimal {
	return t.Quantity.Mul(t.PricePerUnit)
}

// ETA returns the customer-facing estimate for the delivery option.
func (t Terms) ETA() string {
	switch strings.ToLower(strings.TrimSpace(t.DeliveryOption)) {
	case DeliveryOptionExpress:
		return "1-2 days"
	case DeliveryOptionPickup:
		return "Ready for pickup"
	default:
		return "3-5 days"
	}
}

// Summary renders the terms as the detail of the first milestone.
func (t Terms) Summary() string {
	return fmt.Sprintf("Bid accepted: %s %s @ %s/%s (total %s)",
		t.Quantity.String(), t.Unit,
		t.PricePerUnit.StringFixed(2), t.Unit,
		t.Total().StringFixed(2),
	)
}

// Delivery tracks one accepted bid through its fulfilment milestones.
type Delivery struct {
	ID          uuid.UUID       `json:"id"`           // System generated identifier.
	BidID       string          `json:"bid_id"`       // Accepted bid, at most one delivery per bid.
	ProductID   string          `json:"product_id"`   // Catalog product being delivered.
	Farmer      Party           `json:"farmer"`       // Seller fulfilling the order.
	Buyer       Party           `json:"buyer"`        // Buyer receiving the order.
	Milestones  []string        `json:"milestones"`   // Ordered milestone labels.
	CurrentStep int             `json:"current_step"` // Index of the last reached milestone.
	Status      string          `json:"status"`       // Label of the current milestone.
	Events      []DeliveryEvent `json:"events"`       // One event per milestone.
	Terms       Terms           `json:"terms"`
	ETA         string          `json:"eta"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewDeliveryParams carries the input of NewDelivery.
type NewDeliveryParams struct {
	BidID      string
	ProductID  string
	Farmer     Party
	Buyer      Party
	Terms      Terms
	Milestones []string // optional, DefaultMilestones when empty
}

// NewDelivery builds a delivery at its initial milestone.
func NewDelivery(params NewDeliveryParams, now time.Time) (*Delivery, error) {
	bidID := strings.TrimSpace(params.BidID)
	productID := strings.TrimSpace(params.ProductID)
	farmer := normalizeParty(params.Farmer)
	buyer := normalizeParty(params.Buyer)

	switch {
	case bidID == "":
		return nil, errors.WithMessage(ErrInvalidDelivery, "bid id is required")
	case productID == "":
		return nil, errors.WithMessage(ErrInvalidDelivery, "product id is required")
	case farmer.UID == "":
		return nil, errors.WithMessage(ErrInvalidDelivery, "farmer uid is required")
	case buyer.UID == "":
		return nil, errors.WithMessage(ErrInvalidDelivery, "buyer uid is required")
	}

	milestones, err := resolveMilestones(params.Milestones)
	if err != nil {
		return nil, err
	}

	confirmedAt := now
	events := make([]DeliveryEvent, len(milestones))
	for i, label := range milestones {
		events[i] = DeliveryEvent{
			Label:  label,
			Detail: defaultEventDetails[label],
			Status: EventPending,
		}
	}
	events[0].Detail = params.Terms.Summary()
	events[0].Status = EventCompleted
	events[0].Timestamp = &confirmedAt

	return &Delivery{
		ID:          uuid.New(),
		BidID:       bidID,
		ProductID:   productID,
		Farmer:      farmer,
		Buyer:       buyer,
		Milestones:  milestones,
		CurrentStep: 0,
		Status:      milestones[0],
		Events:      events,
		Terms:       params.Terms,
		ETA:         params.Terms.ETA(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func resolveMilestones(custom []string) ([]string, error) {
	if len(custom) == 0 {
		return append([]string(nil), DefaultMilestones...), nil
	}

	if len(custom) < MinMilestones {
		return nil, errors.WithMessagef(ErrInvalidDelivery, "at least %d milestones are required", MinMilestones)
	}

	milestones := make([]string, len(custom))
	for i, label := range custom {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, errors.WithMessagef(ErrInvalidDelivery, "milestone %d has a blank label", i)
		}
		milestones[i] = label
	}

	return milestones, nil
}

func normalizeParty(p Party) Party {
	return Party{
		UID:   strings.TrimSpace(p.UID),
		Name:  strings.TrimSpace(p.Name),
		Email: NormalizeEmail(p.Email),
	}
}

// LastStep is the index of the terminal milestone.
func (d *Delivery) LastStep() int {
	return len(d.Events) - 1
}

// IsCompleted reports whether the terminal milestone has been reached.
func (d *Delivery) IsCompleted() bool {
	return d.CurrentStep >= d.LastStep()
}

// Advance moves the delivery to targetStep, which must directly follow the current step.
func (d *Delivery) Advance(targetStep int, now time.Time) error {
	if targetStep != d.CurrentStep+1 || targetStep > d.LastStep() {
		return errors.WithMessagef(ErrInvalidTransition, "step %d cannot follow step %d", targetStep, d.CurrentStep)
	}

	reachedAt := now
	d.Events[targetStep].Status = EventCompleted
	d.Events[targetStep].Timestamp = &reachedAt
	d.CurrentStep = targetStep
	d.Status = d.Events[targetStep].Label
	d.UpdatedAt = now

	return nil
}
