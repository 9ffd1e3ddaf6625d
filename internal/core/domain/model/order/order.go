package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"
	"fueldelivery/internal/pkg/guard"
)

const maxAddressLength = 500

var (
	// ErrOrderIsNotConstructed is returned for Order values that bypassed NewOrder/Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrAddressIsRequired is returned when the delivery address is blank.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Order is the aggregate root of the ordering workflow. A user places it at a
// station; the station's manager confirms, assigns an agent, delivers or rejects it.
//
// Invariants:
//   - quantity and total are positive (held by Quote)
//   - agentID is set exactly while the status is In Progress
//   - every accepted transition bumps updatedAt and records a StatusChanged event
//
// version is the optimistic-lock counter loaded from storage; repositories refuse
// to overwrite a row whose version moved in the meantime.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	managerID     kernel.UUID
	agentID       *kernel.UUID
	fuelType      kernel.FuelType
	paymentMethod PaymentMethod
	quote         Quote
	address       string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	version       int
	events        []StatusChanged
	guard         guard.ConstructorGuard
}

// NewOrder places a Pending order with no agent.
//
// Example:
//
//	quote, _ := order.NewQuote(price, quantity)
//	o, err := order.NewOrder(kernel.NewUUID(), userID, stationID, petrol, quote,
//	    order.CashOnDelivery, "12 Ring Road", time.Now())
func NewOrder(
	id, userID, managerID kernel.UUID,
	fuelType kernel.FuelType,
	quote Quote,
	paymentMethod PaymentMethod,
	address string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, userID, managerID),
		o.setFuelType(fuelType),
		o.setQuote(quote),
		o.setPaymentMethod(paymentMethod),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	o.record(now)
	return o, nil
}

// Snapshot carries the persisted state of an order into Restore.
type Snapshot struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	ManagerID     kernel.UUID
	AgentID       *kernel.UUID
	FuelType      kernel.FuelType
	PaymentMethod PaymentMethod
	Quote         Quote
	Address       string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int
}

// Restore rebuilds an order loaded from storage, re-checking its invariants.
func Restore(s Snapshot) (*Order, error) {
	o := &Order{
		agentID:   s.AgentID,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		version:   s.Version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(s.ID, s.UserID, s.ManagerID),
		o.setFuelType(s.FuelType),
		o.setQuote(s.Quote),
		o.setPaymentMethod(s.PaymentMethod),
		o.setAddress(s.Address),
		s.Status.Validate(),
		s.Status.ValidateCanHaveAgent(s.AgentID != nil),
	); err != nil {
		return nil, err
	}

	o.status = s.Status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) ManagerID() kernel.UUID {
	return o.managerID
}

func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

func (o *Order) FuelType() kernel.FuelType {
	return o.fuelType
}

func (o *Order) Quantity() kernel.Quantity {
	return o.quote.Quantity()
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) Quote() Quote {
	return o.quote
}

func (o *Order) TotalAmount() kernel.Money {
	return o.quote.Total()
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) DomainEvents() []StatusChanged {
	return o.events
}

// ClearDomainEvents drops recorded events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// EnsureManagedBy returns Forbidden unless the order was placed at managerID's station.
func (o *Order) EnsureManagedBy(managerID kernel.UUID) error {
	if !o.managerID.IsEqual(managerID) {
		return errs.NewForbiddenError("order", o.id.String())
	}
	return nil
}

// EnsurePlacedBy returns Forbidden unless userID placed the order.
func (o *Order) EnsurePlacedBy(userID kernel.UUID) error {
	if !o.userID.IsEqual(userID) {
		return errs.NewForbiddenError("order", o.id.String())
	}
	return nil
}

// Confirm moves a Pending order to Confirmed.
func (o *Order) Confirm(now time.Time) error {
	next, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = next
	o.record(now)
	return nil
}

// AssignAgent moves a Confirmed order to In Progress and references the agent.
// The caller is responsible for occupying the agent in the same unit of work.
func (o *Order) AssignAgent(agentID kernel.UUID, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	next, err := o.status.Start()
	if err != nil {
		return err
	}
	o.status = next
	o.agentID = &agentID
	o.record(now)
	return nil
}

// Deliver completes an In Progress order and returns the agent to release.
func (o *Order) Deliver(now time.Time) (kernel.UUID, error) {
	if o.agentID == nil {
		return kernel.UUID{}, errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), Delivered.String(), errors.New("no agent assigned"),
		)
	}
	next, err := o.status.Deliver()
	if err != nil {
		return kernel.UUID{}, err
	}
	released := *o.agentID
	o.status = next
	o.agentID = nil
	o.record(now)
	return released, nil
}

// Reject ends the order on the manager's side. The returned agent id, when not
// nil, must be released by the caller.
func (o *Order) Reject(now time.Time) (*kernel.UUID, error) {
	next, err := o.status.Reject()
	if err != nil {
		return nil, err
	}
	return o.finish(next, now), nil
}

// Cancel ends a non-terminal order. The returned agent id, when not nil, must be
// released by the caller.
func (o *Order) Cancel(now time.Time) (*kernel.UUID, error) {
	next, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}
	return o.finish(next, now), nil
}

func (o *Order) finish(next Status, now time.Time) *kernel.UUID {
	released := o.agentID
	o.status = next
	o.agentID = nil
	o.record(now)
	return released
}

func (o *Order) record(now time.Time) {
	o.updatedAt = now
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		UserID:     o.userID,
		ManagerID:  o.managerID,
		AgentID:    o.agentID,
		Status:     o.status,
		OccurredAt: now,
	})
}

func (o *Order) setIDs(id, userID, managerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), userID.Validate(), managerID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.userID = userID
	o.managerID = managerID
	return nil
}

func (o *Order) setFuelType(fuelType kernel.FuelType) error {
	if err := fuelType.Validate(); err != nil {
		return err
	}
	o.fuelType = fuelType
	return nil
}

func (o *Order) setQuote(quote Quote) error {
	if err := quote.Validate(); err != nil {
		return err
	}
	o.quote = quote
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("longer than %d characters", maxAddressLength),
		)
	}
	o.address = address
	return nil
}
