package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
)

var ErrOrderHasNoDelivery = errors.New("order has no delivery")

// ConfirmDeliveryCommandHandler completes a delivered order.
// Marks the order and its delivery record Completed in one transaction. The
// drone stays at the dropoff point; flying it home is a separate
// return-to-base request.
type ConfirmDeliveryCommandHandler struct {
	uowFactory ConfirmDeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory ConfirmDeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Returns ErrOrderNotFound for unknown orders and ErrOrderHasNoDelivery for
// orders that were never assigned a drone.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if ord.DeliveryID() == nil {
		return ErrOrderHasNoDelivery
	}

	deliveryRepo := uow.DeliveryRepository()

	dlv, err := deliveryRepo.Get(ctx, *ord.DeliveryID())
	if err != nil {
		return err
	}

	if err = dlv.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = ord.Complete(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
