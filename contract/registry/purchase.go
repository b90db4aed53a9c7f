package registry

import (
	"fmt"

	"github.com/holiman/uint256"

	"pixel-registry-contract/contract/constants"
	"pixel-registry-contract/contract/contracterrors"
)

// applyBps scales value by bps/10000 with a 256-bit intermediate so the
// product can never wrap.
func applyBps(value uint64, bps uint64) (uint64, error) {
	scaled := uint256.NewInt(value)
	scaled.Mul(scaled, uint256.NewInt(bps))
	scaled.Div(scaled, uint256.NewInt(constants.BpsDenominator))
	if !scaled.IsUint64() {
		return 0, contracterrors.NewContractError(
			contracterrors.ErrArithmetic,
			fmt.Sprintf("%d scaled by %d bps exceeds uint64 range", value, bps))
	}
	return scaled.Uint64(), nil
}

// HandleBuy claims an unowned pixel for the paying account. The full payment
// stays with the registry; there is no previous owner to compensate.
func (rs *RegistryState) HandleBuy(buyer string, payload *DispatchPayload) error {
	if rs.Pricing.Paused {
		return contracterrors.NewContractError(
			contracterrors.ErrRegistryPaused, "purchases are paused")
	}

	_, owned, err := PixelFromState(payload.PixelId)
	if err != nil {
		return err
	}
	if owned {
		return contracterrors.NewContractError(
			contracterrors.ErrPixelAlreadyOwned,
			fmt.Sprintf("pixel %d already has an owner, use update", payload.PixelId))
	}
	if payload.Amount < rs.Pricing.MinPrice {
		return contracterrors.NewContractError(
			contracterrors.ErrInsufficientAmount,
			fmt.Sprintf("paid %d, minimum price is %d", payload.Amount, rs.Pricing.MinPrice))
	}

	pixel := Pixel{
		Owner:  buyer,
		Colour: payload.Colour,
		Price:  payload.Amount,
	}
	err = savePixelToState(payload.PixelId, &pixel)
	if err != nil {
		return err
	}

	logEvent(PixelEvent{
		Event:  "pixel_bought",
		Pixel:  payload.PixelId,
		Owner:  buyer,
		Colour: payload.Colour,
		Price:  payload.Amount,
	})
	return nil
}

// HandleUpdate takes over an owned pixel. The previous owner's compensation
// is credited in the ledger before ownership changes hands; it is pure
// bookkeeping, no tokens move until that owner withdraws.
func (rs *RegistryState) HandleUpdate(buyer string, payload *DispatchPayload) error {
	if rs.Pricing.Paused {
		return contracterrors.NewContractError(
			contracterrors.ErrRegistryPaused, "purchases are paused")
	}

	pixel, owned, err := PixelFromState(payload.PixelId)
	if err != nil {
		return err
	}
	if !owned {
		return contracterrors.NewContractError(
			contracterrors.ErrPixelNotOwned,
			fmt.Sprintf("pixel %d has no owner, use buy", payload.PixelId))
	}
	if pixel.Owner == buyer {
		return contracterrors.NewContractError(
			contracterrors.ErrBuyerIsOwner,
			fmt.Sprintf("account %s already owns pixel %d", buyer, payload.PixelId))
	}

	required, err := applyBps(pixel.Price, rs.Pricing.AppreciationBps)
	if err != nil {
		return err
	}
	if payload.Amount < required {
		return contracterrors.NewContractError(
			contracterrors.ErrInsufficientAmount,
			fmt.Sprintf("paid %d, pixel %d requires %d", payload.Amount, payload.PixelId, required))
	}

	payout, err := applyBps(pixel.Price, rs.Pricing.PayoutBps)
	if err != nil {
		return err
	}
	if payout > 0 {
		err = rs.credit(pixel.Owner, payout)
		if err != nil {
			return err
		}
	}

	prevOwner := pixel.Owner
	pixel.Owner = buyer
	pixel.Colour = payload.Colour
	pixel.Price = payload.Amount
	err = savePixelToState(payload.PixelId, pixel)
	if err != nil {
		return err
	}

	logEvent(PixelEvent{
		Event:     "pixel_updated",
		Pixel:     payload.PixelId,
		Owner:     buyer,
		PrevOwner: prevOwner,
		Colour:    payload.Colour,
		Price:     payload.Amount,
	})
	return nil
}
