package registry

import (
	"encoding/hex"
	"fmt"

	"pixel-registry-contract/contract/constants"
	"pixel-registry-contract/contract/contracterrors"
)

// DispatchPayload is the opaque tuple attached to a token transfer. It rides
// inside ReceiverInput.DataHex as hex-encoded msgpack, so the token contract
// never needs to understand it. Amount is the payer's declared amount and is
// checked against the transferred amount before any operation runs.
//
//go:generate msgp
type DispatchPayload struct {
	Op      string `msg:"op"`
	Target  string `msg:"to"`
	PixelId uint64 `msg:"pixel"`
	Colour  uint32 `msg:"colour"`
	Amount  uint64 `msg:"amount"`
}

func decodeDispatchPayload(dataHex string) (*DispatchPayload, error) {
	raw, err := hex.DecodeString(dataHex)
	if err != nil {
		return nil, contracterrors.WrapContractError(
			contracterrors.ErrMalformedPayload, err, "decoding callback data hex")
	}

	var payload DispatchPayload
	left, err := payload.UnmarshalMsg(raw)
	if err != nil {
		return nil, contracterrors.WrapContractError(
			contracterrors.ErrMalformedPayload, err, "decoding callback data msgpack")
	}
	if len(left) != 0 {
		return nil, contracterrors.NewContractError(
			contracterrors.ErrMalformedPayload,
			fmt.Sprintf("%d trailing bytes after callback data", len(left)))
	}

	if payload.PixelId >= constants.PixelCount {
		return nil, contracterrors.NewContractError(
			contracterrors.ErrMalformedPayload,
			fmt.Sprintf("pixel id %d outside grid of %d", payload.PixelId, constants.PixelCount))
	}
	if payload.Colour > constants.MaxColour {
		return nil, contracterrors.NewContractError(
			contracterrors.ErrMalformedPayload,
			fmt.Sprintf("colour %#x exceeds 24-bit range", payload.Colour))
	}

	return &payload, nil
}
