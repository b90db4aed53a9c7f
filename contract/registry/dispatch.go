package registry

import (
	"fmt"

	"pixel-registry-contract/contract/contracterrors"
	"pixel-registry-contract/sdk"
)

// Operation is a dispatch selector carried in the callback payload. The hook
// only ever forwards the selectors below; anything else is rejected, so
// internal entrypoints like withdraw can never be smuggled through a token
// transfer.
type Operation string

const (
	OpBuy    Operation = "buy"
	OpUpdate Operation = "update"
)

// HandleTokensReceived is the transfer-with-callback hook. The sender and
// amount in the input are only trusted because the immediate caller is the
// configured payment token contract; everything else about the payload is
// validated here before any state is touched.
func (rs *RegistryState) HandleTokensReceived(input *ReceiverInput, env sdk.Env) error {
	if env.Caller.String() != rs.TokenContract {
		return contracterrors.NewContractError(
			contracterrors.ErrNoPermission,
			fmt.Sprintf("hook caller %s is not the payment token %s", env.Caller, rs.TokenContract))
	}

	payload, err := decodeDispatchPayload(input.DataHex)
	if err != nil {
		return err
	}
	if payload.Target != "" && payload.Target != input.Sender {
		return contracterrors.NewContractError(
			contracterrors.ErrMalformedPayload,
			fmt.Sprintf("payload target %s does not match paying account %s", payload.Target, input.Sender))
	}
	if payload.Amount != input.Amount {
		return contracterrors.NewContractError(
			contracterrors.ErrAmountMismatch,
			fmt.Sprintf("declared amount %d, transferred amount %d", payload.Amount, input.Amount))
	}

	switch Operation(payload.Op) {
	case OpBuy:
		return rs.HandleBuy(input.Sender, payload)
	case OpUpdate:
		return rs.HandleUpdate(input.Sender, payload)
	default:
		return contracterrors.NewContractError(
			contracterrors.ErrUnknownOperation, "selector not dispatchable: "+payload.Op)
	}
}
