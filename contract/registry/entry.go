package registry

import (
	"strconv"
	"strings"

	"github.com/CosmWasm/tinyjson"

	"pixel-registry-contract/contract/contracterrors"
	"pixel-registry-contract/sdk"
)

// Entrypoint bodies live here rather than in the main package so they can be
// driven by the mock host in tests. The wasm wrappers in contract/main.go are
// one-liners around these.

func Init(tokenContract *string) *string {
	env := sdk.GetEnv()
	err := HandleInit(strings.TrimSpace(*tokenContract), env)
	if err != nil {
		contracterrors.CustomAbort(err)
	}
	ret := "ok"
	return &ret
}

func OnTokensReceived(payload *string) *string {
	var input ReceiverInput
	err := tinyjson.Unmarshal([]byte(*payload), &input)
	if err != nil {
		contracterrors.CustomAbort(contracterrors.WrapContractError(
			contracterrors.ErrMalformedPayload, err, contracterrors.MsgBadInput))
	}

	rs, err := InitializeRegistryState()
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	err = rs.HandleTokensReceived(&input, sdk.GetEnv())
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	err = rs.SaveToState()
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	ret := "ok"
	return &ret
}

// Withdraw does not re-save the ledger after the handler returns; the
// handler persists it before the nested token call so a reentrant withdraw
// observes the zeroed balance.
func Withdraw(_ *string) *string {
	rs, err := InitializeRegistryState()
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	amount, err := rs.HandleWithdraw(sdk.GetEnv())
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	ret := strconv.FormatUint(amount, 10)
	return &ret
}

func parseAmountArg(payload *string) uint64 {
	amount, err := strconv.ParseUint(strings.TrimSpace(*payload), 10, 64)
	if err != nil {
		contracterrors.CustomAbort(contracterrors.WrapContractError(
			contracterrors.ErrInput, err, contracterrors.MsgBadInput))
	}
	return amount
}

func adminEntrypoint(apply func(rs *RegistryState, env sdk.Env) error) *string {
	rs, err := InitializeRegistryState()
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	err = apply(rs, sdk.GetEnv())
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	err = savePricingToState(&rs.Pricing)
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	ret := "ok"
	return &ret
}

func SetMinPrice(payload *string) *string {
	minPrice := parseAmountArg(payload)
	return adminEntrypoint(func(rs *RegistryState, env sdk.Env) error {
		return rs.HandleSetMinPrice(minPrice, env)
	})
}

func SetAppreciation(payload *string) *string {
	bps := parseAmountArg(payload)
	return adminEntrypoint(func(rs *RegistryState, env sdk.Env) error {
		return rs.HandleSetAppreciation(bps, env)
	})
}

func SetPayoutRate(payload *string) *string {
	bps := parseAmountArg(payload)
	return adminEntrypoint(func(rs *RegistryState, env sdk.Env) error {
		return rs.HandleSetPayoutRate(bps, env)
	})
}

func Pause(_ *string) *string {
	return adminEntrypoint(func(rs *RegistryState, env sdk.Env) error {
		return rs.HandlePause(env)
	})
}

func Unpause(_ *string) *string {
	return adminEntrypoint(func(rs *RegistryState, env sdk.Env) error {
		return rs.HandleUnpause(env)
	})
}

func TransferAdmin(payload *string) *string {
	newAdmin := strings.TrimSpace(*payload)
	return adminEntrypoint(func(rs *RegistryState, env sdk.Env) error {
		return rs.HandleTransferAdmin(newAdmin, env)
	})
}

// GetPixel returns the pixel record as JSON, or "null" when the pixel has
// never been bought.
func GetPixel(payload *string) *string {
	id, err := strconv.ParseUint(strings.TrimSpace(*payload), 10, 64)
	if err != nil {
		contracterrors.CustomAbort(contracterrors.WrapContractError(
			contracterrors.ErrInput, err, contracterrors.MsgBadInput))
	}

	pixel, owned, err := PixelFromState(id)
	if err != nil {
		contracterrors.CustomAbort(err)
	}
	if !owned {
		ret := "null"
		return &ret
	}

	pixelJson, err := tinyjson.Marshal(*pixel)
	if err != nil {
		contracterrors.CustomAbort(contracterrors.WrapContractError(
			contracterrors.ErrJson, err, "error marshaling pixel record"))
	}
	ret := string(pixelJson)
	return &ret
}

// GetCompensation returns the withdrawable balance for the given account, or
// for the sender when the payload is empty.
func GetCompensation(payload *string) *string {
	account := strings.TrimSpace(*payload)
	if account == "" {
		account = sdk.GetEnv().Sender.Address.String()
	}

	compensation, err := CompensationFromState()
	if err != nil {
		contracterrors.CustomAbort(err)
	}

	ret := strconv.FormatUint(compensation[account], 10)
	return &ret
}
