package registry_test

import (
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/require"

	"pixel-registry-contract/contract/registry"
	"pixel-registry-contract/sdk"
)

const (
	registryID = "vsc1pixelregistry"
	tokenID    = "vsc1paymenttoken"
	adminAddr  = "hive:registry.admin"
	aliceAddr  = "hive:alice"
	bobAddr    = "hive:bob"
	carolAddr  = "hive:carol"
)

func registryEntrypoints() map[string]sdk.EntryFunc {
	return map[string]sdk.EntryFunc{
		"init":               registry.Init,
		"on_tokens_received": registry.OnTokensReceived,
		"withdraw":           registry.Withdraw,
		"set_min_price":      registry.SetMinPrice,
		"set_appreciation":   registry.SetAppreciation,
		"set_payout_rate":    registry.SetPayoutRate,
		"pause":              registry.Pause,
		"unpause":            registry.Unpause,
		"transfer_admin":     registry.TransferAdmin,
		"get_pixel":          registry.GetPixel,
		"get_compensation":   registry.GetCompensation,
	}
}

func tokenBalance(account string) uint64 {
	bal := sdk.StateGetObject("bal/" + account)
	if *bal == "" {
		return 0
	}
	amount, _ := strconv.ParseUint(*bal, 10, 64)
	return amount
}

func setTokenBalance(account string, amount uint64) {
	sdk.StateSetObject("bal/"+account, strconv.FormatUint(amount, 10))
}

func moveTokens(from string, to string, amount uint64) {
	fromBal := tokenBalance(from)
	if fromBal < amount {
		sdk.Abort("insufficient balance")
	}
	setTokenBalance(from, fromBal-amount)
	setTokenBalance(to, tokenBalance(to)+amount)
}

func receiverInputJson(sender string, amount uint64, dataHex string) string {
	return `{"sender":` + strconv.Quote(sender) +
		`,"amount":` + strconv.FormatUint(amount, 10) +
		`,"data_hex":` + strconv.Quote(dataHex) + `}`
}

// tokenEntrypoints is an honest payment token: transfer moves balances,
// transfer_and_call moves balances and invokes the receiver hook in the same
// unit of work, aborting (and thus undoing the transfer) if the hook fails.
func tokenEntrypoints() map[string]sdk.EntryFunc {
	transfer := func(payload *string) *string {
		var args registry.TransferArgs
		if err := tinyjson.Unmarshal([]byte(*payload), &args); err != nil {
			sdk.Abort("bad transfer args")
		}
		env := sdk.GetEnv()
		from := env.Caller.String()
		if from == "" {
			from = env.Sender.Address.String()
		}
		moveTokens(from, args.To, args.Amount)
		ret := `{"success":true}`
		return &ret
	}

	transferAndCall := func(payload *string) *string {
		params := strings.SplitN(*payload, ",", 3)
		if len(params) < 3 {
			sdk.Abort("bad transfer_and_call params")
		}
		to := params[0]
		amount, err := strconv.ParseUint(params[1], 10, 64)
		if err != nil {
			sdk.Abort("bad amount")
		}
		env := sdk.GetEnv()
		from := env.Sender.Address.String()
		moveTokens(from, to, amount)
		_, ok := sdk.ContractCall(to, "on_tokens_received", receiverInputJson(from, amount, params[2]))
		if !ok {
			sdk.Abort("receiver hook rejected the transfer")
		}
		return nil
	}

	return map[string]sdk.EntryFunc{
		"transfer":          transfer,
		"transfer_and_call": transferAndCall,
	}
}

func envFor(contractId string, sender string) sdk.Env {
	return sdk.Env{
		ContractId:  contractId,
		TxId:        "test-tx",
		BlockHeight: 100,
		Sender: sdk.Sender{
			Address:       sdk.Address(sender),
			RequiredAuths: []sdk.Address{sdk.Address(sender)},
		},
	}
}

func callAs(host *sdk.MockHost, contractId string, sender string, action string, payload string) sdk.CallResult {
	return host.Call(envFor(contractId, sender), action, payload)
}

// callHook invokes the receiver hook directly with the caller forged to the
// configured token contract, which is how dispatch-level failures are
// observed with their error symbols intact.
func callHook(host *sdk.MockHost, tokenContract string, input string) sdk.CallResult {
	env := envFor(registryID, aliceAddr)
	env.Caller = sdk.Address(tokenContract)
	return host.Call(env, "on_tokens_received", input)
}

func newHarness(t *testing.T) *sdk.MockHost {
	t.Helper()
	host := sdk.NewMockHost()
	host.RegisterContract(registryID, registryEntrypoints())
	host.RegisterContract(tokenID, tokenEntrypoints())
	host.SetEnvKey(registryID, "contract.owner", adminAddr)

	res := callAs(host, registryID, adminAddr, "init", tokenID)
	require.True(t, res.Success, "init failed: %s", res.ErrMsg)
	return host
}

func seedBalance(host *sdk.MockHost, account string, amount uint64) {
	host.StateSet(tokenID, "bal/"+account, strconv.FormatUint(amount, 10))
}

func balanceOf(host *sdk.MockHost, account string) uint64 {
	bal := host.StateGet(tokenID, "bal/"+account)
	if bal == "" {
		return 0
	}
	amount, _ := strconv.ParseUint(bal, 10, 64)
	return amount
}

// purchase drives a buy or update end to end through the token contract.
func purchase(host *sdk.MockHost, buyer string, op string, pixel uint64, colour uint32, amount uint64) sdk.CallResult {
	dataHex := mustDispatchHex(op, buyer, pixel, colour, amount)
	payload := registryID + "," + strconv.FormatUint(amount, 10) + "," + dataHex
	return callAs(host, tokenID, buyer, "transfer_and_call", payload)
}

func mustDispatchHex(op string, target string, pixel uint64, colour uint32, amount uint64) string {
	payload := registry.DispatchPayload{
		Op:      op,
		Target:  target,
		PixelId: pixel,
		Colour:  colour,
		Amount:  amount,
	}
	raw, _ := payload.MarshalMsg(nil)
	return hex.EncodeToString(raw)
}

func getPixel(t *testing.T, host *sdk.MockHost, id uint64) (registry.Pixel, bool) {
	t.Helper()
	res := callAs(host, registryID, aliceAddr, "get_pixel", strconv.FormatUint(id, 10))
	require.True(t, res.Success, "get_pixel failed: %s", res.ErrMsg)
	require.NotNil(t, res.Ret)
	if *res.Ret == "null" {
		return registry.Pixel{}, false
	}
	var pixel registry.Pixel
	require.NoError(t, tinyjson.Unmarshal([]byte(*res.Ret), &pixel))
	return pixel, true
}

func getCompensation(t *testing.T, host *sdk.MockHost, account string) uint64 {
	t.Helper()
	res := callAs(host, registryID, account, "get_compensation", account)
	require.True(t, res.Success, "get_compensation failed: %s", res.ErrMsg)
	require.NotNil(t, res.Ret)
	amount, err := strconv.ParseUint(*res.Ret, 10, 64)
	require.NoError(t, err)
	return amount
}

func compensationState(t *testing.T, host *sdk.MockHost) registry.CompensationMap {
	t.Helper()
	compensation := make(registry.CompensationMap)
	raw := host.StateGet(registryID, "compensation")
	if raw != "" {
		require.NoError(t, tinyjson.Unmarshal([]byte(raw), &compensation))
	}
	return compensation
}

func pricingState(t *testing.T, host *sdk.MockHost) registry.PricingParams {
	t.Helper()
	var pricing registry.PricingParams
	raw := host.StateGet(registryID, "pricing")
	require.NotEmpty(t, raw)
	require.NoError(t, tinyjson.Unmarshal([]byte(raw), &pricing))
	return pricing
}
