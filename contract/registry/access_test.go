package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-registry-contract/sdk"
)

func TestInitGatedOnContractOwner(t *testing.T) {
	host := sdk.NewMockHost()
	host.RegisterContract(registryID, registryEntrypoints())
	host.SetEnvKey(registryID, "contract.owner", adminAddr)

	res := callAs(host, registryID, aliceAddr, "init", tokenID)
	assert.False(t, res.Success)
	assert.Equal(t, "no_permission", res.ErrSymbol)
	assert.Empty(t, host.StateGet(registryID, "admin"))

	res = callAs(host, registryID, adminAddr, "init", tokenID)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, adminAddr, host.StateGet(registryID, "admin"))
	assert.Equal(t, tokenID, host.StateGet(registryID, "token_contract"))

	require.NotEmpty(t, res.Logs)
	assert.Contains(t, res.Logs[len(res.Logs)-1], `"event":"registry_init"`)

	// second init must fail and change nothing
	res = callAs(host, registryID, adminAddr, "init", "vsc1othertoken")
	assert.False(t, res.Success)
	assert.Equal(t, tokenID, host.StateGet(registryID, "token_contract"))
}

func TestEntrypointsRequireInit(t *testing.T) {
	host := sdk.NewMockHost()
	host.RegisterContract(registryID, registryEntrypoints())

	res := callAs(host, registryID, aliceAddr, "withdraw", "")
	assert.False(t, res.Success)
	assert.Equal(t, "contract_not_initialized", res.ErrSymbol)
}

func TestAdminGatesRejectNonAdmin(t *testing.T) {
	host := newHarness(t)
	before := pricingState(t, host)

	for action, payload := range map[string]string{
		"set_min_price":    "500",
		"set_appreciation": "12000",
		"set_payout_rate":  "9000",
		"pause":            "",
		"unpause":          "",
		"transfer_admin":   bobAddr,
	} {
		res := callAs(host, registryID, aliceAddr, action, payload)
		assert.False(t, res.Success, action)
		assert.Equal(t, "no_permission", res.ErrSymbol, action)
	}

	assert.Equal(t, before, pricingState(t, host), "failed admin calls must not mutate pricing")
	assert.Equal(t, adminAddr, host.StateGet(registryID, "admin"))
}

func TestPricingSettersApply(t *testing.T) {
	host := newHarness(t)

	require.True(t, callAs(host, registryID, adminAddr, "set_min_price", "500").Success)
	require.True(t, callAs(host, registryID, adminAddr, "set_appreciation", "12500").Success)
	require.True(t, callAs(host, registryID, adminAddr, "set_payout_rate", "8000").Success)

	pricing := pricingState(t, host)
	assert.Equal(t, uint64(500), pricing.MinPrice)
	assert.Equal(t, uint64(12500), pricing.AppreciationBps)
	assert.Equal(t, uint64(8000), pricing.PayoutBps)
	assert.False(t, pricing.Paused)
}

func TestPricingSetterBounds(t *testing.T) {
	host := newHarness(t)
	before := pricingState(t, host)

	// appreciation below 100% would let prices decay
	res := callAs(host, registryID, adminAddr, "set_appreciation", "9999")
	assert.False(t, res.Success)
	assert.Equal(t, "bad_input", res.ErrSymbol)

	// payout above 100% would owe more than was paid in
	res = callAs(host, registryID, adminAddr, "set_payout_rate", "10001")
	assert.False(t, res.Success)
	assert.Equal(t, "bad_input", res.ErrSymbol)

	res = callAs(host, registryID, adminAddr, "set_min_price", "0")
	assert.False(t, res.Success)
	assert.Equal(t, "bad_input", res.ErrSymbol)

	res = callAs(host, registryID, adminAddr, "set_min_price", "not a number")
	assert.False(t, res.Success)
	assert.Equal(t, "bad_input", res.ErrSymbol)

	assert.Equal(t, before, pricingState(t, host))
}

func TestTransferAdmin(t *testing.T) {
	host := newHarness(t)

	res := callAs(host, registryID, adminAddr, "transfer_admin", bobAddr)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, bobAddr, host.StateGet(registryID, "admin"))

	// the old admin is locked out, the new one is in
	res = callAs(host, registryID, adminAddr, "pause", "")
	assert.Equal(t, "no_permission", res.ErrSymbol)

	res = callAs(host, registryID, bobAddr, "pause", "")
	assert.True(t, res.Success, res.ErrMsg)
	assert.True(t, pricingState(t, host).Paused)
}

func TestGetPixelUnowned(t *testing.T) {
	host := newHarness(t)

	res := callAs(host, registryID, aliceAddr, "get_pixel", "12345")
	require.True(t, res.Success, res.ErrMsg)
	require.NotNil(t, res.Ret)
	assert.Equal(t, "null", *res.Ret)
}

func TestGetCompensationDefaultsToSender(t *testing.T) {
	host := newHarness(t)
	host.StateSet(registryID, "compensation", `{"hive:alice":777}`)

	res := callAs(host, registryID, aliceAddr, "get_compensation", "")
	require.True(t, res.Success, res.ErrMsg)
	require.NotNil(t, res.Ret)
	assert.Equal(t, "777", *res.Ret)
}
