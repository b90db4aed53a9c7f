package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-registry-contract/contract/registry"
)

func TestBuyClaimsUnownedPixel(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 5000)

	res := purchase(host, aliceAddr, "buy", 7, 0xff0000, 1500)
	require.True(t, res.Success, res.ErrMsg)

	pixel, owned := getPixel(t, host, 7)
	require.True(t, owned)
	assert.Equal(t, registry.Pixel{Owner: aliceAddr, Colour: 0xff0000, Price: 1500}, pixel)

	assert.Equal(t, uint64(3500), balanceOf(host, aliceAddr))
	assert.Equal(t, uint64(1500), balanceOf(host, registryID))

	require.NotEmpty(t, res.Logs)
	assert.Contains(t, res.Logs[len(res.Logs)-1], `"event":"pixel_bought"`)
}

func TestBuyOwnedPixelRejected(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 5000)
	seedBalance(host, bobAddr, 5000)

	res := purchase(host, aliceAddr, "buy", 7, 0xff0000, 1500)
	require.True(t, res.Success, res.ErrMsg)

	res = callHook(host, tokenID,
		receiverInputJson(bobAddr, 2000, mustDispatchHex("buy", bobAddr, 7, 0x00ff00, 2000)))
	assert.False(t, res.Success)
	assert.Equal(t, "pixel_already_owned", res.ErrSymbol)

	pixel, _ := getPixel(t, host, 7)
	assert.Equal(t, aliceAddr, pixel.Owner, "ownership must not change on a failed buy")
}

func TestBuyBelowMinPriceRejected(t *testing.T) {
	host := newHarness(t)

	res := callHook(host, tokenID,
		receiverInputJson(aliceAddr, 999, mustDispatchHex("buy", aliceAddr, 7, 0xff0000, 999)))
	assert.False(t, res.Success)
	assert.Equal(t, "insufficient_amount", res.ErrSymbol)

	_, owned := getPixel(t, host, 7)
	assert.False(t, owned)
}

func TestUpdateTakesOverPixel(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 5000)
	seedBalance(host, bobAddr, 5000)

	res := purchase(host, aliceAddr, "buy", 7, 0xff0000, 2000)
	require.True(t, res.Success, res.ErrMsg)

	// appreciation default is 110%, so 2200 is the exact floor
	res = purchase(host, bobAddr, "update", 7, 0x00ff00, 2200)
	require.True(t, res.Success, res.ErrMsg)

	pixel, owned := getPixel(t, host, 7)
	require.True(t, owned)
	assert.Equal(t, registry.Pixel{Owner: bobAddr, Colour: 0x00ff00, Price: 2200}, pixel)

	// full previous price is credited at the default 100% payout rate
	assert.Equal(t, uint64(2000), getCompensation(t, host, aliceAddr))

	require.GreaterOrEqual(t, len(res.Logs), 2)
	assert.Contains(t, res.Logs[len(res.Logs)-2], `"event":"compensation_credited"`)
	assert.Contains(t, res.Logs[len(res.Logs)-1], `"event":"pixel_updated"`)
}

func TestUpdateBelowAppreciationRejected(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 5000)

	res := purchase(host, aliceAddr, "buy", 7, 0xff0000, 2000)
	require.True(t, res.Success, res.ErrMsg)

	res = callHook(host, tokenID,
		receiverInputJson(bobAddr, 2199, mustDispatchHex("update", bobAddr, 7, 0x00ff00, 2199)))
	assert.False(t, res.Success)
	assert.Equal(t, "insufficient_amount", res.ErrSymbol)

	pixel, _ := getPixel(t, host, 7)
	assert.Equal(t, aliceAddr, pixel.Owner)
	assert.Equal(t, uint64(0), getCompensation(t, host, aliceAddr), "no credit on a failed update")
}

func TestUpdateUnownedPixelRejected(t *testing.T) {
	host := newHarness(t)

	res := callHook(host, tokenID,
		receiverInputJson(aliceAddr, 2000, mustDispatchHex("update", aliceAddr, 7, 0x00ff00, 2000)))
	assert.False(t, res.Success)
	assert.Equal(t, "pixel_not_owned", res.ErrSymbol)
}

func TestOwnerCannotUpdateOwnPixel(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 10000)

	res := purchase(host, aliceAddr, "buy", 7, 0xff0000, 2000)
	require.True(t, res.Success, res.ErrMsg)

	res = callHook(host, tokenID,
		receiverInputJson(aliceAddr, 2200, mustDispatchHex("update", aliceAddr, 7, 0x00ff00, 2200)))
	assert.False(t, res.Success)
	assert.Equal(t, "buyer_is_owner", res.ErrSymbol)

	pixel, _ := getPixel(t, host, 7)
	assert.Equal(t, uint32(0xff0000), pixel.Colour, "colour must not change")
	assert.Equal(t, uint64(2000), pixel.Price, "price must not change")
}

func TestPauseBlocksPurchases(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 5000)
	seedBalance(host, bobAddr, 5000)

	res := purchase(host, aliceAddr, "buy", 7, 0xff0000, 2000)
	require.True(t, res.Success, res.ErrMsg)

	res = callAs(host, registryID, adminAddr, "pause", "")
	require.True(t, res.Success, res.ErrMsg)

	res = callHook(host, tokenID,
		receiverInputJson(bobAddr, 2000, mustDispatchHex("buy", bobAddr, 8, 0x0000ff, 2000)))
	assert.Equal(t, "registry_paused", res.ErrSymbol)
	res = callHook(host, tokenID,
		receiverInputJson(bobAddr, 2200, mustDispatchHex("update", bobAddr, 7, 0x0000ff, 2200)))
	assert.Equal(t, "registry_paused", res.ErrSymbol)

	res = callAs(host, registryID, adminAddr, "unpause", "")
	require.True(t, res.Success, res.ErrMsg)

	res = purchase(host, bobAddr, "buy", 8, 0x0000ff, 2000)
	assert.True(t, res.Success, res.ErrMsg)
}

// Ownership chain over repeated resales: each takeover pays at least 110% of
// the previous price and the ledger accrues exactly the payout of each
// displaced owner.
func TestRepeatedResales(t *testing.T) {
	host := newHarness(t)
	seedBalance(host, aliceAddr, 100000)
	seedBalance(host, bobAddr, 100000)
	seedBalance(host, carolAddr, 100000)

	require.True(t, purchase(host, aliceAddr, "buy", 42, 0x111111, 1000).Success)
	require.True(t, purchase(host, bobAddr, "update", 42, 0x222222, 1100).Success)
	require.True(t, purchase(host, carolAddr, "update", 42, 0x333333, 1210).Success)

	pixel, _ := getPixel(t, host, 42)
	assert.Equal(t, carolAddr, pixel.Owner)
	assert.Equal(t, uint64(1210), pixel.Price)

	assert.Equal(t, uint64(1000), getCompensation(t, host, aliceAddr))
	assert.Equal(t, uint64(1100), getCompensation(t, host, bobAddr))

	// solvency: the registry holds everything the ledger owes
	owed := uint64(0)
	for _, amount := range compensationState(t, host) {
		owed += amount
	}
	assert.LessOrEqual(t, owed, balanceOf(host, registryID))
}
