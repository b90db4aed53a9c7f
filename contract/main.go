//go:build tinygo.wasm

// VSC pixel registry contract.
//
// Build command: tinygo build -o main.wasm -gc=custom -scheduler=none -panic=trap -no-debug -target=wasm-unknown main.go
// Inspect Output: wasmer inspect main.wasm
//
// Caveats:
// - Go routines, channels, and defer are disabled
// - panic() always halts the program, since you can't recover in a deferred function call
// - must import sdk or build fails
// - to mark a function as a valid entrypoint, it must be manually exported (//go:wasmexport <entrypoint-name>)

package main

import (
	"pixel-registry-contract/contract/registry"
	_ "pixel-registry-contract/sdk" // ensure sdk is imported
)

//go:wasmexport init
func Init(tokenContract *string) *string {
	return registry.Init(tokenContract)
}

//go:wasmexport on_tokens_received
func OnTokensReceived(payload *string) *string {
	return registry.OnTokensReceived(payload)
}

//go:wasmexport withdraw
func Withdraw(payload *string) *string {
	return registry.Withdraw(payload)
}

//go:wasmexport set_min_price
func SetMinPrice(payload *string) *string {
	return registry.SetMinPrice(payload)
}

//go:wasmexport set_appreciation
func SetAppreciation(payload *string) *string {
	return registry.SetAppreciation(payload)
}

//go:wasmexport set_payout_rate
func SetPayoutRate(payload *string) *string {
	return registry.SetPayoutRate(payload)
}

//go:wasmexport pause
func Pause(payload *string) *string {
	return registry.Pause(payload)
}

//go:wasmexport unpause
func Unpause(payload *string) *string {
	return registry.Unpause(payload)
}

//go:wasmexport transfer_admin
func TransferAdmin(payload *string) *string {
	return registry.TransferAdmin(payload)
}

//go:wasmexport get_pixel
func GetPixel(payload *string) *string {
	return registry.GetPixel(payload)
}

//go:wasmexport get_compensation
func GetCompensation(payload *string) *string {
	return registry.GetCompensation(payload)
}

func main() {}
