package registry

const adminKey = "admin"
const tokenContractKey = "token_contract"
const pricingKey = "pricing"
const compensationKey = "compensation"

const pixelPrefix = "pixels/"

// Pixel is one owned cell of the grid. Unowned pixels have no state entry.
//
//tinyjson:json
type Pixel struct {
	Owner  string
	Colour uint32
	Price  uint64
}

// PricingParams is the admin-adjustable purchase policy.
//
//tinyjson:json
type PricingParams struct {
	MinPrice        uint64
	AppreciationBps uint64
	PayoutBps       uint64
	Paused          bool
}

// CompensationMap holds withdrawable balances owed to displaced owners.
//
//tinyjson:json
type CompensationMap map[string]uint64

// ReceiverInput is the token contract's callback envelope. Sender and Amount
// are trusted only when the immediate caller is the configured token
// contract; DataHex carries the opaque msgpack-encoded dispatch tuple.
//
//tinyjson:json
type ReceiverInput struct {
	Sender  string
	Amount  uint64
	DataHex string
}

// TransferArgs is the outbound payout request sent to the token contract.
//
//tinyjson:json
type TransferArgs struct {
	To     string
	Amount uint64
}

// TransferResult is the token contract's reply to a transfer.
//
//tinyjson:json
type TransferResult struct {
	Success bool
}
