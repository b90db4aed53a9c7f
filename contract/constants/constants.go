package constants

// Pixel grid dimensions. Ids are linear indexes into the grid, so the valid
// range is [0, PixelCount).
const (
	GridWidth  = 1000
	GridHeight = 1000
	PixelCount = GridWidth * GridHeight
)

// MaxColour bounds the 24-bit RGB colour value.
const MaxColour = 0xFFFFFF

// BpsDenominator is the basis-point scale for the appreciation and payout
// rules.
const BpsDenominator = 10000

// Default pricing parameters, applied at init and adjustable by the admin.
// Appreciation must stay >= BpsDenominator and payout <= BpsDenominator so
// prices are monotonic and the ledger can never owe more than the registry
// has received.
const (
	DefaultMinPrice        = 1000
	DefaultAppreciationBps = 11000
	DefaultPayoutBps       = BpsDenominator
)

// OwnerEnvKey is the host environment key holding the contract deployer.
const OwnerEnvKey = "contract.owner"
