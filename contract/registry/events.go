package registry

import (
	"github.com/CosmWasm/tinyjson"

	"pixel-registry-contract/sdk"
)

// Events are emitted as single-line JSON through sdk.Log. The host drops the
// log output of reverted units of work, so an emitted event always describes
// a committed state change.

//tinyjson:json
type PixelEvent struct {
	Event     string
	Pixel     uint64
	Owner     string
	PrevOwner string
	Colour    uint32
	Price     uint64
}

//tinyjson:json
type CompensationEvent struct {
	Event   string
	Account string
	Amount  uint64
}

//tinyjson:json
type RegistryInitEvent struct {
	Event         string
	Admin         string
	TokenContract string
}

func logEvent(event tinyjson.Marshaler) {
	eventJson, err := tinyjson.Marshal(event)
	if err != nil {
		sdk.Abort("error marshaling event: " + err.Error())
	}
	sdk.Log(string(eventJson))
}
