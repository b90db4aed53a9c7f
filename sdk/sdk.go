package sdk

// Host ABI shared by the wasm build (runtime_imports.go) and the in-memory
// mock host used by tests and non-tinygo builds (host_mock.go).

type Address string

func (a Address) String() string {
	return string(a)
}

type Sender struct {
	Address       Address
	RequiredAuths []Address
}

// ContractCallResult is the host's envelope for the outcome of a nested
// contract call.
//
//tinyjson:json
type ContractCallResult struct {
	Success bool
	Ret     *string
}

//tinyjson:json
type Env struct {
	ContractId  string
	TxId        string
	BlockId     string
	Index       int64
	OpIndex     int64
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Address
}

func Log(s string) {
	hostLog(s)
}

// StateGetObject returns the value stored under key in the calling contract's
// state. Missing keys read as the empty string.
func StateGetObject(key string) *string {
	return hostStateGet(key)
}

func StateSetObject(key string, value string) {
	hostStateSet(key, value)
}

func StateDeleteObject(key string) {
	hostStateDelete(key)
}

func GetEnv() Env {
	return hostGetEnv()
}

// GetEnvKey reads a host-provided environment value such as "contract.owner".
func GetEnvKey(key string) *string {
	return hostGetEnvKey(key)
}

// ContractCall invokes method on another contract as a nested unit of work.
// A failed nested call rolls back only its own state writes; ok reports
// whether the nested call committed. The caller decides whether a failure is
// fatal to its own unit of work.
func ContractCall(contractId string, method string, payload string) (*string, bool) {
	return hostContractCall(contractId, method, payload)
}

// Abort halts execution and discards every state write of the current unit of
// work.
func Abort(msg string) {
	hostAbort(msg)
	panic("unreachable")
}

// Revert behaves like Abort but carries a machine-readable error symbol.
func Revert(msg string, symbol string) {
	hostRevert(msg, symbol)
	panic("unreachable")
}
