//go:build !gc.custom

package sdk

// In-memory stand-in for the VSC execution host. Non-tinygo builds back the
// sdk API with this so contract logic can run in-process; tests use it to
// drive entrypoints, including nested contract-to-contract calls.
//
// Semantics mirror the real host: every call is one unit of work executed
// against a state snapshot. An abort or revert restores the snapshot and
// drops the unit's logs, so no partial mutation or event is ever observable.
// Nested calls made through ContractCall are their own units of work; a
// nested failure rolls back only the nested writes and is reported to the
// caller as ok == false.

import "fmt"

// EntryFunc is a contract entrypoint as registered with the mock host.
type EntryFunc func(payload *string) *string

// CallResult reports the outcome of one unit of work.
type CallResult struct {
	Success   bool
	Ret       *string
	ErrMsg    string
	ErrSymbol string
	Logs      []string
}

type MockHost struct {
	state     map[string]map[string]string
	envKeys   map[string]map[string]string
	contracts map[string]map[string]EntryFunc
	envStack  []Env
	logs      []string
}

// currentHost backs the package-level sdk functions during a Call.
var currentHost *MockHost

type abortSignal struct {
	msg    string
	symbol string
}

func NewMockHost() *MockHost {
	return &MockHost{
		state:     make(map[string]map[string]string),
		envKeys:   make(map[string]map[string]string),
		contracts: make(map[string]map[string]EntryFunc),
	}
}

// RegisterContract installs a contract's entrypoints under contractId.
func (h *MockHost) RegisterContract(contractId string, entrypoints map[string]EntryFunc) {
	h.contracts[contractId] = entrypoints
	if _, ok := h.state[contractId]; !ok {
		h.state[contractId] = make(map[string]string)
	}
}

// SetEnvKey sets a host environment value (e.g. "contract.owner") for a
// contract.
func (h *MockHost) SetEnvKey(contractId string, key string, value string) {
	if _, ok := h.envKeys[contractId]; !ok {
		h.envKeys[contractId] = make(map[string]string)
	}
	h.envKeys[contractId][key] = value
}

func (h *MockHost) StateSet(contractId string, key string, value string) {
	if _, ok := h.state[contractId]; !ok {
		h.state[contractId] = make(map[string]string)
	}
	h.state[contractId][key] = value
}

func (h *MockHost) StateGet(contractId string, key string) string {
	return h.state[contractId][key]
}

// Call runs one entrypoint as an atomic unit of work. env.ContractId selects
// the contract; on abort every state write and log of the unit is discarded.
func (h *MockHost) Call(env Env, action string, payload string) (result CallResult) {
	entrypoints, ok := h.contracts[env.ContractId]
	if !ok {
		return CallResult{ErrMsg: fmt.Sprintf("unknown contract: %s", env.ContractId)}
	}
	fn, ok := entrypoints[action]
	if !ok {
		return CallResult{ErrMsg: fmt.Sprintf("unknown entrypoint: %s", action)}
	}

	prev := currentHost
	currentHost = h
	snapshot := h.snapshotState()
	logMark := len(h.logs)
	h.envStack = append(h.envStack, env)

	defer func() {
		h.envStack = h.envStack[:len(h.envStack)-1]
		currentHost = prev
		if r := recover(); r != nil {
			sig, isAbort := r.(abortSignal)
			if !isAbort {
				panic(r)
			}
			h.restoreState(snapshot)
			h.logs = h.logs[:logMark]
			result = CallResult{ErrMsg: sig.msg, ErrSymbol: sig.symbol}
			return
		}
		result.Logs = append([]string{}, h.logs[logMark:]...)
	}()

	ret := fn(&payload)
	return CallResult{Success: true, Ret: ret}
}

func (h *MockHost) snapshotState() map[string]map[string]string {
	snapshot := make(map[string]map[string]string, len(h.state))
	for contractId, kv := range h.state {
		copied := make(map[string]string, len(kv))
		for k, v := range kv {
			copied[k] = v
		}
		snapshot[contractId] = copied
	}
	return snapshot
}

func (h *MockHost) restoreState(snapshot map[string]map[string]string) {
	h.state = snapshot
}

func (h *MockHost) currentEnv() Env {
	if len(h.envStack) == 0 {
		panic("mock host: no active call")
	}
	return h.envStack[len(h.envStack)-1]
}

func requireHost() *MockHost {
	if currentHost == nil {
		panic("mock host: sdk used outside MockHost.Call")
	}
	return currentHost
}

func hostLog(s string) {
	h := requireHost()
	h.logs = append(h.logs, s)
}

func hostStateGet(key string) *string {
	h := requireHost()
	v := h.state[h.currentEnv().ContractId][key]
	return &v
}

func hostStateSet(key string, value string) {
	h := requireHost()
	h.StateSet(h.currentEnv().ContractId, key, value)
}

func hostStateDelete(key string) {
	h := requireHost()
	delete(h.state[h.currentEnv().ContractId], key)
}

func hostGetEnv() Env {
	return requireHost().currentEnv()
}

func hostGetEnvKey(key string) *string {
	h := requireHost()
	v := h.envKeys[h.currentEnv().ContractId][key]
	return &v
}

func hostContractCall(contractId string, method string, payload string) (*string, bool) {
	h := requireHost()
	outer := h.currentEnv()
	nested := outer
	nested.ContractId = contractId
	nested.Caller = Address(outer.ContractId)
	result := h.Call(nested, method, payload)
	return result.Ret, result.Success
}

func hostAbort(msg string) {
	panic(abortSignal{msg: msg})
}

func hostRevert(msg string, symbol string) {
	panic(abortSignal{msg: msg, symbol: symbol})
}
