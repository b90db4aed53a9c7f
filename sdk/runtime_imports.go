//go:build gc.custom

package sdk

import (
	"github.com/CosmWasm/tinyjson"
)

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

func hostLog(s string) {
	log(&s)
}

func hostStateGet(key string) *string {
	v := stateGetObject(&key)
	if v == nil {
		empty := ""
		return &empty
	}
	return v
}

func hostStateSet(key string, value string) {
	stateSetObject(&key, &value)
}

func hostStateDelete(key string) {
	stateDeleteObject(&key)
}

func hostGetEnv() Env {
	arg := ""
	raw := getEnv(&arg)
	var env Env
	if raw == nil {
		hostAbort("missing call environment")
	}
	if err := tinyjson.Unmarshal([]byte(*raw), &env); err != nil {
		hostAbort("error unmarshalling call environment: " + err.Error())
	}
	return env
}

func hostGetEnvKey(key string) *string {
	v := getEnvKey(&key)
	if v == nil {
		empty := ""
		return &empty
	}
	return v
}

func hostContractCall(contractId string, method string, payload string) (*string, bool) {
	options := ""
	raw := contractCall(&contractId, &method, &payload, &options)
	if raw == nil {
		return nil, false
	}
	var res ContractCallResult
	if err := tinyjson.Unmarshal([]byte(*raw), &res); err != nil {
		return nil, false
	}
	return res.Ret, res.Success
}

func hostAbort(msg string) {
	file := ""
	line := int32(0)
	column := int32(0)
	abort(&msg, &file, &line, &column)
	panic("unreachable")
}

func hostRevert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic("unreachable")
}
