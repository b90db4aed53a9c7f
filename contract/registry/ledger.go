package registry

import (
	"fmt"

	"github.com/CosmWasm/tinyjson"

	"pixel-registry-contract/contract/contracterrors"
	"pixel-registry-contract/sdk"
)

func (rs *RegistryState) credit(account string, amount uint64) error {
	current := rs.Compensation[account]
	next := current + amount
	if next < current {
		return contracterrors.NewContractError(
			contracterrors.ErrArithmetic,
			fmt.Sprintf("compensation balance overflow for %s", account))
	}
	rs.Compensation[account] = next

	logEvent(CompensationEvent{
		Event:   "compensation_credited",
		Account: account,
		Amount:  amount,
	})
	return nil
}

func checkActiveAuth(env sdk.Env) error {
	for _, auth := range env.Sender.RequiredAuths {
		if auth == env.Sender.Address {
			return nil
		}
	}
	return contracterrors.NewContractError(
		contracterrors.ErrAuth, contracterrors.ErrMsgActiveAuth)
}

// HandleWithdraw pays out the sender's accrued compensation. The balance is
// zeroed and persisted before the outbound token transfer, so a reentrant
// call through the token contract finds nothing left to withdraw. A failed
// transfer reverts the whole unit of work, which restores the balance.
//
// HandleWithdraw persists the ledger itself; callers must not save it again
// after the nested call.
func (rs *RegistryState) HandleWithdraw(env sdk.Env) (uint64, error) {
	account := env.Sender.Address.String()

	amount := rs.Compensation[account]
	if amount == 0 {
		return 0, contracterrors.NewContractError(
			contracterrors.ErrNothingToWithdraw,
			fmt.Sprintf("no compensation accrued for %s", account))
	}
	if err := checkActiveAuth(env); err != nil {
		return 0, err
	}

	delete(rs.Compensation, account)
	if err := saveCompensationToState(rs.Compensation); err != nil {
		return 0, err
	}

	args := TransferArgs{To: account, Amount: amount}
	argsJson, err := tinyjson.Marshal(args)
	if err != nil {
		return 0, contracterrors.WrapContractError(
			contracterrors.ErrJson, err, "error marshaling transfer args")
	}

	ret, ok := sdk.ContractCall(rs.TokenContract, "transfer", string(argsJson))
	if !ok {
		return 0, contracterrors.NewContractError(
			contracterrors.ErrPayoutFailed,
			fmt.Sprintf("token transfer of %d to %s did not commit", amount, account))
	}
	if ret != nil && len(*ret) > 0 {
		var result TransferResult
		err = tinyjson.Unmarshal([]byte(*ret), &result)
		if err != nil {
			return 0, contracterrors.WrapContractError(
				contracterrors.ErrPayoutFailed, err, "error unmarshaling transfer result")
		}
		if !result.Success {
			return 0, contracterrors.NewContractError(
				contracterrors.ErrPayoutFailed,
				fmt.Sprintf("token contract rejected transfer of %d to %s", amount, account))
		}
	}

	logEvent(CompensationEvent{
		Event:   "compensation_withdrawn",
		Account: account,
		Amount:  amount,
	})
	return amount, nil
}
