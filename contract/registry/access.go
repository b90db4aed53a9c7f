package registry

import (
	"fmt"

	"pixel-registry-contract/contract/constants"
	"pixel-registry-contract/contract/contracterrors"
	"pixel-registry-contract/sdk"
)

func requireAdmin(rs *RegistryState, env sdk.Env) error {
	if env.Sender.Address.String() != rs.Admin {
		return contracterrors.NewContractError(
			contracterrors.ErrNoPermission,
			fmt.Sprintf("%s is not the registry admin", env.Sender.Address))
	}
	return nil
}

// HandleInit sets up the registry. Only the contract deployer may call it,
// and only once. The deployer becomes the first admin.
func HandleInit(tokenContract string, env sdk.Env) error {
	owner := sdk.GetEnvKey(constants.OwnerEnvKey)
	if env.Sender.Address.String() != *owner {
		return contracterrors.NewContractError(
			contracterrors.ErrNoPermission, "only the contract owner may initialize")
	}
	existing := sdk.StateGetObject(adminKey)
	if *existing != "" {
		return contracterrors.NewContractError(
			contracterrors.ErrInput, "registry already initialized")
	}
	if tokenContract == "" {
		return contracterrors.NewContractError(
			contracterrors.ErrInput, "payment token contract id required")
	}

	pricing := PricingParams{
		MinPrice:        constants.DefaultMinPrice,
		AppreciationBps: constants.DefaultAppreciationBps,
		PayoutBps:       constants.DefaultPayoutBps,
	}

	sdk.StateSetObject(adminKey, *owner)
	sdk.StateSetObject(tokenContractKey, tokenContract)
	err := savePricingToState(&pricing)
	if err != nil {
		return err
	}
	err = saveCompensationToState(make(CompensationMap))
	if err != nil {
		return err
	}

	logEvent(RegistryInitEvent{
		Event:         "registry_init",
		Admin:         *owner,
		TokenContract: tokenContract,
	})
	return nil
}

func (rs *RegistryState) HandleSetMinPrice(minPrice uint64, env sdk.Env) error {
	if err := requireAdmin(rs, env); err != nil {
		return err
	}
	if minPrice == 0 {
		return contracterrors.NewContractError(
			contracterrors.ErrInput, "minimum price must be positive")
	}
	rs.Pricing.MinPrice = minPrice
	return nil
}

// HandleSetAppreciation rejects rates below 100% so resale prices stay
// monotonic and the ledger can never owe more than was paid in.
func (rs *RegistryState) HandleSetAppreciation(bps uint64, env sdk.Env) error {
	if err := requireAdmin(rs, env); err != nil {
		return err
	}
	if bps < constants.BpsDenominator {
		return contracterrors.NewContractError(
			contracterrors.ErrInput,
			fmt.Sprintf("appreciation %d bps below the %d floor", bps, constants.BpsDenominator))
	}
	rs.Pricing.AppreciationBps = bps
	return nil
}

func (rs *RegistryState) HandleSetPayoutRate(bps uint64, env sdk.Env) error {
	if err := requireAdmin(rs, env); err != nil {
		return err
	}
	if bps > constants.BpsDenominator {
		return contracterrors.NewContractError(
			contracterrors.ErrInput,
			fmt.Sprintf("payout %d bps above the %d ceiling", bps, constants.BpsDenominator))
	}
	rs.Pricing.PayoutBps = bps
	return nil
}

func (rs *RegistryState) HandlePause(env sdk.Env) error {
	if err := requireAdmin(rs, env); err != nil {
		return err
	}
	rs.Pricing.Paused = true
	return nil
}

func (rs *RegistryState) HandleUnpause(env sdk.Env) error {
	if err := requireAdmin(rs, env); err != nil {
		return err
	}
	rs.Pricing.Paused = false
	return nil
}

func (rs *RegistryState) HandleTransferAdmin(newAdmin string, env sdk.Env) error {
	if err := requireAdmin(rs, env); err != nil {
		return err
	}
	if newAdmin == "" {
		return contracterrors.NewContractError(
			contracterrors.ErrInput, "new admin address required")
	}
	rs.Admin = newAdmin
	sdk.StateSetObject(adminKey, newAdmin)
	return nil
}
