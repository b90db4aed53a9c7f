package registry

import (
	"strconv"

	"github.com/CosmWasm/tinyjson"

	"pixel-registry-contract/contract/contracterrors"
	"pixel-registry-contract/sdk"
)

// RegistryState is the in-memory working copy of everything the contract
// keeps under fixed keys. Pixels live under per-record keys and are loaded
// on demand instead.
type RegistryState struct {
	Admin         string
	TokenContract string
	Pricing       PricingParams
	Compensation  CompensationMap
}

// InitializeRegistryState loads the fixed-key state blobs. It fails with
// contract_not_initialized when init has not run yet.
func InitializeRegistryState() (*RegistryState, error) {
	admin := sdk.StateGetObject(adminKey)
	if *admin == "" {
		return nil, contracterrors.NewContractError(
			contracterrors.ErrInitialization, "registry has not been initialized")
	}

	tokenContract := sdk.StateGetObject(tokenContractKey)

	var pricing PricingParams
	pricingState := sdk.StateGetObject(pricingKey)
	if len(*pricingState) > 0 {
		err := tinyjson.Unmarshal([]byte(*pricingState), &pricing)
		if err != nil {
			return nil, contracterrors.WrapContractError(
				contracterrors.ErrStateAccess, err, "error unmarshaling pricing params")
		}
	}

	compensation, err := CompensationFromState()
	if err != nil {
		return nil, err
	}

	return &RegistryState{
		Admin:         *admin,
		TokenContract: *tokenContract,
		Pricing:       pricing,
		Compensation:  compensation,
	}, nil
}

func (rs *RegistryState) SaveToState() error {
	err := savePricingToState(&rs.Pricing)
	if err != nil {
		return err
	}
	return saveCompensationToState(rs.Compensation)
}

func savePricingToState(pricing *PricingParams) error {
	pricingJson, err := tinyjson.Marshal(*pricing)
	if err != nil {
		return contracterrors.WrapContractError(
			contracterrors.ErrStateAccess, err, "error marshaling pricing params")
	}
	sdk.StateSetObject(pricingKey, string(pricingJson))
	return nil
}

func CompensationFromState() (CompensationMap, error) {
	compensation := make(CompensationMap)
	compensationState := sdk.StateGetObject(compensationKey)
	if len(*compensationState) > 0 {
		err := tinyjson.Unmarshal([]byte(*compensationState), &compensation)
		if err != nil {
			return nil, contracterrors.WrapContractError(
				contracterrors.ErrStateAccess, err, "error unmarshaling compensation ledger")
		}
	}
	return compensation, nil
}

func saveCompensationToState(compensation CompensationMap) error {
	compensationJson, err := tinyjson.Marshal(compensation)
	if err != nil {
		return contracterrors.WrapContractError(
			contracterrors.ErrStateAccess, err, "error marshaling compensation ledger")
	}
	sdk.StateSetObject(compensationKey, string(compensationJson))
	return nil
}

func pixelKey(id uint64) string {
	return pixelPrefix + strconv.FormatUint(id, 10)
}

// PixelFromState reads one pixel record. A missing key means the pixel has
// never been bought.
func PixelFromState(id uint64) (*Pixel, bool, error) {
	pixelState := sdk.StateGetObject(pixelKey(id))
	if len(*pixelState) == 0 {
		return nil, false, nil
	}
	var pixel Pixel
	err := tinyjson.Unmarshal([]byte(*pixelState), &pixel)
	if err != nil {
		return nil, false, contracterrors.WrapContractError(
			contracterrors.ErrStateAccess, err, "error unmarshaling pixel record")
	}
	return &pixel, true, nil
}

func savePixelToState(id uint64, pixel *Pixel) error {
	pixelJson, err := tinyjson.Marshal(*pixel)
	if err != nil {
		return contracterrors.WrapContractError(
			contracterrors.ErrStateAccess, err, "error marshaling pixel record")
	}
	sdk.StateSetObject(pixelKey(id), string(pixelJson))
	return nil
}
