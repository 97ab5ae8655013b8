package jsonrpc

import (
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// Protocol is one entry of a getProtocols result.
type Protocol struct {
	InterfaceID string         `json:"interfaceId"`
	Params      ProtocolParams `json:"params"`
}

type ProtocolParams struct {
	ChainID             string         `json:"chainId"`
	SwapContractAddress common.Address `json:"swapContractAddress"`
	WalletAddress       common.Address `json:"walletAddress"`
}

func (p *Protocol) UnmarshalJSON(data []byte) error {
	var raw struct {
		InterfaceID *string `json:"interfaceId"`
		Params      *struct {
			ChainID             json.RawMessage `json:"chainId"`
			SwapContractAddress *common.Address `json:"swapContractAddress"`
			WalletAddress       *common.Address `json:"walletAddress"`
		} `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.InterfaceID == nil || raw.Params == nil {
		return errors.New("protocol needs interfaceId and params")
	}
	if raw.Params.SwapContractAddress == nil || raw.Params.WalletAddress == nil {
		return errors.New("protocol params need swapContractAddress and walletAddress")
	}
	chainID, err := flexString(raw.Params.ChainID)
	if err != nil {
		return err
	}

	*p = Protocol{
		InterfaceID: *raw.InterfaceID,
		Params: ProtocolParams{
			ChainID:             chainID,
			SwapContractAddress: *raw.Params.SwapContractAddress,
			WalletAddress:       *raw.Params.WalletAddress,
		},
	}
	return nil
}
