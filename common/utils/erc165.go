package utils

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	ERC165ABI          abi.ABI
	NotInterfaceId     = [4]byte{0xff, 0xff, 0xff, 0xff}
	ERC165InterfaceId  = [4]byte{0x01, 0xff, 0xc9, 0xa7}
	ERC721InterfaceId  = [4]byte{0x80, 0xac, 0x58, 0xcd}
	ERC1155InterfaceId = [4]byte{0xd9, 0xb6, 0x7a, 0x26}
)

func init() {
	erc165 := "[{\"inputs\":[{\"internalType\":\"bytes4\",\"name\":\"interfaceId\",\"type\":\"bytes4\"}],\"name\":\"supportsInterface\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"view\",\"type\":\"function\"}]"
	ERC165ABI, _ = abi.JSON(strings.NewReader(erc165))
}

// SupportsInterface asks the contract whether it implements interfaceId,
// a reverting call answers false
func SupportsInterface(ctx context.Context, caller bind.ContractCaller, address common.Address, interfaceId [4]byte) (bool, error) {
	input, err := ERC165ABI.Pack("supportsInterface", interfaceId)
	if err != nil {
		return false, err
	}
	output, err := caller.CallContract(ctx, ethereum.CallMsg{To: &address, Data: input}, nil)
	if err != nil {
		if isRevert(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "call supportsInterface")
	}
	if len(output) == 0 {
		return false, nil
	}
	out, err := ERC165ABI.Unpack("supportsInterface", output)
	if err != nil || len(out) == 0 {
		return false, nil
	}
	support, _ := out[0].(bool)
	return support, nil
}

func isRevert(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "execution reverted") || strings.Contains(msg, "invalid opcode")
}

// IsERC165 the contract answers true for ERC-165 and false for 0xffffffff
func IsERC165(ctx context.Context, caller bind.ContractCaller, address common.Address) (bool, error) {
	support, err := SupportsInterface(ctx, caller, address, ERC165InterfaceId)
	if !support || err != nil {
		return false, err
	}
	support, err = SupportsInterface(ctx, caller, address, NotInterfaceId)
	return !support, err
}

func IsERC721(ctx context.Context, caller bind.ContractCaller, address common.Address) (bool, error) {
	return SupportsInterface(ctx, caller, address, ERC721InterfaceId)
}

func IsERC1155(ctx context.Context, caller bind.ContractCaller, address common.Address) (bool, error) {
	return SupportsInterface(ctx, caller, address, ERC1155InterfaceId)
}

// IsNFTContract deployed code that declares ERC-721 or ERC-1155 through ERC-165
func IsNFTContract(ctx context.Context, caller bind.ContractCaller, address common.Address) (bool, error) {
	code, err := caller.CodeAt(ctx, address, nil)
	if err != nil {
		return false, errors.Wrap(err, "get contract code")
	}
	if len(code) == 0 {
		return false, nil
	}
	if ok, err := IsERC165(ctx, caller, address); !ok || err != nil {
		return false, err
	}
	if ok, err := IsERC721(ctx, caller, address); ok || err != nil {
		return ok, err
	}
	return IsERC1155(ctx, caller, address)
}
