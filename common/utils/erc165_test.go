package utils

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChain answers supportsInterface from a fixed interface set
type fakeChain struct {
	code     []byte
	supports map[[4]byte]bool
	err      error
}

func (f *fakeChain) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return f.code, nil
}

func (f *fakeChain) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	var id [4]byte
	copy(id[:], call.Data[4:8])
	return ERC165ABI.Methods["supportsInterface"].Outputs.Pack(f.supports[id])
}

func TestIsNFTContract(t *testing.T) {
	ctx := context.Background()
	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	erc721 := &fakeChain{code: []byte{0x60}, supports: map[[4]byte]bool{ERC165InterfaceId: true, ERC721InterfaceId: true}}
	ok, err := IsNFTContract(ctx, erc721, addr)
	require.NoError(t, err)
	assert.True(t, ok)

	erc1155 := &fakeChain{code: []byte{0x60}, supports: map[[4]byte]bool{ERC165InterfaceId: true, ERC1155InterfaceId: true}}
	ok, err = IsNFTContract(ctx, erc1155, addr)
	require.NoError(t, err)
	assert.True(t, ok)

	// answers true for everything, including 0xffffffff
	liar := &fakeChain{code: []byte{0x60}, supports: map[[4]byte]bool{ERC165InterfaceId: true, NotInterfaceId: true, ERC721InterfaceId: true}}
	ok, err = IsNFTContract(ctx, liar, addr)
	require.NoError(t, err)
	assert.False(t, ok)

	token := &fakeChain{code: []byte{0x60}, supports: map[[4]byte]bool{ERC165InterfaceId: true}}
	ok, err = IsNFTContract(ctx, token, addr)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsNFTContract(ctx, &fakeChain{}, addr)
	require.NoError(t, err)
	assert.False(t, ok, "no deployed code")
}

func TestSupportsInterfaceErrors(t *testing.T) {
	ctx := context.Background()
	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	ok, err := SupportsInterface(ctx, &fakeChain{err: errors.New("execution reverted")}, addr, ERC721InterfaceId)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = SupportsInterface(ctx, &fakeChain{err: errors.New("connection refused")}, addr, ERC721InterfaceId)
	assert.Error(t, err)
}
