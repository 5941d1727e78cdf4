package node

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"nftmarket/common/utils"
)

// Client read only access to the chain collections are deployed on
type Client struct {
	eth *ethclient.Client
}

// Dial connects to the JSON-RPC endpoint at url
func Dial(url string) (*Client, error) {
	eth, err := ethclient.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial chain node")
	}
	return &Client{eth: eth}, nil
}

// IsNFTContract reports whether address holds an ERC-721 or ERC-1155 contract
func (c *Client) IsNFTContract(ctx context.Context, address string) (bool, error) {
	if !utils.IsAddress(address) {
		return false, nil
	}
	return utils.IsNFTContract(ctx, c.eth, common.HexToAddress(address))
}

func (c *Client) Close() {
	c.eth.Close()
}
