package codec

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"
)

// TransferArgs is the argument object of eth_sendTransaction for a plain value transfer.
// The node fills in nonce, gas and gas price when they are left empty.
type TransferArgs struct {
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to"`
	Value    *hexutil.Big    `json:"value"`
	Gas      *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice *hexutil.Big    `json:"gasPrice,omitempty"`
}

// NewTransferArgs returns transfer arguments moving value wei from one account to another.
func NewTransferArgs(from, to common.Address, value *big.Int) TransferArgs {
	return TransferArgs{
		From:  from,
		To:    &to,
		Value: (*hexutil.Big)(new(big.Int).Set(value)),
	}
}

// WithGas sets an explicit gas limit and gas price. Zero values are left to the node.
func (a TransferArgs) WithGas(gasLimit uint64, gasPrice *big.Int) TransferArgs {
	if gasLimit > 0 {
		gas := hexutil.Uint64(gasLimit)
		a.Gas = &gas
	}
	if gasPrice != nil && gasPrice.Sign() > 0 {
		a.GasPrice = (*hexutil.Big)(new(big.Int).Set(gasPrice))
	}
	return a
}

var (
	weiPerEther = big.NewInt(params.Ether)

	// plain decimals only, big.Rat would also take fractions and hex
	decimalAmount = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

// ToWei converts a decimal ether amount such as "1.33" to wei.
func ToWei(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}

	if !decimalAmount.MatchString(amount) {
		return nil, fmt.Errorf("invalid decimal amount: %s", amount)
	}

	r, ok := new(big.Rat).SetString(amount)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount: %s", amount)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("negative amount: %s", amount)
	}

	r.Mul(r, new(big.Rat).SetInt(weiPerEther))
	if !r.IsInt() {
		return nil, fmt.Errorf("amount %s has more than 18 decimals", amount)
	}
	return new(big.Int).Set(r.Num()), nil
}

// FromWei formats a wei amount as a decimal ether string without trailing zeros.
func FromWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	s := new(big.Rat).SetFrac(wei, weiPerEther).FloatString(18)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
