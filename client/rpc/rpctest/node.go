// Package rpctest provides an in-process fake Ethereum node for tests.
package rpctest

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/b-harvest/txdriver/codec"
)

var (
	ErrLocked              = errors.New("authentication needed: password or unlock")
	ErrInsufficientFunds   = errors.New("insufficient funds for gas * price + value")
	errCouldNotDecrypt     = errors.New("could not decrypt key with given password")
	errUnknownAccount      = errors.New("no key for given address or file")
	defaultUnlockSeconds   = uint64(300)
	defaultAccountBalances = new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
)

// Node is a fake node exposing eth, personal, miner and txpool namespaces.
type Node struct {
	mu sync.Mutex

	accounts   []common.Address
	passphrase string
	unlocked   map[common.Address]uint64
	balances   map[common.Address]*big.Int

	height       uint64
	mining       bool
	minerThreads int
	sent         []codec.TransferArgs
	pending      int

	// FailAfter makes every transaction after the first FailAfter ones fail. Negative disables it.
	FailAfter int

	server *ethrpc.Server
}

// NewNode returns a node managing accounts, all locked with passphrase and holding 100 ether.
func NewNode(passphrase string, accounts ...common.Address) *Node {
	n := &Node{
		accounts:   accounts,
		passphrase: passphrase,
		unlocked:   map[common.Address]uint64{},
		balances:   map[common.Address]*big.Int{},
		FailAfter:  -1,
		server:     ethrpc.NewServer(),
	}
	for _, acc := range accounts {
		n.balances[acc] = new(big.Int).Set(defaultAccountBalances)
	}

	for name, api := range map[string]interface{}{
		"eth":      &ethAPI{n},
		"personal": &personalAPI{n},
		"miner":    &minerAPI{n},
		"txpool":   &txpoolAPI{n},
	} {
		if err := n.server.RegisterName(name, api); err != nil {
			panic(fmt.Errorf("register %s api: %w", name, err))
		}
	}
	return n
}

// Accounts returns n sequential test addresses.
func Accounts(n int) []common.Address {
	accs := make([]common.Address, n)
	for i := range accs {
		accs[i] = common.BigToAddress(big.NewInt(int64(0x1000 + i)))
	}
	return accs
}

// Dial connects an in-process rpc client to the node.
func (n *Node) Dial() *ethrpc.Client {
	return ethrpc.DialInProc(n.server)
}

// Stop shuts the node's server down.
func (n *Node) Stop() {
	n.server.Stop()
}

// Mine includes every pending transaction in a new block.
func (n *Node) Mine() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = 0
	n.height++
}

func (n *Node) Sent() []codec.TransferArgs {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]codec.TransferArgs(nil), n.sent...)
}

// UnlockedFor returns the unlock duration in seconds and whether account is unlocked.
func (n *Node) UnlockedFor(account common.Address) (uint64, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	d, ok := n.unlocked[account]
	return d, ok
}

func (n *Node) Mining() (bool, int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.mining, n.minerThreads
}

func (n *Node) SetHeight(h uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.height = h
}

func (n *Node) SetBalance(account common.Address, wei *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.balances[account] = wei
}

type ethAPI struct{ n *Node }

func (api *ethAPI) Accounts() []common.Address {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	return append([]common.Address{}, api.n.accounts...)
}

func (api *ethAPI) BlockNumber() hexutil.Uint64 {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	return hexutil.Uint64(api.n.height)
}

func (api *ethAPI) GetBalance(account common.Address, _ string) (*hexutil.Big, error) {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	bal, ok := api.n.balances[account]
	if !ok {
		return (*hexutil.Big)(big.NewInt(0)), nil
	}
	return (*hexutil.Big)(bal), nil
}

func (api *ethAPI) SendTransaction(args codec.TransferArgs) (common.Hash, error) {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	if _, ok := api.n.unlocked[args.From]; !ok {
		return common.Hash{}, ErrLocked
	}
	if api.n.FailAfter >= 0 && len(api.n.sent) >= api.n.FailAfter {
		return common.Hash{}, ErrInsufficientFunds
	}
	api.n.sent = append(api.n.sent, args)
	api.n.pending++
	return common.BigToHash(big.NewInt(int64(0xbeef0000 + len(api.n.sent)))), nil
}

type personalAPI struct{ n *Node }

func (api *personalAPI) UnlockAccount(account common.Address, passphrase string, duration *uint64) (bool, error) {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	known := false
	for _, acc := range api.n.accounts {
		if acc == account {
			known = true
			break
		}
	}
	if !known {
		return false, errUnknownAccount
	}
	if passphrase != api.n.passphrase {
		return false, errCouldNotDecrypt
	}

	d := defaultUnlockSeconds
	if duration != nil {
		d = *duration
	}
	api.n.unlocked[account] = d
	return true, nil
}

type minerAPI struct{ n *Node }

func (api *minerAPI) Start(threads *int) error {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	api.n.mining = true
	if threads != nil {
		api.n.minerThreads = *threads
	}
	return nil
}

func (api *minerAPI) Stop() {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	api.n.mining = false
}

type txpoolAPI struct{ n *Node }

func (api *txpoolAPI) Status() map[string]hexutil.Uint {
	api.n.mu.Lock()
	defer api.n.mu.Unlock()

	return map[string]hexutil.Uint{
		"pending": hexutil.Uint(api.n.pending),
		"queued":  hexutil.Uint(0),
	}
}

// Handler serves the node over HTTP.
func (n *Node) Handler() http.Handler {
	return n.server
}
