package config

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ghodss/yaml"
	"github.com/mitchellh/go-homedir"
)

type AccountConfig struct {
	AccountName string `json:"accountName"`
	Address     string `json:"address"`
}

// AccountsConfig lists the node-managed accounts a run uses, in order.
type AccountsConfig struct {
	Accounts []AccountConfig `json:"accounts"`
}

// ReadAccounts reads a YAML accounts file and returns its addresses in file order.
func ReadAccounts(fpath string) ([]common.Address, error) {
	path, err := homedir.Expand(fpath)
	if err != nil {
		return nil, fmt.Errorf("expand accounts path: %w", err)
	}
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read account file: %w", err)
	}
	return ParseAccounts(bz)
}

// ParseAccounts decodes a YAML accounts list. Addresses must be valid and unique.
func ParseAccounts(bz []byte) ([]common.Address, error) {
	var cfg AccountsConfig
	if err := yaml.Unmarshal(bz, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	seen := make(map[common.Address]bool, len(cfg.Accounts))
	addrs := make([]common.Address, 0, len(cfg.Accounts))
	for i, acc := range cfg.Accounts {
		if !common.IsHexAddress(acc.Address) {
			return nil, fmt.Errorf("%w: account %d (%s): bad address %q", ErrInvalidConfig, i, acc.AccountName, acc.Address)
		}
		addr := common.HexToAddress(acc.Address)
		if seen[addr] {
			return nil, fmt.Errorf("%w: account %s listed twice", ErrInvalidConfig, addr.Hex())
		}
		seen[addr] = true
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
