package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml"

	"github.com/b-harvest/txdriver/codec"
)

const (
	DefaultConfigPath     = "~/.txdriver/config.toml"
	DefaultRPCAddress     = "http://localhost:8545"
	DefaultRPCTimeout     = int64(5)
	DefaultTransferAmount = "1.33"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config defines all necessary configuration parameters.
type Config struct {
	RPC    RPCConfig    `toml:"rpc"`
	Custom CustomConfig `toml:"custom"`
}

// RPCConfig contains the node's JSON-RPC endpoint.
type RPCConfig struct {
	Address string `toml:"address"`
	// Timeout bounds every call, in seconds.
	Timeout int64 `toml:"timeout"`
}

// CustomConfig contains the run parameters.
type CustomConfig struct {
	// TransferAmount is the value of each transfer, in ether.
	TransferAmount string `toml:"transfer_amount"`
	Passphrase     string `toml:"passphrase"`
	// UnlockDuration is in seconds; 0 leaves it to the node.
	UnlockDuration int64 `toml:"unlock_duration"`
	SkipMiner      bool  `toml:"skip_miner"`
	MinerThreads   int64 `toml:"miner_threads"`
	// RateLimit caps submissions per second; 0 leaves them unpaced.
	RateLimit int64 `toml:"rate_limit"`
	GasLimit  int64 `toml:"gas_limit"`
	// GasPrice is in wei; 0 leaves it to the node.
	GasPrice     int64  `toml:"gas_price"`
	ShowBalance  bool   `toml:"show_balance"`
	AccountsFile string `toml:"accounts_file"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		RPC: RPCConfig{
			Address: DefaultRPCAddress,
			Timeout: DefaultRPCTimeout,
		},
		Custom: CustomConfig{
			TransferAmount: DefaultTransferAmount,
		},
	}
}

// Read reads the config file at fpath. A missing file at DefaultConfigPath
// yields DefaultConfig.
func Read(fpath string) (Config, error) {
	path, err := homedir.Expand(fpath)
	if err != nil {
		return Config{}, fmt.Errorf("expand config path: %w", err)
	}

	bz, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && fpath == DefaultConfigPath {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bz)
}

// Parse decodes a TOML config, filling unset fields with defaults, and validates it.
func Parse(bz []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(bz, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) fillDefaults() {
	if cfg.RPC.Address == "" {
		cfg.RPC.Address = DefaultRPCAddress
	}
	if cfg.RPC.Timeout == 0 {
		cfg.RPC.Timeout = DefaultRPCTimeout
	}
	if cfg.Custom.TransferAmount == "" {
		cfg.Custom.TransferAmount = DefaultTransferAmount
	}
}

// Validate checks every field is usable.
func (cfg Config) Validate() error {
	switch {
	case cfg.RPC.Address == "":
		return fmt.Errorf("%w: empty rpc address", ErrInvalidConfig)
	case cfg.RPC.Timeout < 0:
		return fmt.Errorf("%w: negative rpc timeout", ErrInvalidConfig)
	case cfg.Custom.UnlockDuration < 0:
		return fmt.Errorf("%w: negative unlock duration", ErrInvalidConfig)
	case cfg.Custom.MinerThreads < 0:
		return fmt.Errorf("%w: negative miner threads", ErrInvalidConfig)
	case cfg.Custom.RateLimit < 0:
		return fmt.Errorf("%w: negative rate limit", ErrInvalidConfig)
	case cfg.Custom.GasLimit < 0 || cfg.Custom.GasPrice < 0:
		return fmt.Errorf("%w: negative gas settings", ErrInvalidConfig)
	}

	wei, err := codec.ToWei(cfg.Custom.TransferAmount)
	if err != nil {
		return fmt.Errorf("%w: transfer amount: %s", ErrInvalidConfig, err)
	}
	if wei.Sign() == 0 {
		return fmt.Errorf("%w: transfer amount must be positive", ErrInvalidConfig)
	}
	return nil
}

// TransferWei returns the transfer amount in wei.
func (c CustomConfig) TransferWei() (*big.Int, error) {
	return codec.ToWei(c.TransferAmount)
}

// Unlock returns the unlock duration.
func (c CustomConfig) Unlock() time.Duration {
	return time.Duration(c.UnlockDuration) * time.Second
}

// GasPriceWei returns the configured gas price, or nil when the node should choose.
func (c CustomConfig) GasPriceWei() *big.Int {
	if c.GasPrice <= 0 {
		return nil
	}
	return big.NewInt(c.GasPrice)
}
