package codec_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/b-harvest/txdriver/codec"
)

func TestToWei(t *testing.T) {
	for _, tc := range []struct {
		amount string
		wei    string
		ok     bool
	}{
		{"1.33", "1330000000000000000", true},
		{"1", "1000000000000000000", true},
		{" 0.000000000000000001 ", "1", true},
		{"0", "0", true},
		{"0.0000000000000000001", "", false},
		{"-1", "", false},
		{"abc", "", false},
		{"1/2", "", false},
		{"0x10", "", false},
		{"1e18", "", false},
		{".5", "", false},
		{"", "", false},
	} {
		wei, err := codec.ToWei(tc.amount)
		if !tc.ok {
			require.Error(t, err, tc.amount)
			continue
		}
		require.NoError(t, err, tc.amount)
		require.Equal(t, tc.wei, wei.String(), tc.amount)
	}
}

func TestFromWei(t *testing.T) {
	wei, _ := new(big.Int).SetString("1330000000000000000", 10)
	require.Equal(t, "1.33", codec.FromWei(wei))
	require.Equal(t, "2", codec.FromWei(big.NewInt(2e18)))
	require.Equal(t, "0.000000000000000001", codec.FromWei(big.NewInt(1)))
	require.Equal(t, "0", codec.FromWei(big.NewInt(0)))
	require.Equal(t, "0", codec.FromWei(nil))
}

func TestTransferArgsJSON(t *testing.T) {
	from := common.HexToAddress("0x1000000000000000000000000000000000000001")
	to := common.HexToAddress("0x2000000000000000000000000000000000000002")

	bz, err := json.Marshal(codec.NewTransferArgs(from, to, big.NewInt(256)))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"from": "0x1000000000000000000000000000000000000001",
		"to": "0x2000000000000000000000000000000000000002",
		"value": "0x100"
	}`, string(bz))

	bz, err = json.Marshal(codec.NewTransferArgs(from, to, big.NewInt(1)).WithGas(21000, big.NewInt(1e9)))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"from": "0x1000000000000000000000000000000000000001",
		"to": "0x2000000000000000000000000000000000000002",
		"value": "0x1",
		"gas": "0x5208",
		"gasPrice": "0x3b9aca00"
	}`, string(bz))
}
