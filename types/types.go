package types

import (
	"github.com/golang/protobuf/proto"
)

// Message is any protobuf encodable payload.
type Message proto.Message

// Receipt result types.
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// Coin is the number of base units in one coin.
const Coin int64 = 1e8

// MaxCoin is the cap enforced on any single amount.
const MaxCoin int64 = 1e8 * 1e8

// MaxTxsPerBlock bounds the per block tx index space, used to build
// totally ordered height*MaxTxsPerBlock+index keys.
const MaxTxsPerBlock int64 = 100000

// Account receipt log types.
const (
	TyLogErr             = 1
	TyLogFee             = 2
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

// CoinSymbol is the native token symbol.
const CoinSymbol = "shc"

// Encode marshals a protobuf message, panics on failure. Marshal of an
// in-memory message only fails on programming errors.
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode unmarshals protobuf data.
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

// MustDecode panics if data cannot be decoded. Used for values read back
// from the statedb, where corruption is not recoverable.
func MustDecode(data []byte, msg proto.Message) {
	if data == nil {
		return
	}
	err := Decode(data, msg)
	if err != nil {
		panic(err)
	}
}

// CheckAmount reports whether amount is inside the legal range.
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// CloneKVList deep copies a KeyValue list.
func CloneKVList(kvs []*KeyValue) []*KeyValue {
	list := make([]*KeyValue, len(kvs))
	for i, kv := range kvs {
		list[i] = &KeyValue{Key: kv.Key, Value: kv.Value}
	}
	return list
}
