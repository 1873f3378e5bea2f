package executor

import (
	"fmt"

	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	"github.com/socialharmony/chain/types"
)

func calcTokenOwnerKey(addr string, tokenId int64) []byte {
	return []byte(fmt.Sprintf("token-owner:%s:%018d", addr, tokenId))
}

// TokenIndexKVs converts one token receipt log into owner index
// mutations. Exported because game transactions carry token logs too
// (mint on participation, release on resolution).
func TokenIndexKVs(item *types.ReceiptLog) []*types.KeyValue {
	switch item.GetTy() {
	case gty.TyLogTokenMint, gty.TyLogTokenTransfer, gty.TyLogTokenFactory, gty.TyLogTokenRelease:
	default:
		return nil
	}
	var receipt gty.ReceiptGameToken
	if err := types.Decode(item.Log, &receipt); err != nil {
		glog.Error("token index log decode", "err", err)
		return nil
	}
	var kvs []*types.KeyValue
	if receipt.GetFrom() != "" {
		kvs = append(kvs, &types.KeyValue{Key: calcTokenOwnerKey(receipt.From, receipt.TokenId)})
	}
	if receipt.GetTo() != "" {
		record := &gty.TokenRecord{TokenId: receipt.TokenId}
		kvs = append(kvs, &types.KeyValue{
			Key:   calcTokenOwnerKey(receipt.To, receipt.TokenId),
			Value: types.Encode(record),
		})
	}
	return kvs
}

// TokenUnindexKVs reverses TokenIndexKVs for block rollback.
func TokenUnindexKVs(item *types.ReceiptLog) []*types.KeyValue {
	switch item.GetTy() {
	case gty.TyLogTokenMint, gty.TyLogTokenTransfer, gty.TyLogTokenFactory, gty.TyLogTokenRelease:
	default:
		return nil
	}
	var receipt gty.ReceiptGameToken
	if err := types.Decode(item.Log, &receipt); err != nil {
		glog.Error("token unindex log decode", "err", err)
		return nil
	}
	var kvs []*types.KeyValue
	if receipt.GetTo() != "" {
		kvs = append(kvs, &types.KeyValue{Key: calcTokenOwnerKey(receipt.To, receipt.TokenId)})
	}
	if receipt.GetFrom() != "" {
		record := &gty.TokenRecord{TokenId: receipt.TokenId}
		kvs = append(kvs, &types.KeyValue{
			Key:   calcTokenOwnerKey(receipt.From, receipt.TokenId),
			Value: types.Encode(record),
		})
	}
	return kvs
}
