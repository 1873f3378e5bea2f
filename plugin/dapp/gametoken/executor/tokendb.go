package executor

import (
	"encoding/binary"
	"math"

	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	dbm "github.com/socialharmony/chain/common/db"
	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	sgt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
)

// Action is the per transaction execution context of the token ledger.
type Action struct {
	db        dbm.KV
	cfg       *types.Config
	txhash    []byte
	fromaddr  string
	blocktime int64
	height    int64
	execaddr  string
	index     int
}

// NewAction builds the context from the driver and transaction.
func NewAction(g *GameToken, tx *types.Transaction, index int) *Action {
	return &Action{
		db:        g.GetStateDB(),
		cfg:       g.GetConfig(),
		txhash:    tx.Hash(),
		fromaddr:  tx.From(),
		blocktime: g.GetBlockTime(),
		height:    g.GetHeight(),
		execaddr:  address.ExecAddress(string(tx.Execer)),
		index:     index,
	}
}

func loadToken(db dbm.KV, tokenId int64) (*gty.Token, error) {
	value, err := db.Get(gty.TokenKey(tokenId))
	if err != nil {
		return nil, gty.ErrTokenNotFound
	}
	var token gty.Token
	if err := types.Decode(value, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func saveToken(db dbm.KV, token *gty.Token) *types.KeyValue {
	kv := &types.KeyValue{Key: gty.TokenKey(token.TokenId), Value: types.Encode(token)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

func loadGame(db dbm.KV, gameId string) (*sgt.Game, error) {
	value, err := db.Get(sgt.Key(gameId))
	if err != nil {
		return nil, sgt.ErrGameNotFound
	}
	var game sgt.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func saveGame(db dbm.KV, game *sgt.Game) *types.KeyValue {
	kv := &types.KeyValue{Key: sgt.Key(game.GameId), Value: types.Encode(game)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

func tokenLog(ty int32, token *gty.Token, from string) *types.ReceiptLog {
	r := &gty.ReceiptGameToken{
		TokenId:      token.TokenId,
		From:         from,
		To:           token.Owner,
		SourceGameId: token.SourceGameId,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// MintReceipt creates the participation receipt for (gameId, owner).
// Minting is idempotent: a second call returns the existing token with
// an empty receipt.
func MintReceipt(db dbm.KV, gameId, owner string, height int64) (int64, *types.Receipt, error) {
	mintKey := gty.MintKey(gameId, owner)
	if value, err := db.Get(mintKey); err == nil {
		var record gty.TokenRecord
		if err := types.Decode(value, &record); err != nil {
			return 0, nil, err
		}
		return record.TokenId, &types.Receipt{Ty: types.ExecOk}, nil
	}
	tokenId, counterKV, err := nextTokenId(db)
	if err != nil {
		return 0, nil, err
	}
	token := &gty.Token{
		TokenId:      tokenId,
		Owner:        owner,
		SourceGameId: gameId,
		CreateHeight: height,
	}
	tokenKV := saveToken(db, token)
	mintKV := &types.KeyValue{Key: mintKey, Value: types.Encode(&gty.TokenRecord{TokenId: tokenId})}
	if err := db.Set(mintKV.Key, mintKV.Value); err != nil {
		return 0, nil, err
	}
	receipt := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{counterKV, tokenKV, mintKV},
		Logs: []*types.ReceiptLog{tokenLog(gty.TyLogTokenMint, token, "")},
	}
	return tokenId, receipt, nil
}

// ReleaseReceipt hands an escrowed receipt back to its holder and
// clears the endorsement binding.
func ReleaseReceipt(db dbm.KV, tokenId int64, to string) (*types.Receipt, error) {
	token, err := loadToken(db, tokenId)
	if err != nil {
		return nil, err
	}
	from := token.Owner
	token.Owner = to
	token.EndorsedGameId = ""
	kv := saveToken(db, token)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{tokenLog(gty.TyLogTokenRelease, token, from)},
	}, nil
}

func nextTokenId(db dbm.KV) (int64, *types.KeyValue, error) {
	var next int64 = 1
	if value, err := db.Get(gty.CounterKey()); err == nil {
		var record gty.TokenRecord
		if err := types.Decode(value, &record); err != nil {
			return 0, nil, err
		}
		next = record.TokenId + 1
	}
	kv := &types.KeyValue{Key: gty.CounterKey(), Value: types.Encode(&gty.TokenRecord{TokenId: next})}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return 0, nil, err
	}
	return next, kv, nil
}

// Transfer handles the one token action. Depending on the destination
// it is a plain move, a game founding, or an endorsement.
func (a *Action) Transfer(transfer *gty.TokenTransfer) (*types.Receipt, error) {
	token, err := loadToken(a.db, transfer.GetTokenId())
	if err != nil {
		return nil, err
	}
	if token.Owner != a.fromaddr {
		return nil, gty.ErrNotTokenOwner
	}
	// receipts stay locked while the game that minted them runs
	if token.SourceGameId != "" {
		game, err := loadGame(a.db, token.SourceGameId)
		if err == nil && game.Status == sgt.GameStatusActive {
			return nil, gty.ErrGameStillActive
		}
	}
	if transfer.GetTo() == a.execaddr {
		return a.foundGame(token, transfer.GetPayload())
	}
	if value, err := a.db.Get(sgt.PoolIndexKey(transfer.GetTo())); err == nil {
		return a.endorse(token, string(value))
	}
	from := token.Owner
	token.Owner = transfer.GetTo()
	kv := saveToken(a.db, token)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{tokenLog(gty.TyLogTokenTransfer, token, from)},
	}, nil
}

// foundGame consumes the receipt as founding stake and instantiates a
// new game owned by the sender.
func (a *Action) foundGame(token *gty.Token, payload []byte) (*types.Receipt, error) {
	target, price, endorsers, err := a.parseFactoryPayload(payload)
	if err != nil {
		return nil, err
	}
	gameId := common.ToHex(a.txhash)
	poolAddr := address.ExecAddress(sgt.SocialGameX + ":" + gameId)
	game := &sgt.Game{
		GameId:             gameId,
		Status:             sgt.GameStatusActive,
		Owner:              a.fromaddr,
		Beneficiary:        a.fromaddr,
		TargetParticipants: target,
		PricePerEntry:      price,
		RequiredEndorsers:  endorsers,
		CreateTime:         a.blocktime,
		PoolAddr:           poolAddr,
		Founder:            a.fromaddr,
		FoundingTokenId:    token.TokenId,
		Index:              a.height*types.MaxTxsPerBlock + int64(a.index),
	}
	from := token.Owner
	token.Owner = a.execaddr
	tokenKV := saveToken(a.db, token)
	gameKV := saveGame(a.db, game)
	poolKV := &types.KeyValue{Key: sgt.PoolIndexKey(poolAddr), Value: []byte(gameId)}
	if err := a.db.Set(poolKV.Key, poolKV.Value); err != nil {
		return nil, err
	}
	gameLog := &sgt.ReceiptSocialGame{
		GameId:      gameId,
		Status:      sgt.GameStatusActive,
		PrevStatus:  -1,
		Addr:        a.fromaddr,
		Index:       game.Index,
		StatusIndex: game.Index,
	}
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{tokenKV, gameKV, poolKV},
		Logs: []*types.ReceiptLog{
			tokenLog(gty.TyLogTokenFactory, token, from),
			{Ty: sgt.TyLogGameCreate, Log: types.Encode(gameLog)},
		},
	}, nil
}

// endorse binds the receipt to an active game until the game resolves.
func (a *Action) endorse(token *gty.Token, gameId string) (*types.Receipt, error) {
	game, err := loadGame(a.db, gameId)
	if err != nil {
		return nil, err
	}
	switch game.Status {
	case sgt.GameStatusCompleted:
		return nil, sgt.ErrGameOver
	case sgt.GameStatusCancelled:
		return nil, sgt.ErrGameCancelled
	}
	if game.RequiredEndorsers == 0 {
		return nil, sgt.ErrEndorseNotRequired
	}
	for _, endorser := range game.Endorsers {
		if endorser.Addr == a.fromaddr {
			return nil, sgt.ErrAlreadyEndorsed
		}
	}
	game.Endorsers = append(game.Endorsers, &sgt.GameEndorser{
		Addr:    a.fromaddr,
		TokenId: token.TokenId,
	})
	from := token.Owner
	token.Owner = game.PoolAddr
	token.EndorsedGameId = gameId
	tokenKV := saveToken(a.db, token)
	gameKV := saveGame(a.db, game)
	endorseLog := &sgt.ReceiptSocialGame{
		GameId:      gameId,
		Status:      game.Status,
		PrevStatus:  game.Status,
		Addr:        a.fromaddr,
		Index:       a.height*types.MaxTxsPerBlock + int64(a.index),
		StatusIndex: game.Index,
	}
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{tokenKV, gameKV},
		Logs: []*types.ReceiptLog{
			tokenLog(gty.TyLogTokenTransfer, token, from),
			{Ty: sgt.TyLogGameEndorse, Log: types.Encode(endorseLog)},
		},
	}, nil
}

// parseFactoryPayload reads the three 32 byte words of a founding
// payload, falling back to configured defaults on empty input.
func (a *Action) parseFactoryPayload(payload []byte) (target, price, endorsers int64, err error) {
	sub := a.cfg.ConfSub(gty.GameTokenX)
	if len(payload) == 0 {
		target = sub.GInt("defaultTarget", gty.DefaultTargetParticipants)
		price = sub.GInt("defaultPrice", types.Coin)
		endorsers = sub.GInt("defaultEndorsers", gty.DefaultRequiredEndorsers)
		return target, price, endorsers, nil
	}
	if len(payload) != gty.FactoryPayloadLen {
		return 0, 0, 0, gty.ErrBadFactoryPayload
	}
	words := make([]int64, 3)
	for i := 0; i < 3; i++ {
		word := payload[i*32 : (i+1)*32]
		for _, b := range word[:24] {
			if b != 0 {
				return 0, 0, 0, gty.ErrTokenValueOverflow
			}
		}
		v := binary.BigEndian.Uint64(word[24:32])
		if v > math.MaxInt64 {
			return 0, 0, 0, gty.ErrTokenValueOverflow
		}
		words[i] = int64(v)
	}
	target, price, endorsers = words[0], words[1], words[2]
	if target <= 0 || price <= 0 || endorsers < 0 {
		return 0, 0, 0, gty.ErrBadFactoryPayload
	}
	return target, price, endorsers, nil
}
