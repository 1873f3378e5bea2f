package executor_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialharmony/chain/account"
	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	"github.com/socialharmony/chain/common/crypto"
	dbm "github.com/socialharmony/chain/common/db"
	"github.com/socialharmony/chain/executor"
	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	_ "github.com/socialharmony/chain/plugin/dapp/socialgame/executor"
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
	"github.com/socialharmony/chain/util"
)

type testEnv struct {
	t        *testing.T
	exec     *executor.Executor
	acc      *account.DB
	gameExec string
	height   int64
}

func newTestEnv(t *testing.T) *testEnv {
	statedb, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	localdb, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	cfg := &types.Config{
		Title: "test",
		Exec: &types.Exec{
			Sub: map[string]map[string]interface{}{
				gty.GameTokenX: {
					"defaultTarget":    int64(2),
					"defaultPrice":     types.Coin,
					"defaultEndorsers": int64(0),
				},
			},
		},
	}
	e := executor.New(cfg, statedb, dbm.NewKVDB(localdb))
	acc := account.NewCoinsAccount()
	acc.SetDB(statedb)
	return &testEnv{
		t:        t,
		exec:     e,
		acc:      acc,
		gameExec: address.ExecAddress(gt.SocialGameX),
		height:   1,
	}
}

func (env *testEnv) fund(addr string, amount int64) {
	_, err := env.acc.GenesisInit(addr, amount)
	require.NoError(env.t, err)
	_, err = env.acc.TransferToExec(addr, env.gameExec, amount)
	require.NoError(env.t, err)
}

func (env *testEnv) apply(tx *types.Transaction) (*types.Receipt, error) {
	env.height++
	env.exec.SetEnv(env.height, env.height*5+1000000, 1)
	return env.exec.Apply(tx, 0)
}

func (env *testEnv) applyOK(tx *types.Transaction) *types.Receipt {
	receipt, err := env.apply(tx)
	require.NoError(env.t, err)
	return receipt
}

func (env *testEnv) applyErr(tx *types.Transaction, want error) {
	_, err := env.apply(tx)
	require.Equal(env.t, want, err)
}

// runGame creates a game and plays it to completion so every player
// ends up holding a receipt token.
func (env *testEnv) runGame(founder crypto.PrivKey, players []crypto.PrivKey, price int64) string {
	create := util.CreateTx(founder, gt.SocialGameX, types.Encode(&gt.GameAction{
		Ty: gt.GameActionCreate,
		Create: &gt.GameCreate{
			TargetParticipants: int64(len(players)),
			PricePerEntry:      price,
		},
	}))
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())
	for _, p := range players {
		env.applyOK(util.CreateTx(p, gt.SocialGameX, types.Encode(&gt.GameAction{
			Ty:          gt.GameActionParticipate,
			Participate: &gt.GameParticipate{GameId: gameId, Amount: price},
		})))
	}
	return gameId
}

func (env *testEnv) tokenOf(gameId, addr string) int64 {
	msg, err := env.exec.Query(gt.SocialGameX, gt.FuncNameDeposits, types.Encode(&gt.ReqAddrGame{GameId: gameId, Addr: addr}))
	require.NoError(env.t, err)
	tokenId := msg.(*gt.ReplyDeposit).TokenId
	require.NotZero(env.t, tokenId)
	return tokenId
}

func (env *testEnv) queryToken(tokenId int64) *gty.Token {
	msg, err := env.exec.Query(gty.GameTokenX, gty.FuncNameTokenInfo, types.Encode(&gty.ReqTokenInfo{TokenId: tokenId}))
	require.NoError(env.t, err)
	return msg.(*gty.ReplyTokenInfo).GetToken()
}

func (env *testEnv) queryGame(gameId string) *gt.Game {
	msg, err := env.exec.Query(gt.SocialGameX, gt.FuncNameGameInfo, types.Encode(&gt.ReqGameInfo{GameId: gameId}))
	require.NoError(env.t, err)
	return msg.(*gt.ReplyGameInfo).GetGame()
}

func transferTx(priv crypto.PrivKey, tokenId int64, to string, payload []byte) *types.Transaction {
	action := &gty.TokenAction{
		Ty:       gty.TokenActionTransfer,
		Transfer: &gty.TokenTransfer{TokenId: tokenId, To: to, Payload: payload},
	}
	return util.CreateTx(priv, gty.GameTokenX, types.Encode(action))
}

func factoryWord(v int64) []byte {
	word := make([]byte, 32)
	binary.BigEndian.PutUint64(word[24:], uint64(v))
	return word
}

func factoryPayload(target, price, endorsers int64) []byte {
	payload := factoryWord(target)
	payload = append(payload, factoryWord(price)...)
	payload = append(payload, factoryWord(endorsers)...)
	return payload
}

func TestFactoryFounding(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	cPriv, cAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)
	env.fund(cAddr, 10*types.Coin)

	game1 := env.runGame(founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	aToken := env.tokenOf(game1, aAddr)

	ledgerAddr := address.ExecAddress(gty.GameTokenX)
	factory := transferTx(aPriv, aToken, ledgerAddr, nil)
	env.applyOK(factory)
	gameId := common.ToHex(factory.Hash())

	game := env.queryGame(gameId)
	assert.Equal(t, aAddr, game.Founder)
	assert.Equal(t, aAddr, game.Beneficiary)
	assert.Equal(t, int64(2), game.TargetParticipants)
	assert.Equal(t, types.Coin, game.PricePerEntry)
	assert.Equal(t, int64(0), game.RequiredEndorsers)
	assert.Equal(t, aToken, game.FoundingTokenId)
	assert.Equal(t, ledgerAddr, env.queryToken(aToken).Owner)

	// escrowed founding stake cannot be moved by its old owner
	env.applyErr(transferTx(aPriv, aToken, bAddr, nil), gty.ErrNotTokenOwner)

	for _, p := range []crypto.PrivKey{bPriv, cPriv} {
		env.applyOK(util.CreateTx(p, gt.SocialGameX, types.Encode(&gt.GameAction{
			Ty:          gt.GameActionParticipate,
			Participate: &gt.GameParticipate{GameId: gameId, Amount: types.Coin},
		})))
	}
	game = env.queryGame(gameId)
	require.Equal(t, gt.GameStatusCompleted, game.Status)
	assert.Equal(t, aAddr, env.queryToken(aToken).Owner)
}

func TestFactoryPayload(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)

	game1 := env.runGame(founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	aToken := env.tokenOf(game1, aAddr)
	ledgerAddr := address.ExecAddress(gty.GameTokenX)

	env.applyErr(transferTx(aPriv, aToken, ledgerAddr, make([]byte, 50)), gty.ErrBadFactoryPayload)
	env.applyErr(transferTx(aPriv, aToken, ledgerAddr, factoryPayload(0, types.Coin, 0)), gty.ErrBadFactoryPayload)

	overflow := factoryPayload(3, types.Coin, 0)
	overflow[2] = 0xff
	env.applyErr(transferTx(aPriv, aToken, ledgerAddr, overflow), gty.ErrTokenValueOverflow)

	factory := transferTx(aPriv, aToken, ledgerAddr, factoryPayload(3, 2*types.Coin, 1))
	env.applyOK(factory)
	game := env.queryGame(common.ToHex(factory.Hash()))
	assert.Equal(t, int64(3), game.TargetParticipants)
	assert.Equal(t, 2*types.Coin, game.PricePerEntry)
	assert.Equal(t, int64(1), game.RequiredEndorsers)
}

func TestTokenLockedWhileGameActive(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	_, bAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)

	create := util.CreateTx(founderPriv, gt.SocialGameX, types.Encode(&gt.GameAction{
		Ty:     gt.GameActionCreate,
		Create: &gt.GameCreate{TargetParticipants: 2, PricePerEntry: types.Coin},
	}))
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())
	env.applyOK(util.CreateTx(aPriv, gt.SocialGameX, types.Encode(&gt.GameAction{
		Ty:          gt.GameActionParticipate,
		Participate: &gt.GameParticipate{GameId: gameId, Amount: types.Coin},
	})))

	aToken := env.tokenOf(gameId, aAddr)
	env.applyErr(transferTx(aPriv, aToken, bAddr, nil), gty.ErrGameStillActive)
}

func TestPlainTransfer(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	_, cAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)

	game1 := env.runGame(founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	aToken := env.tokenOf(game1, aAddr)

	env.applyErr(transferTx(bPriv, aToken, cAddr, nil), gty.ErrNotTokenOwner)
	env.applyErr(transferTx(aPriv, 999, cAddr, nil), gty.ErrTokenNotFound)

	env.applyOK(transferTx(aPriv, aToken, cAddr, nil))
	assert.Equal(t, cAddr, env.queryToken(aToken).Owner)

	// owner index followed the move
	msg, err := env.exec.Query(gty.GameTokenX, gty.FuncNameTokensByOwner, types.Encode(&gty.ReqTokensByOwner{Addr: cAddr}))
	require.NoError(t, err)
	require.Len(t, msg.(*gty.ReplyTokenList).GetTokens(), 1)
	msg, err = env.exec.Query(gty.GameTokenX, gty.FuncNameTokensByOwner, types.Encode(&gty.ReqTokensByOwner{Addr: aAddr}))
	require.NoError(t, err)
	assert.Len(t, msg.(*gty.ReplyTokenList).GetTokens(), 0)
}

func TestDoubleEndorseRejected(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)

	game1 := env.runGame(founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	game2 := env.runGame(founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	tok1 := env.tokenOf(game1, aAddr)
	tok2 := env.tokenOf(game2, aAddr)

	create := util.CreateTx(founderPriv, gt.SocialGameX, types.Encode(&gt.GameAction{
		Ty:     gt.GameActionCreate,
		Create: &gt.GameCreate{TargetParticipants: 2, PricePerEntry: types.Coin, RequiredEndorsers: 2},
	}))
	env.applyOK(create)
	game := env.queryGame(common.ToHex(create.Hash()))

	env.applyOK(transferTx(aPriv, tok1, game.PoolAddr, nil))
	env.applyErr(transferTx(aPriv, tok2, game.PoolAddr, nil), gt.ErrAlreadyEndorsed)
}
