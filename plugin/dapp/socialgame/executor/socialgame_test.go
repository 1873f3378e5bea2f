package executor

import (
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
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
	"github.com/socialharmony/chain/util"
)

type testEnv struct {
	t        *testing.T
	exec     *executor.Executor
	statedb  dbm.DB
	acc      *account.DB
	execaddr string
	height   int64
}

func newTestEnv(t *testing.T) *testEnv {
	statedb, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	localdb, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	cfg := &types.Config{Title: "test"}
	e := executor.New(cfg, statedb, dbm.NewKVDB(localdb))
	acc := account.NewCoinsAccount()
	acc.SetDB(statedb)
	return &testEnv{
		t:        t,
		exec:     e,
		statedb:  statedb,
		acc:      acc,
		execaddr: address.ExecAddress(gt.SocialGameX),
		height:   1,
	}
}

func (env *testEnv) fund(addr string, amount int64) {
	_, err := env.acc.GenesisInit(addr, amount)
	require.NoError(env.t, err)
	_, err = env.acc.TransferToExec(addr, env.execaddr, amount)
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
	require.NotNil(env.t, receipt)
	return receipt
}

func (env *testEnv) applyErr(tx *types.Transaction, want error) {
	_, err := env.apply(tx)
	require.Equal(env.t, want, err)
}

func (env *testEnv) balance(addr string) int64 {
	return env.acc.LoadExecAccount(addr, env.execaddr).Balance
}

func gameTx(priv crypto.PrivKey, action *gt.GameAction) *types.Transaction {
	return util.CreateTx(priv, gt.SocialGameX, types.Encode(action))
}

func createTx(priv crypto.PrivKey, target, price, endorsers int64) *types.Transaction {
	return gameTx(priv, &gt.GameAction{
		Ty: gt.GameActionCreate,
		Create: &gt.GameCreate{
			TargetParticipants: target,
			PricePerEntry:      price,
			RequiredEndorsers:  endorsers,
		},
	})
}

func participateTx(priv crypto.PrivKey, gameId string, amount int64) *types.Transaction {
	return gameTx(priv, &gt.GameAction{
		Ty:          gt.GameActionParticipate,
		Participate: &gt.GameParticipate{GameId: gameId, Amount: amount},
	})
}

func (env *testEnv) queryGame(gameId string) *gt.Game {
	msg, err := env.exec.Query(gt.SocialGameX, gt.FuncNameGameInfo, types.Encode(&gt.ReqGameInfo{GameId: gameId}))
	require.NoError(env.t, err)
	return msg.(*gt.ReplyGameInfo).GetGame()
}

func (env *testEnv) queryWinner(gameId, addr string) *gt.ReplyWinner {
	msg, err := env.exec.Query(gt.SocialGameX, gt.FuncNameDidWin, types.Encode(&gt.ReqAddrGame{GameId: gameId, Addr: addr}))
	require.NoError(env.t, err)
	return msg.(*gt.ReplyWinner)
}

func TestGameLifecycle(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, founder := util.Genaddress()
	var privs []crypto.PrivKey
	var addrs []string
	for i := 0; i < 6; i++ {
		priv, addr := util.Genaddress()
		privs = append(privs, priv)
		addrs = append(addrs, addr)
		env.fund(addr, 10*types.Coin)
	}

	create := createTx(founderPriv, 5, types.Coin, 0)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())

	env.applyErr(participateTx(privs[0], gameId, types.Coin/2), gt.ErrWrongEntryAmount)
	env.applyErr(participateTx(privs[0], "0xdeadbeef", types.Coin), gt.ErrGameNotFound)

	for i := 0; i < 4; i++ {
		env.applyOK(participateTx(privs[i], gameId, types.Coin))
	}
	env.applyErr(participateTx(privs[0], gameId, types.Coin), gt.ErrAlreadyJoined)

	game := env.queryGame(gameId)
	assert.Equal(t, gt.GameStatusActive, game.Status)
	assert.Len(t, game.Participants, 4)
	assert.Equal(t, 4*types.Coin, game.TotalDeposits)

	env.applyOK(participateTx(privs[4], gameId, types.Coin))
	game = env.queryGame(gameId)
	assert.Equal(t, gt.GameStatusCompleted, game.Status)
	assert.Len(t, game.Winners, 3)
	assert.Equal(t, 5*types.Coin, env.balance(game.PoolAddr))

	total := 5 * types.Coin
	assert.Equal(t, total*gt.FirstPrizePercent/100, game.Winners[0].Prize)
	assert.Equal(t, total*gt.SecondPrizePercent/100, game.Winners[1].Prize)
	assert.Equal(t, total*gt.ThirdPrizePercent/100, game.Winners[2].Prize)
	assert.Equal(t, int64(0), game.EndorsePool)
	assert.Equal(t, total-game.WinnersPool, game.DaoPool)

	env.applyErr(participateTx(privs[5], gameId, types.Coin), gt.ErrGameOver)
	env.applyErr(gameTx(founderPriv, &gt.GameAction{
		Ty:     gt.GameActionCancel,
		Cancel: &gt.GameCancel{GameId: gameId},
	}), gt.ErrGameOver)
	env.applyErr(gameTx(privs[0], &gt.GameAction{
		Ty:     gt.GameActionRefund,
		Refund: &gt.GameRefund{GameId: gameId},
	}), gt.ErrGameNotCancelled)

	withdraw := &gt.GameAction{Ty: gt.GameActionWithdraw, Withdraw: &gt.GameWithdraw{GameId: gameId}}
	env.applyErr(gameTx(privs[0], withdraw), gt.ErrNotBeneficiary)
	env.applyOK(gameTx(founderPriv, withdraw))
	assert.Equal(t, game.DaoPool, env.balance(founder))
	env.applyErr(gameTx(founderPriv, withdraw), gt.ErrAlreadyWithdrawn)

	claim := &gt.GameAction{Ty: gt.GameActionClaimPrize, ClaimPrize: &gt.GameClaimPrize{GameId: gameId}}
	var firstWinner crypto.PrivKey
	for i := 0; i < 5; i++ {
		won := env.queryWinner(gameId, addrs[i])
		if !won.Won {
			env.applyErr(gameTx(privs[i], claim), gt.ErrNotWinner)
			continue
		}
		if firstWinner == nil {
			firstWinner = privs[i]
		}
		before := env.balance(addrs[i])
		env.applyOK(gameTx(privs[i], claim))
		assert.Equal(t, before+won.Prize, env.balance(addrs[i]))
	}
	env.applyErr(gameTx(firstWinner, claim), gt.ErrPrizeAlreadyClaimed)
	env.applyErr(gameTx(privs[0], &gt.GameAction{
		Ty:               gt.GameActionClaimEndorsement,
		ClaimEndorsement: &gt.GameClaimEndorsement{GameId: gameId},
	}), gt.ErrNoEndorsers)

	// pool is empty once the dao share and every prize are out
	assert.Equal(t, int64(0), env.balance(game.PoolAddr))

	// each participant got a receipt token for this game
	msg, err := env.exec.Query(gametokenOwnerQuery(addrs[0]))
	require.NoError(t, err)
	tokens := msg.(*gty.ReplyTokenList).GetTokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, gameId, tokens[0].SourceGameId)
	assert.Equal(t, addrs[0], tokens[0].Owner)
}

func gametokenOwnerQuery(addr string) (string, string, []byte) {
	return gty.GameTokenX, gty.FuncNameTokensByOwner, types.Encode(&gty.ReqTokensByOwner{Addr: addr})
}

func TestGameCancelRefund(t *testing.T) {
	env := newTestEnv(t)
	ownerPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	cPriv, _ := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)

	create := createTx(ownerPriv, 3, 2*types.Coin, 0)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())

	env.applyOK(participateTx(aPriv, gameId, 2*types.Coin))
	env.applyOK(participateTx(bPriv, gameId, 2*types.Coin))

	refund := &gt.GameAction{Ty: gt.GameActionRefund, Refund: &gt.GameRefund{GameId: gameId}}
	env.applyErr(gameTx(aPriv, refund), gt.ErrGameNotCancelled)

	cancel := &gt.GameAction{Ty: gt.GameActionCancel, Cancel: &gt.GameCancel{GameId: gameId}}
	env.applyErr(gameTx(bPriv, cancel), gt.ErrNotOwner)
	env.applyOK(gameTx(ownerPriv, cancel))
	env.applyErr(gameTx(ownerPriv, cancel), gt.ErrGameCancelled)
	env.applyErr(participateTx(cPriv, gameId, 2*types.Coin), gt.ErrGameCancelled)

	game := env.queryGame(gameId)
	assert.Equal(t, gt.GameStatusCancelled, game.Status)

	before := env.balance(aAddr)
	env.applyOK(gameTx(aPriv, refund))
	assert.Equal(t, before+2*types.Coin, env.balance(aAddr))
	env.applyErr(gameTx(aPriv, refund), gt.ErrAlreadyRefunded)
	env.applyErr(gameTx(cPriv, refund), gt.ErrNotParticipant)

	assert.Equal(t, 2*types.Coin, env.balance(game.PoolAddr))
	env.applyOK(gameTx(bPriv, refund))
	assert.Equal(t, int64(0), env.balance(game.PoolAddr))
}

// bootstrapGame runs a small game to completion so its participants
// hold receipt tokens.
func bootstrapGame(env *testEnv, founder crypto.PrivKey, players []crypto.PrivKey, price int64) string {
	create := createTx(founder, int64(len(players)), price, 0)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())
	for _, p := range players {
		env.applyOK(participateTx(p, gameId, price))
	}
	return gameId
}

func (env *testEnv) queryDeposit(gameId, addr string) *gt.ReplyDeposit {
	msg, err := env.exec.Query(gt.SocialGameX, gt.FuncNameDeposits, types.Encode(&gt.ReqAddrGame{GameId: gameId, Addr: addr}))
	require.NoError(env.t, err)
	return msg.(*gt.ReplyDeposit)
}

func (env *testEnv) tokenOf(gameId, addr string) int64 {
	tokenId := env.queryDeposit(gameId, addr).TokenId
	require.NotZero(env.t, tokenId)
	return tokenId
}

func TestDepositEscrowShares(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)

	create := createTx(founderPriv, 2, types.Coin, 0)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())
	env.applyOK(participateTx(aPriv, gameId, types.Coin))

	dep := env.queryDeposit(gameId, aAddr)
	assert.Equal(t, types.Coin, dep.Amount)
	assert.Equal(t, types.Coin*gt.WinnersSharePercent/100, dep.WinnersEscrow)
	assert.Equal(t, types.Coin*gt.DaoSharePercent/100, dep.DaoEscrow)
	assert.Equal(t, dep.Amount, dep.DaoEscrow+dep.WinnersEscrow)

	// non-participants read as zeros
	_, stranger := util.Genaddress()
	empty := env.queryDeposit(gameId, stranger)
	assert.Zero(t, empty.Amount)
	assert.Zero(t, empty.DaoEscrow)
	assert.Zero(t, empty.WinnersEscrow)
}

func (env *testEnv) queryToken(tokenId int64) *gty.Token {
	msg, err := env.exec.Query(gty.GameTokenX, gty.FuncNameTokenInfo, types.Encode(&gty.ReqTokenInfo{TokenId: tokenId}))
	require.NoError(env.t, err)
	return msg.(*gty.ReplyTokenInfo).GetToken()
}

func endorseTx(priv crypto.PrivKey, tokenId int64, poolAddr string) *types.Transaction {
	action := &gty.TokenAction{
		Ty:       gty.TokenActionTransfer,
		Transfer: &gty.TokenTransfer{TokenId: tokenId, To: poolAddr},
	}
	return util.CreateTx(priv, gty.GameTokenX, types.Encode(action))
}

func TestEndorsementFlow(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, founder := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)

	game1 := bootstrapGame(env, founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	aToken := env.tokenOf(game1, aAddr)

	create := createTx(founderPriv, 2, types.Coin, 1)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())
	game := env.queryGame(gameId)

	env.applyErr(participateTx(aPriv, gameId, types.Coin), gt.ErrEndorsementPending)

	// games without an endorsement requirement reject endorsements
	plain := createTx(founderPriv, 2, types.Coin, 0)
	env.applyOK(plain)
	plainGame := env.queryGame(common.ToHex(plain.Hash()))
	env.applyErr(endorseTx(aPriv, aToken, plainGame.PoolAddr), gt.ErrEndorseNotRequired)

	env.applyOK(endorseTx(aPriv, aToken, game.PoolAddr))
	assert.Equal(t, game.PoolAddr, env.queryToken(aToken).Owner)
	assert.Equal(t, gameId, env.queryToken(aToken).EndorsedGameId)
	game = env.queryGame(gameId)
	require.Len(t, game.Endorsers, 1)

	env.applyOK(participateTx(aPriv, gameId, types.Coin))
	env.applyOK(participateTx(bPriv, gameId, types.Coin))
	game = env.queryGame(gameId)
	require.Equal(t, gt.GameStatusCompleted, game.Status)

	total := 2 * types.Coin
	assert.Equal(t, total*gt.EndorseFeePercent/100, game.EndorsePool)
	assert.Equal(t, total-game.WinnersPool-game.EndorsePool, game.DaoPool)

	// endorsement escrow released on completion
	assert.Equal(t, aAddr, env.queryToken(aToken).Owner)
	assert.Equal(t, "", env.queryToken(aToken).EndorsedGameId)

	claim := &gt.GameAction{
		Ty:               gt.GameActionClaimEndorsement,
		ClaimEndorsement: &gt.GameClaimEndorsement{GameId: gameId},
	}
	before := env.balance(aAddr)
	env.applyOK(gameTx(aPriv, claim))
	assert.Equal(t, before+game.EndorsePool, env.balance(aAddr))
	env.applyErr(gameTx(aPriv, claim), gt.ErrFeeAlreadyClaimed)
	env.applyErr(gameTx(bPriv, claim), gt.ErrNotEndorser)

	before = env.balance(founder)
	env.applyOK(gameTx(founderPriv, &gt.GameAction{
		Ty:       gt.GameActionWithdraw,
		Withdraw: &gt.GameWithdraw{GameId: gameId},
	}))
	assert.Equal(t, before+game.DaoPool, env.balance(founder))
}

func TestEndorsementRefundOnCancel(t *testing.T) {
	env := newTestEnv(t)
	founderPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	bPriv, bAddr := util.Genaddress()
	env.fund(aAddr, 10*types.Coin)
	env.fund(bAddr, 10*types.Coin)

	game1 := bootstrapGame(env, founderPriv, []crypto.PrivKey{aPriv, bPriv}, types.Coin)
	bToken := env.tokenOf(game1, bAddr)

	create := createTx(founderPriv, 3, types.Coin, 1)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())
	game := env.queryGame(gameId)

	env.applyOK(endorseTx(bPriv, bToken, game.PoolAddr))

	refund := &gt.GameAction{
		Ty:                gt.GameActionRefundEndorsement,
		RefundEndorsement: &gt.GameRefundEndorsement{GameId: gameId},
	}
	env.applyErr(gameTx(bPriv, refund), gt.ErrGameNotCancelled)

	env.applyOK(gameTx(founderPriv, &gt.GameAction{
		Ty:     gt.GameActionCancel,
		Cancel: &gt.GameCancel{GameId: gameId},
	}))

	// endorsing a cancelled game bounces
	aToken := env.tokenOf(game1, aAddr)
	env.applyErr(endorseTx(aPriv, aToken, game.PoolAddr), gt.ErrGameCancelled)

	env.applyErr(gameTx(aPriv, refund), gt.ErrNotEndorser)
	env.applyOK(gameTx(bPriv, refund))
	assert.Equal(t, bAddr, env.queryToken(bToken).Owner)
	env.applyErr(gameTx(bPriv, refund), gt.ErrAlreadyRefunded)
}

func TestListGameByStatus(t *testing.T) {
	env := newTestEnv(t)
	ownerPriv, _ := util.Genaddress()

	create1 := createTx(ownerPriv, 5, types.Coin, 0)
	env.applyOK(create1)
	create2 := createTx(ownerPriv, 5, types.Coin, 0)
	env.applyOK(create2)

	msg, err := env.exec.Query(gt.SocialGameX, gt.FuncNameListGameByStatus,
		types.Encode(&gt.ReqGameList{Status: gt.GameStatusActive}))
	require.NoError(t, err)
	assert.Len(t, msg.(*gt.ReplyGameList).GetGames(), 2)

	env.applyOK(gameTx(ownerPriv, &gt.GameAction{
		Ty:     gt.GameActionCancel,
		Cancel: &gt.GameCancel{GameId: common.ToHex(create1.Hash())},
	}))

	msg, err = env.exec.Query(gt.SocialGameX, gt.FuncNameListGameByStatus,
		types.Encode(&gt.ReqGameList{Status: gt.GameStatusActive}))
	require.NoError(t, err)
	require.Len(t, msg.(*gt.ReplyGameList).GetGames(), 1)
	assert.Equal(t, common.ToHex(create2.Hash()), msg.(*gt.ReplyGameList).GetGames()[0].GameId)

	msg, err = env.exec.Query(gt.SocialGameX, gt.FuncNameListGameByStatus,
		types.Encode(&gt.ReqGameList{Status: gt.GameStatusCancelled}))
	require.NoError(t, err)
	assert.Len(t, msg.(*gt.ReplyGameList).GetGames(), 1)
}

func TestParticipateIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	ownerPriv, _ := util.Genaddress()
	aPriv, aAddr := util.Genaddress()
	env.fund(aAddr, types.Coin)

	create := createTx(ownerPriv, 2, 2*types.Coin, 0)
	env.applyOK(create)
	gameId := common.ToHex(create.Hash())

	// not enough balance for the entry: nothing may change
	_, err := env.apply(participateTx(aPriv, gameId, 2*types.Coin))
	require.Error(t, err)
	assert.Equal(t, types.Coin, env.balance(aAddr))
	game := env.queryGame(gameId)
	assert.Len(t, game.Participants, 0)
	assert.Equal(t, int64(0), game.TotalDeposits)
}
