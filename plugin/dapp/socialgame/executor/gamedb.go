package executor

import (
	"bytes"
	"encoding/binary"

	"github.com/socialharmony/chain/account"
	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	dbm "github.com/socialharmony/chain/common/db"
	token "github.com/socialharmony/chain/plugin/dapp/gametoken/executor"
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
)

// Action is the per transaction execution context of the game driver.
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	cfg          *types.Config
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
}

// NewAction builds the context from the driver and transaction.
func NewAction(g *SocialGame, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: g.GetCoinsAccount(),
		db:           g.GetStateDB(),
		cfg:          g.GetConfig(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    g.GetBlockTime(),
		height:       g.GetHeight(),
		execaddr:     address.ExecAddress(string(tx.Execer)),
		index:        index,
	}
}

func (a *Action) heightIndex() int64 {
	return a.height*types.MaxTxsPerBlock + int64(a.index)
}

func readGame(db dbm.KV, gameId string) (*gt.Game, error) {
	value, err := db.Get(gt.Key(gameId))
	if err != nil {
		return nil, gt.ErrGameNotFound
	}
	var game gt.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (a *Action) saveGame(game *gt.Game) *types.KeyValue {
	kv := &types.KeyValue{Key: gt.Key(game.GameId), Value: types.Encode(game)}
	if err := a.db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

// transition moves the game to a new status and rotates the order keys
// used by the status index.
func (a *Action) transition(game *gt.Game, status int32) {
	game.Status = status
	game.PrevIndex = game.Index
	game.Index = a.heightIndex()
}

func (a *Action) gameLog(ty int32, game *gt.Game, prevStatus int32) *types.ReceiptLog {
	r := &gt.ReceiptSocialGame{
		GameId:          game.GameId,
		Status:          game.Status,
		PrevStatus:      prevStatus,
		Addr:            a.fromaddr,
		Index:           a.heightIndex(),
		StatusIndex:     game.Index,
		PrevStatusIndex: game.PrevIndex,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func mergeReceipt(dst, src *types.Receipt) {
	dst.KV = append(dst.KV, src.KV...)
	dst.Logs = append(dst.Logs, src.Logs...)
}

// Create opens a new game with the sender as owner and founder. The
// beneficiary defaults to the sender.
func (a *Action) Create(create *gt.GameCreate) (*types.Receipt, error) {
	if create.GetTargetParticipants() <= 0 || create.GetRequiredEndorsers() < 0 {
		return nil, gt.ErrInvalidGameParam
	}
	if !types.CheckAmount(create.GetPricePerEntry()) {
		return nil, gt.ErrInvalidGameParam
	}
	beneficiary := create.GetBeneficiary()
	if beneficiary == "" {
		beneficiary = a.fromaddr
	}
	if a.cfg.ConfSub(gt.SocialGameX).GBool("verifiedOnly", false) {
		registry := GetOrgRegistry()
		if registry != nil {
			verified, err := registry.IsVerified(beneficiary)
			if err != nil {
				return nil, err
			}
			if !verified {
				return nil, gt.ErrBeneficiaryNotVerified
			}
		}
	}
	gameId := common.ToHex(a.txhash)
	game := &gt.Game{
		GameId:             gameId,
		Status:             gt.GameStatusActive,
		Owner:              a.fromaddr,
		Beneficiary:        beneficiary,
		TargetParticipants: create.GetTargetParticipants(),
		PricePerEntry:      create.GetPricePerEntry(),
		RequiredEndorsers:  create.GetRequiredEndorsers(),
		CreateTime:         a.blocktime,
		PoolAddr:           address.ExecAddress(gt.SocialGameX + ":" + gameId),
		Founder:            a.fromaddr,
		Index:              a.heightIndex(),
	}
	gameKV := a.saveGame(game)
	poolKV := &types.KeyValue{Key: gt.PoolIndexKey(game.PoolAddr), Value: []byte(gameId)}
	if err := a.db.Set(poolKV.Key, poolKV.Value); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{gameKV, poolKV},
		Logs: []*types.ReceiptLog{a.gameLog(gt.TyLogGameCreate, game, -1)},
	}, nil
}

// Participate buys one entry at the fixed price, mints the participation
// receipt, and resolves the game when the target is hit.
func (a *Action) Participate(participate *gt.GameParticipate) (*types.Receipt, error) {
	game, err := readGame(a.db, participate.GetGameId())
	if err != nil {
		return nil, err
	}
	switch game.Status {
	case gt.GameStatusCompleted:
		return nil, gt.ErrGameOver
	case gt.GameStatusCancelled:
		return nil, gt.ErrGameCancelled
	}
	if int64(len(game.Endorsers)) < game.RequiredEndorsers {
		return nil, gt.ErrEndorsementPending
	}
	if participate.GetAmount() != game.PricePerEntry {
		return nil, gt.ErrWrongEntryAmount
	}
	for _, p := range game.Participants {
		if p.Addr == a.fromaddr {
			return nil, gt.ErrAlreadyJoined
		}
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	pay, err := a.coinsAccount.ExecTransfer(a.fromaddr, game.PoolAddr, a.execaddr, game.PricePerEntry)
	if err != nil {
		glog.Error("participate transfer", "gameId", game.GameId, "addr", a.fromaddr, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, pay)
	tokenId, mint, err := token.MintReceipt(a.db, game.GameId, a.fromaddr, a.height)
	if err != nil {
		return nil, err
	}
	mergeReceipt(receipt, mint)
	game.Participants = append(game.Participants, &gt.GameParticipant{
		Addr:      a.fromaddr,
		Amount:    game.PricePerEntry,
		Blocktime: a.blocktime,
		TokenId:   tokenId,
	})
	game.TotalDeposits += game.PricePerEntry
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogGameParticipate, game, game.Status))
	if int64(len(game.Participants)) == game.TargetParticipants {
		if err := a.complete(game, receipt); err != nil {
			return nil, err
		}
	}
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}

// complete settles a full game: draws the winners, splits the pool, and
// releases the escrowed receipts.
func (a *Action) complete(game *gt.Game, receipt *types.Receipt) error {
	total := game.TargetParticipants * game.PricePerEntry
	a.drawWinners(game, total)
	var winnersPool int64
	for _, w := range game.Winners {
		winnersPool += w.Prize
	}
	var endorsePool int64
	if len(game.Endorsers) > 0 {
		endorsePool = total * gt.EndorseFeePercent / 100
	}
	game.WinnersPool = winnersPool
	game.EndorsePool = endorsePool
	game.DaoPool = total - winnersPool - endorsePool
	game.CompleteTime = a.blocktime
	prevStatus := game.Status
	a.transition(game, gt.GameStatusCompleted)
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogGameComplete, game, prevStatus))
	if game.FoundingTokenId > 0 {
		release, err := token.ReleaseReceipt(a.db, game.FoundingTokenId, game.Founder)
		if err != nil {
			return err
		}
		mergeReceipt(receipt, release)
	}
	for _, endorser := range game.Endorsers {
		release, err := token.ReleaseReceipt(a.db, endorser.TokenId, endorser.Addr)
		if err != nil {
			return err
		}
		mergeReceipt(receipt, release)
	}
	return nil
}

// drawWinners picks up to three distinct participants from block
// entropy mixed with the closing transaction.
func (a *Action) drawWinners(game *gt.Game, total int64) {
	n := len(game.Participants)
	count := gt.WinnerCount
	if n < count {
		count = n
	}
	prizes := []int64{
		total * gt.FirstPrizePercent / 100,
		total * gt.SecondPrizePercent / 100,
		total * gt.ThirdPrizePercent / 100,
	}
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, a.blocktime)
	binary.Write(&buf, binary.BigEndian, a.height)
	buf.Write(a.txhash)
	buf.WriteString(a.fromaddr)
	seed := common.Sha256(buf.Bytes())
	taken := make(map[int]bool)
	for rank := 0; rank < count; rank++ {
		h := common.Sha256(append(seed, byte(rank+1)))
		idx := int(binary.BigEndian.Uint64(h[:8]) % uint64(n))
		for taken[idx] {
			idx = (idx + 1) % n
		}
		taken[idx] = true
		game.Winners = append(game.Winners, &gt.GameWinner{
			Addr:  game.Participants[idx].Addr,
			Rank:  int32(rank + 1),
			Prize: prizes[rank],
		})
	}
}

// Cancel aborts an active game, owner only. The founding receipt goes
// straight back to the founder; deposits and endorsement receipts are
// reclaimed one by one.
func (a *Action) Cancel(cancel *gt.GameCancel) (*types.Receipt, error) {
	game, err := readGame(a.db, cancel.GetGameId())
	if err != nil {
		return nil, err
	}
	if game.Owner != a.fromaddr {
		return nil, gt.ErrNotOwner
	}
	switch game.Status {
	case gt.GameStatusCompleted:
		return nil, gt.ErrGameOver
	case gt.GameStatusCancelled:
		return nil, gt.ErrGameCancelled
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	game.CancelTime = a.blocktime
	prevStatus := game.Status
	a.transition(game, gt.GameStatusCancelled)
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogGameCancel, game, prevStatus))
	if game.FoundingTokenId > 0 {
		release, err := token.ReleaseReceipt(a.db, game.FoundingTokenId, game.Founder)
		if err != nil {
			return nil, err
		}
		mergeReceipt(receipt, release)
	}
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}

// Refund returns one deposit of a cancelled game to its participant.
func (a *Action) Refund(refund *gt.GameRefund) (*types.Receipt, error) {
	game, err := readGame(a.db, refund.GetGameId())
	if err != nil {
		return nil, err
	}
	if game.Status != gt.GameStatusCancelled {
		return nil, gt.ErrGameNotCancelled
	}
	var entry *gt.GameParticipant
	for _, p := range game.Participants {
		if p.Addr == a.fromaddr {
			entry = p
			break
		}
	}
	if entry == nil {
		return nil, gt.ErrNotParticipant
	}
	if entry.Refunded {
		return nil, gt.ErrAlreadyRefunded
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	pay, err := a.coinsAccount.ExecTransfer(game.PoolAddr, a.fromaddr, a.execaddr, entry.Amount)
	if err != nil {
		glog.Error("refund transfer", "gameId", game.GameId, "addr", a.fromaddr, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, pay)
	entry.Refunded = true
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogGameRefund, game, game.Status))
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}

// Withdraw pays the beneficiary pool of a completed game out, once.
func (a *Action) Withdraw(withdraw *gt.GameWithdraw) (*types.Receipt, error) {
	game, err := readGame(a.db, withdraw.GetGameId())
	if err != nil {
		return nil, err
	}
	if game.Status != gt.GameStatusCompleted {
		return nil, gt.ErrGameNotComplete
	}
	if game.Beneficiary != a.fromaddr {
		return nil, gt.ErrNotBeneficiary
	}
	if game.BeneficiaryDrawn {
		return nil, gt.ErrAlreadyWithdrawn
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	pay, err := a.coinsAccount.ExecTransfer(game.PoolAddr, a.fromaddr, a.execaddr, game.DaoPool)
	if err != nil {
		glog.Error("withdraw transfer", "gameId", game.GameId, "addr", a.fromaddr, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, pay)
	game.BeneficiaryDrawn = true
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogGameWithdraw, game, game.Status))
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}

// ClaimPrize pays one winner prize of a completed game out, once.
func (a *Action) ClaimPrize(claim *gt.GameClaimPrize) (*types.Receipt, error) {
	game, err := readGame(a.db, claim.GetGameId())
	if err != nil {
		return nil, err
	}
	if game.Status != gt.GameStatusCompleted {
		return nil, gt.ErrGameNotComplete
	}
	var winner *gt.GameWinner
	for _, w := range game.Winners {
		if w.Addr == a.fromaddr {
			winner = w
			break
		}
	}
	if winner == nil {
		return nil, gt.ErrNotWinner
	}
	if winner.Claimed {
		return nil, gt.ErrPrizeAlreadyClaimed
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	pay, err := a.coinsAccount.ExecTransfer(game.PoolAddr, a.fromaddr, a.execaddr, winner.Prize)
	if err != nil {
		glog.Error("prize transfer", "gameId", game.GameId, "addr", a.fromaddr, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, pay)
	winner.Claimed = true
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogPrizeClaim, game, game.Status))
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}

// ClaimEndorsement pays one endorser its equal share of the endorsement
// pool, once. Integer division dust stays in the pool.
func (a *Action) ClaimEndorsement(claim *gt.GameClaimEndorsement) (*types.Receipt, error) {
	game, err := readGame(a.db, claim.GetGameId())
	if err != nil {
		return nil, err
	}
	if game.Status != gt.GameStatusCompleted {
		return nil, gt.ErrGameNotComplete
	}
	if len(game.Endorsers) == 0 {
		return nil, gt.ErrNoEndorsers
	}
	var endorser *gt.GameEndorser
	for _, e := range game.Endorsers {
		if e.Addr == a.fromaddr {
			endorser = e
			break
		}
	}
	if endorser == nil {
		return nil, gt.ErrNotEndorser
	}
	if endorser.FeeClaimed {
		return nil, gt.ErrFeeAlreadyClaimed
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	share := game.EndorsePool / int64(len(game.Endorsers))
	if share > 0 {
		pay, err := a.coinsAccount.ExecTransfer(game.PoolAddr, a.fromaddr, a.execaddr, share)
		if err != nil {
			glog.Error("endorsement fee transfer", "gameId", game.GameId, "addr", a.fromaddr, "err", err)
			return nil, err
		}
		mergeReceipt(receipt, pay)
	}
	endorser.FeeClaimed = true
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogEndorseFeeClaim, game, game.Status))
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}

// RefundEndorsement returns one escrowed endorsement receipt of a
// cancelled game to its endorser.
func (a *Action) RefundEndorsement(refund *gt.GameRefundEndorsement) (*types.Receipt, error) {
	game, err := readGame(a.db, refund.GetGameId())
	if err != nil {
		return nil, err
	}
	if game.Status != gt.GameStatusCancelled {
		return nil, gt.ErrGameNotCancelled
	}
	var endorser *gt.GameEndorser
	for _, e := range game.Endorsers {
		if e.Addr == a.fromaddr {
			endorser = e
			break
		}
	}
	if endorser == nil {
		return nil, gt.ErrNotEndorser
	}
	if endorser.Refunded {
		return nil, gt.ErrAlreadyRefunded
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	release, err := token.ReleaseReceipt(a.db, endorser.TokenId, a.fromaddr)
	if err != nil {
		return nil, err
	}
	mergeReceipt(receipt, release)
	endorser.Refunded = true
	receipt.Logs = append(receipt.Logs, a.gameLog(gt.TyLogEndorseRefund, game, game.Status))
	receipt.KV = append(receipt.KV, a.saveGame(game))
	return receipt, nil
}
