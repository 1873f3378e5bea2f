package types

// SocialGameX is the driver name.
const SocialGameX = "socialgame"

// Game lifecycle states. A game is created Active, moves to Completed
// when the participant target is hit, or to Cancelled by its owner.
// Both end states are terminal.
const (
	GameStatusActive    = int32(1)
	GameStatusCompleted = int32(2)
	GameStatusCancelled = int32(3)
)

// Action types of GameAction.
const (
	GameActionCreate            = 1
	GameActionParticipate       = 2
	GameActionCancel            = 3
	GameActionRefund            = 4
	GameActionWithdraw          = 5
	GameActionClaimPrize        = 6
	GameActionClaimEndorsement  = 7
	GameActionRefundEndorsement = 8
)

// Receipt log types.
const (
	TyLogGameCreate        = 720
	TyLogGameParticipate   = 721
	TyLogGameComplete      = 722
	TyLogGameCancel        = 723
	TyLogGameRefund        = 724
	TyLogGameWithdraw      = 725
	TyLogPrizeClaim        = 726
	TyLogGameEndorse       = 727
	TyLogEndorseFeeClaim   = 728
	TyLogEndorseRefund     = 729
)

// Escrow split. Every pool is funded from targetParticipants times
// pricePerEntry: the winners take 35 points (20/10/5 by rank), the
// endorsers take 5 points when any endorsed, the beneficiary the rest.
const (
	DaoSharePercent     = int64(65)
	WinnersSharePercent = int64(35)
	FirstPrizePercent   = int64(20)
	SecondPrizePercent  = int64(10)
	ThirdPrizePercent   = int64(5)
	EndorseFeePercent   = int64(5)
	WinnerCount         = 3
)

// Query function names.
const (
	FuncNameGameInfo         = "GetGameInfo"
	FuncNameDeposits         = "GetDeposits"
	FuncNameDidWin           = "DidWin"
	FuncNameListGameByStatus = "ListGameByStatus"
	FuncNameListGameByAddr   = "ListGameByAddr"
)

// Key returns the statedb key of a game. It lives in the types package
// because the gametoken driver writes games too (factory creation and
// endorsements).
func Key(gameId string) (key []byte) {
	key = append(key, []byte("mavl-"+SocialGameX+"-")...)
	key = append(key, []byte(gameId)...)
	return key
}

// PoolIndexKey maps a game pool address back to its game id, letting
// the token ledger recognize receipt transfers aimed at a game.
func PoolIndexKey(poolAddr string) (key []byte) {
	key = append(key, []byte("mavl-"+SocialGameX+"-pool-")...)
	key = append(key, []byte(poolAddr)...)
	return key
}
