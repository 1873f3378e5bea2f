package types

import (
	"github.com/golang/protobuf/proto"
)

// Game is the full state of one fundraising game.
type Game struct {
	GameId             string             `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Status             int32              `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	Owner              string             `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Beneficiary        string             `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	TargetParticipants int64              `protobuf:"varint,5,opt,name=targetParticipants,proto3" json:"targetParticipants,omitempty"`
	PricePerEntry      int64              `protobuf:"varint,6,opt,name=pricePerEntry,proto3" json:"pricePerEntry,omitempty"`
	RequiredEndorsers  int64              `protobuf:"varint,7,opt,name=requiredEndorsers,proto3" json:"requiredEndorsers,omitempty"`
	CreateTime         int64              `protobuf:"varint,8,opt,name=createTime,proto3" json:"createTime,omitempty"`
	PoolAddr           string             `protobuf:"bytes,9,opt,name=poolAddr,proto3" json:"poolAddr,omitempty"`
	Founder            string             `protobuf:"bytes,10,opt,name=founder,proto3" json:"founder,omitempty"`
	FoundingTokenId    int64              `protobuf:"varint,11,opt,name=foundingTokenId,proto3" json:"foundingTokenId,omitempty"`
	Participants       []*GameParticipant `protobuf:"bytes,12,rep,name=participants,proto3" json:"participants,omitempty"`
	Endorsers          []*GameEndorser    `protobuf:"bytes,13,rep,name=endorsers,proto3" json:"endorsers,omitempty"`
	Winners            []*GameWinner      `protobuf:"bytes,14,rep,name=winners,proto3" json:"winners,omitempty"`
	DaoPool            int64              `protobuf:"varint,15,opt,name=daoPool,proto3" json:"daoPool,omitempty"`
	WinnersPool        int64              `protobuf:"varint,16,opt,name=winnersPool,proto3" json:"winnersPool,omitempty"`
	EndorsePool        int64              `protobuf:"varint,17,opt,name=endorsePool,proto3" json:"endorsePool,omitempty"`
	TotalDeposits      int64              `protobuf:"varint,18,opt,name=totalDeposits,proto3" json:"totalDeposits,omitempty"`
	BeneficiaryDrawn   bool               `protobuf:"varint,19,opt,name=beneficiaryDrawn,proto3" json:"beneficiaryDrawn,omitempty"`
	CompleteTime       int64              `protobuf:"varint,20,opt,name=completeTime,proto3" json:"completeTime,omitempty"`
	CancelTime         int64              `protobuf:"varint,21,opt,name=cancelTime,proto3" json:"cancelTime,omitempty"`
	Index              int64              `protobuf:"varint,22,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex          int64              `protobuf:"varint,23,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

func (m *Game) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *Game) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *Game) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *Game) GetBeneficiary() string {
	if m != nil {
		return m.Beneficiary
	}
	return ""
}

func (m *Game) GetTargetParticipants() int64 {
	if m != nil {
		return m.TargetParticipants
	}
	return 0
}

func (m *Game) GetPricePerEntry() int64 {
	if m != nil {
		return m.PricePerEntry
	}
	return 0
}

func (m *Game) GetRequiredEndorsers() int64 {
	if m != nil {
		return m.RequiredEndorsers
	}
	return 0
}

func (m *Game) GetPoolAddr() string {
	if m != nil {
		return m.PoolAddr
	}
	return ""
}

func (m *Game) GetParticipants() []*GameParticipant {
	if m != nil {
		return m.Participants
	}
	return nil
}

func (m *Game) GetEndorsers() []*GameEndorser {
	if m != nil {
		return m.Endorsers
	}
	return nil
}

func (m *Game) GetWinners() []*GameWinner {
	if m != nil {
		return m.Winners
	}
	return nil
}

func (m *Game) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *Game) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// GameParticipant is one paid entry.
type GameParticipant struct {
	Addr      string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Amount    int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Blocktime int64  `protobuf:"varint,3,opt,name=blocktime,proto3" json:"blocktime,omitempty"`
	TokenId   int64  `protobuf:"varint,4,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
	Refunded  bool   `protobuf:"varint,5,opt,name=refunded,proto3" json:"refunded,omitempty"`
}

func (m *GameParticipant) Reset()         { *m = GameParticipant{} }
func (m *GameParticipant) String() string { return proto.CompactTextString(m) }
func (*GameParticipant) ProtoMessage()    {}

func (m *GameParticipant) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *GameParticipant) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// GameEndorser is one endorsement, backed by a receipt token held in
// escrow while the game runs.
type GameEndorser struct {
	Addr       string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	TokenId    int64  `protobuf:"varint,2,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
	FeeClaimed bool   `protobuf:"varint,3,opt,name=feeClaimed,proto3" json:"feeClaimed,omitempty"`
	Refunded   bool   `protobuf:"varint,4,opt,name=refunded,proto3" json:"refunded,omitempty"`
}

func (m *GameEndorser) Reset()         { *m = GameEndorser{} }
func (m *GameEndorser) String() string { return proto.CompactTextString(m) }
func (*GameEndorser) ProtoMessage()    {}

func (m *GameEndorser) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GameWinner is one drawn winner with its rank and prize.
type GameWinner struct {
	Addr    string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Rank    int32  `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Prize   int64  `protobuf:"varint,3,opt,name=prize,proto3" json:"prize,omitempty"`
	Claimed bool   `protobuf:"varint,4,opt,name=claimed,proto3" json:"claimed,omitempty"`
}

func (m *GameWinner) Reset()         { *m = GameWinner{} }
func (m *GameWinner) String() string { return proto.CompactTextString(m) }
func (*GameWinner) ProtoMessage()    {}

func (m *GameWinner) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *GameWinner) GetRank() int32 {
	if m != nil {
		return m.Rank
	}
	return 0
}

func (m *GameWinner) GetPrize() int64 {
	if m != nil {
		return m.Prize
	}
	return 0
}

// GameAction is the socialgame payload. Ty selects the field.
type GameAction struct {
	Ty                int32                  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Create            *GameCreate            `protobuf:"bytes,2,opt,name=create,proto3" json:"create,omitempty"`
	Participate       *GameParticipate       `protobuf:"bytes,3,opt,name=participate,proto3" json:"participate,omitempty"`
	Cancel            *GameCancel            `protobuf:"bytes,4,opt,name=cancel,proto3" json:"cancel,omitempty"`
	Refund            *GameRefund            `protobuf:"bytes,5,opt,name=refund,proto3" json:"refund,omitempty"`
	Withdraw          *GameWithdraw          `protobuf:"bytes,6,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
	ClaimPrize        *GameClaimPrize        `protobuf:"bytes,7,opt,name=claimPrize,proto3" json:"claimPrize,omitempty"`
	ClaimEndorsement  *GameClaimEndorsement  `protobuf:"bytes,8,opt,name=claimEndorsement,proto3" json:"claimEndorsement,omitempty"`
	RefundEndorsement *GameRefundEndorsement `protobuf:"bytes,9,opt,name=refundEndorsement,proto3" json:"refundEndorsement,omitempty"`
}

func (m *GameAction) Reset()         { *m = GameAction{} }
func (m *GameAction) String() string { return proto.CompactTextString(m) }
func (*GameAction) ProtoMessage()    {}

func (m *GameAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *GameAction) GetCreate() *GameCreate {
	if m != nil {
		return m.Create
	}
	return nil
}

func (m *GameAction) GetParticipate() *GameParticipate {
	if m != nil {
		return m.Participate
	}
	return nil
}

func (m *GameAction) GetCancel() *GameCancel {
	if m != nil {
		return m.Cancel
	}
	return nil
}

func (m *GameAction) GetRefund() *GameRefund {
	if m != nil {
		return m.Refund
	}
	return nil
}

func (m *GameAction) GetWithdraw() *GameWithdraw {
	if m != nil {
		return m.Withdraw
	}
	return nil
}

func (m *GameAction) GetClaimPrize() *GameClaimPrize {
	if m != nil {
		return m.ClaimPrize
	}
	return nil
}

func (m *GameAction) GetClaimEndorsement() *GameClaimEndorsement {
	if m != nil {
		return m.ClaimEndorsement
	}
	return nil
}

func (m *GameAction) GetRefundEndorsement() *GameRefundEndorsement {
	if m != nil {
		return m.RefundEndorsement
	}
	return nil
}

// GameCreate opens a new game.
type GameCreate struct {
	Beneficiary        string `protobuf:"bytes,1,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	TargetParticipants int64  `protobuf:"varint,2,opt,name=targetParticipants,proto3" json:"targetParticipants,omitempty"`
	PricePerEntry      int64  `protobuf:"varint,3,opt,name=pricePerEntry,proto3" json:"pricePerEntry,omitempty"`
	RequiredEndorsers  int64  `protobuf:"varint,4,opt,name=requiredEndorsers,proto3" json:"requiredEndorsers,omitempty"`
}

func (m *GameCreate) Reset()         { *m = GameCreate{} }
func (m *GameCreate) String() string { return proto.CompactTextString(m) }
func (*GameCreate) ProtoMessage()    {}

func (m *GameCreate) GetBeneficiary() string {
	if m != nil {
		return m.Beneficiary
	}
	return ""
}

func (m *GameCreate) GetTargetParticipants() int64 {
	if m != nil {
		return m.TargetParticipants
	}
	return 0
}

func (m *GameCreate) GetPricePerEntry() int64 {
	if m != nil {
		return m.PricePerEntry
	}
	return 0
}

func (m *GameCreate) GetRequiredEndorsers() int64 {
	if m != nil {
		return m.RequiredEndorsers
	}
	return 0
}

// GameParticipate buys one entry. Amount must equal the entry price.
type GameParticipate struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *GameParticipate) Reset()         { *m = GameParticipate{} }
func (m *GameParticipate) String() string { return proto.CompactTextString(m) }
func (*GameParticipate) ProtoMessage()    {}

func (m *GameParticipate) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *GameParticipate) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// GameCancel cancels an active game, owner only.
type GameCancel struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *GameCancel) Reset()         { *m = GameCancel{} }
func (m *GameCancel) String() string { return proto.CompactTextString(m) }
func (*GameCancel) ProtoMessage()    {}

func (m *GameCancel) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// GameRefund returns a participant deposit after cancellation.
type GameRefund struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *GameRefund) Reset()         { *m = GameRefund{} }
func (m *GameRefund) String() string { return proto.CompactTextString(m) }
func (*GameRefund) ProtoMessage()    {}

func (m *GameRefund) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// GameWithdraw pays the beneficiary pool out after completion.
type GameWithdraw struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *GameWithdraw) Reset()         { *m = GameWithdraw{} }
func (m *GameWithdraw) String() string { return proto.CompactTextString(m) }
func (*GameWithdraw) ProtoMessage()    {}

func (m *GameWithdraw) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// GameClaimPrize pays a winner prize out after completion.
type GameClaimPrize struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *GameClaimPrize) Reset()         { *m = GameClaimPrize{} }
func (m *GameClaimPrize) String() string { return proto.CompactTextString(m) }
func (*GameClaimPrize) ProtoMessage()    {}

func (m *GameClaimPrize) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// GameClaimEndorsement pays an endorser fee share out after completion.
type GameClaimEndorsement struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *GameClaimEndorsement) Reset()         { *m = GameClaimEndorsement{} }
func (m *GameClaimEndorsement) String() string { return proto.CompactTextString(m) }
func (*GameClaimEndorsement) ProtoMessage()    {}

func (m *GameClaimEndorsement) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// GameRefundEndorsement returns an endorsement receipt after
// cancellation.
type GameRefundEndorsement struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *GameRefundEndorsement) Reset()         { *m = GameRefundEndorsement{} }
func (m *GameRefundEndorsement) String() string { return proto.CompactTextString(m) }
func (*GameRefundEndorsement) ProtoMessage()    {}

func (m *GameRefundEndorsement) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// ReceiptSocialGame is the typed log every game action emits. The index
// fields drive the local db status and address indexes.
type ReceiptSocialGame struct {
	GameId          string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Status          int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus      int32  `protobuf:"varint,3,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	Addr            string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
	Index           int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
	StatusIndex     int64  `protobuf:"varint,6,opt,name=statusIndex,proto3" json:"statusIndex,omitempty"`
	PrevStatusIndex int64  `protobuf:"varint,7,opt,name=prevStatusIndex,proto3" json:"prevStatusIndex,omitempty"`
}

func (m *ReceiptSocialGame) Reset()         { *m = ReceiptSocialGame{} }
func (m *ReceiptSocialGame) String() string { return proto.CompactTextString(m) }
func (*ReceiptSocialGame) ProtoMessage()    {}

func (m *ReceiptSocialGame) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *ReceiptSocialGame) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReceiptSocialGame) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GameRecord is the local index value: a game id plus its order key.
type GameRecord struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Index  int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *GameRecord) Reset()         { *m = GameRecord{} }
func (m *GameRecord) String() string { return proto.CompactTextString(m) }
func (*GameRecord) ProtoMessage()    {}

func (m *GameRecord) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *GameRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReqGameInfo asks for one game.
type ReqGameInfo struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *ReqGameInfo) Reset()         { *m = ReqGameInfo{} }
func (m *ReqGameInfo) String() string { return proto.CompactTextString(m) }
func (*ReqGameInfo) ProtoMessage()    {}

func (m *ReqGameInfo) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

// ReplyGameInfo returns a game plus resolved beneficiary metadata when
// a registry is wired.
type ReplyGameInfo struct {
	Game           *Game  `protobuf:"bytes,1,opt,name=game,proto3" json:"game,omitempty"`
	BeneficiaryURI string `protobuf:"bytes,2,opt,name=beneficiaryURI,proto3" json:"beneficiaryURI,omitempty"`
}

func (m *ReplyGameInfo) Reset()         { *m = ReplyGameInfo{} }
func (m *ReplyGameInfo) String() string { return proto.CompactTextString(m) }
func (*ReplyGameInfo) ProtoMessage()    {}

func (m *ReplyGameInfo) GetGame() *Game {
	if m != nil {
		return m.Game
	}
	return nil
}

// ReqAddrGame addresses one participant inside one game.
type ReqAddrGame struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqAddrGame) Reset()         { *m = ReqAddrGame{} }
func (m *ReqAddrGame) String() string { return proto.CompactTextString(m) }
func (*ReqAddrGame) ProtoMessage()    {}

func (m *ReqAddrGame) GetGameId() string {
	if m != nil {
		return m.GameId
	}
	return ""
}

func (m *ReqAddrGame) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReplyDeposit reports an entry; all zero for unknown addresses. The
// escrow shares split the deposit 65/35, dao side taking the rounding
// remainder so the two always sum to the deposit.
type ReplyDeposit struct {
	Amount        int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Blocktime     int64 `protobuf:"varint,2,opt,name=blocktime,proto3" json:"blocktime,omitempty"`
	TokenId       int64 `protobuf:"varint,3,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
	Refunded      bool  `protobuf:"varint,4,opt,name=refunded,proto3" json:"refunded,omitempty"`
	DaoEscrow     int64 `protobuf:"varint,5,opt,name=daoEscrow,proto3" json:"daoEscrow,omitempty"`
	WinnersEscrow int64 `protobuf:"varint,6,opt,name=winnersEscrow,proto3" json:"winnersEscrow,omitempty"`
}

func (m *ReplyDeposit) Reset()         { *m = ReplyDeposit{} }
func (m *ReplyDeposit) String() string { return proto.CompactTextString(m) }
func (*ReplyDeposit) ProtoMessage()    {}

// ReplyWinner reports whether an address won and what it gets.
type ReplyWinner struct {
	Won     bool  `protobuf:"varint,1,opt,name=won,proto3" json:"won,omitempty"`
	Rank    int32 `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Prize   int64 `protobuf:"varint,3,opt,name=prize,proto3" json:"prize,omitempty"`
	Claimed bool  `protobuf:"varint,4,opt,name=claimed,proto3" json:"claimed,omitempty"`
}

func (m *ReplyWinner) Reset()         { *m = ReplyWinner{} }
func (m *ReplyWinner) String() string { return proto.CompactTextString(m) }
func (*ReplyWinner) ProtoMessage()    {}

func (m *ReplyWinner) GetWon() bool {
	if m != nil {
		return m.Won
	}
	return false
}

// ReqGameList pages games by status, optionally filtered by address.
type ReqGameList struct {
	Status    int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqGameList) Reset()         { *m = ReqGameList{} }
func (m *ReqGameList) String() string { return proto.CompactTextString(m) }
func (*ReqGameList) ProtoMessage()    {}

func (m *ReqGameList) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReqGameList) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReplyGameList is a page of games.
type ReplyGameList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyGameList) Reset()         { *m = ReplyGameList{} }
func (m *ReplyGameList) String() string { return proto.CompactTextString(m) }
func (*ReplyGameList) ProtoMessage()    {}

func (m *ReplyGameList) GetGames() []*Game {
	if m != nil {
		return m.Games
	}
	return nil
}
