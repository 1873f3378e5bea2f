package types

import (
	"github.com/golang/protobuf/proto"
)

// Token is one participation receipt. Owner is the holding address,
// which may be the ledger contract (founding escrow) or a game pool
// (endorsement escrow).
type Token struct {
	TokenId        int64  `protobuf:"varint,1,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
	Owner          string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	SourceGameId   string `protobuf:"bytes,3,opt,name=sourceGameId,proto3" json:"sourceGameId,omitempty"`
	EndorsedGameId string `protobuf:"bytes,4,opt,name=endorsedGameId,proto3" json:"endorsedGameId,omitempty"`
	CreateHeight   int64  `protobuf:"varint,5,opt,name=createHeight,proto3" json:"createHeight,omitempty"`
}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

func (m *Token) GetTokenId() int64 {
	if m != nil {
		return m.TokenId
	}
	return 0
}

func (m *Token) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *Token) GetSourceGameId() string {
	if m != nil {
		return m.SourceGameId
	}
	return ""
}

func (m *Token) GetEndorsedGameId() string {
	if m != nil {
		return m.EndorsedGameId
	}
	return ""
}

// TokenAction is the gametoken payload.
type TokenAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *TokenTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
}

func (m *TokenAction) Reset()         { *m = TokenAction{} }
func (m *TokenAction) String() string { return proto.CompactTextString(m) }
func (*TokenAction) ProtoMessage()    {}

func (m *TokenAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *TokenAction) GetTransfer() *TokenTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

// TokenTransfer moves a receipt. Sending it to the ledger contract
// founds a new game (Payload carries the parameters), sending it to a
// game pool endorses that game, anything else is a plain ownership
// move.
type TokenTransfer struct {
	TokenId int64  `protobuf:"varint,1,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
	To      string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Payload []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *TokenTransfer) Reset()         { *m = TokenTransfer{} }
func (m *TokenTransfer) String() string { return proto.CompactTextString(m) }
func (*TokenTransfer) ProtoMessage()    {}

func (m *TokenTransfer) GetTokenId() int64 {
	if m != nil {
		return m.TokenId
	}
	return 0
}

func (m *TokenTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

func (m *TokenTransfer) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

// ReceiptGameToken is the typed log of every token mutation.
type ReceiptGameToken struct {
	TokenId      int64  `protobuf:"varint,1,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
	From         string `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To           string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	SourceGameId string `protobuf:"bytes,4,opt,name=sourceGameId,proto3" json:"sourceGameId,omitempty"`
}

func (m *ReceiptGameToken) Reset()         { *m = ReceiptGameToken{} }
func (m *ReceiptGameToken) String() string { return proto.CompactTextString(m) }
func (*ReceiptGameToken) ProtoMessage()    {}

func (m *ReceiptGameToken) GetTokenId() int64 {
	if m != nil {
		return m.TokenId
	}
	return 0
}

func (m *ReceiptGameToken) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

func (m *ReceiptGameToken) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

// ReqTokenInfo asks for one token.
type ReqTokenInfo struct {
	TokenId int64 `protobuf:"varint,1,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
}

func (m *ReqTokenInfo) Reset()         { *m = ReqTokenInfo{} }
func (m *ReqTokenInfo) String() string { return proto.CompactTextString(m) }
func (*ReqTokenInfo) ProtoMessage()    {}

func (m *ReqTokenInfo) GetTokenId() int64 {
	if m != nil {
		return m.TokenId
	}
	return 0
}

// ReplyTokenInfo returns a token.
type ReplyTokenInfo struct {
	Token *Token `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *ReplyTokenInfo) Reset()         { *m = ReplyTokenInfo{} }
func (m *ReplyTokenInfo) String() string { return proto.CompactTextString(m) }
func (*ReplyTokenInfo) ProtoMessage()    {}

func (m *ReplyTokenInfo) GetToken() *Token {
	if m != nil {
		return m.Token
	}
	return nil
}

// ReqTokensByOwner pages an owner's receipts.
type ReqTokensByOwner struct {
	Addr      string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	TokenId   int64  `protobuf:"varint,4,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
}

func (m *ReqTokensByOwner) Reset()         { *m = ReqTokensByOwner{} }
func (m *ReqTokensByOwner) String() string { return proto.CompactTextString(m) }
func (*ReqTokensByOwner) ProtoMessage()    {}

func (m *ReqTokensByOwner) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReplyTokenList is a page of tokens.
type ReplyTokenList struct {
	Tokens []*Token `protobuf:"bytes,1,rep,name=tokens,proto3" json:"tokens,omitempty"`
}

func (m *ReplyTokenList) Reset()         { *m = ReplyTokenList{} }
func (m *ReplyTokenList) String() string { return proto.CompactTextString(m) }
func (*ReplyTokenList) ProtoMessage()    {}

func (m *ReplyTokenList) GetTokens() []*Token {
	if m != nil {
		return m.Tokens
	}
	return nil
}

// ReplyGameId resolves a token to its source game.
type ReplyGameId struct {
	GameId string `protobuf:"bytes,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *ReplyGameId) Reset()         { *m = ReplyGameId{} }
func (m *ReplyGameId) String() string { return proto.CompactTextString(m) }
func (*ReplyGameId) ProtoMessage()    {}

// TokenRecord is the local index value.
type TokenRecord struct {
	TokenId int64 `protobuf:"varint,1,opt,name=tokenId,proto3" json:"tokenId,omitempty"`
}

func (m *TokenRecord) Reset()         { *m = TokenRecord{} }
func (m *TokenRecord) String() string { return proto.CompactTextString(m) }
func (*TokenRecord) ProtoMessage()    {}

func (m *TokenRecord) GetTokenId() int64 {
	if m != nil {
		return m.TokenId
	}
	return 0
}
