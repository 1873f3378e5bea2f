package types

import "fmt"

// GameTokenX is the driver name.
const GameTokenX = "gametoken"

// Action types.
const (
	TokenActionTransfer = 1
)

// Receipt log types.
const (
	TyLogTokenMint     = 730
	TyLogTokenTransfer = 731
	TyLogTokenFactory  = 732
	TyLogTokenRelease  = 733
)

// FactoryPayloadLen is the byte length of a custom factory payload:
// three 32 byte big endian words (participant target, entry price,
// required endorsers).
const FactoryPayloadLen = 96

// Factory defaults used when the payload is empty, overridable under
// [exec.sub.gametoken].
const (
	DefaultTargetParticipants = int64(100)
	DefaultRequiredEndorsers  = int64(20)
)

// Query function names.
const (
	FuncNameTokenInfo     = "GetTokenInfo"
	FuncNameTokensByOwner = "GetTokensByOwner"
	FuncNameGameOfToken   = "GetGameOfToken"
)

// TokenKey is the statedb key of a token.
func TokenKey(tokenId int64) (key []byte) {
	key = append(key, []byte("mavl-"+GameTokenX+"-t-")...)
	key = append(key, []byte(fmt.Sprintf("%018d", tokenId))...)
	return key
}

// MintKey makes receipt minting idempotent per game and identity.
func MintKey(gameId, addr string) (key []byte) {
	key = append(key, []byte("mavl-"+GameTokenX+"-g-")...)
	key = append(key, []byte(gameId+":"+addr)...)
	return key
}

// CounterKey holds the next token id.
func CounterKey() []byte {
	return []byte("mavl-" + GameTokenX + "-count")
}
