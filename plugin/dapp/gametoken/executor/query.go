package executor

import (
	"fmt"

	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	"github.com/socialharmony/chain/types"
)

// Query answers read only requests against state and local indexes.
func (g *GameToken) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case gty.FuncNameTokenInfo:
		var req gty.ReqTokenInfo
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		token, err := loadToken(g.GetStateDB(), req.GetTokenId())
		if err != nil {
			return nil, err
		}
		return &gty.ReplyTokenInfo{Token: token}, nil
	case gty.FuncNameTokensByOwner:
		var req gty.ReqTokensByOwner
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return g.tokensByOwner(&req)
	case gty.FuncNameGameOfToken:
		var req gty.ReqTokenInfo
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		token, err := loadToken(g.GetStateDB(), req.GetTokenId())
		if err != nil {
			return nil, err
		}
		return &gty.ReplyGameId{GameId: token.GetSourceGameId()}, nil
	}
	return nil, types.ErrQueryNotSupport
}

func (g *GameToken) tokensByOwner(req *gty.ReqTokensByOwner) (types.Message, error) {
	count := req.Count
	if count <= 0 || count > 100 {
		count = 20
	}
	prefix := []byte(fmt.Sprintf("token-owner:%s:", req.GetAddr()))
	var marker []byte
	if req.TokenId > 0 {
		marker = calcTokenOwnerKey(req.GetAddr(), req.TokenId)
	}
	values, err := g.GetLocalDB().List(prefix, marker, count, req.Direction)
	if err != nil {
		return nil, err
	}
	reply := &gty.ReplyTokenList{}
	for _, value := range values {
		var record gty.TokenRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		token, err := loadToken(g.GetStateDB(), record.TokenId)
		if err != nil {
			return nil, err
		}
		reply.Tokens = append(reply.Tokens, token)
	}
	return reply, nil
}
