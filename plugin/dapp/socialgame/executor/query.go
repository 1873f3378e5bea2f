package executor

import (
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
)

// Query answers read only requests against state and local indexes.
func (g *SocialGame) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case gt.FuncNameGameInfo:
		var req gt.ReqGameInfo
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return g.gameInfo(&req)
	case gt.FuncNameDeposits:
		var req gt.ReqAddrGame
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return g.deposits(&req)
	case gt.FuncNameDidWin:
		var req gt.ReqAddrGame
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return g.didWin(&req)
	case gt.FuncNameListGameByStatus:
		var req gt.ReqGameList
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return g.listGames(calcGameStatusPrefix(req.GetStatus()), statusMarker(&req), &req)
	case gt.FuncNameListGameByAddr:
		var req gt.ReqGameList
		if err := types.Decode(params, &req); err != nil {
			return nil, types.ErrInvalidParam
		}
		return g.listGames(calcGameAddrPrefix(req.GetAddr()), addrMarker(&req), &req)
	}
	return nil, types.ErrQueryNotSupport
}

func statusMarker(req *gt.ReqGameList) []byte {
	if req.Index <= 0 {
		return nil
	}
	return calcGameStatusKey(req.GetStatus(), req.Index)
}

func addrMarker(req *gt.ReqGameList) []byte {
	if req.Index <= 0 {
		return nil
	}
	return calcGameAddrKey(req.GetAddr(), req.Index)
}

func (g *SocialGame) gameInfo(req *gt.ReqGameInfo) (types.Message, error) {
	game, err := readGame(g.GetStateDB(), req.GetGameId())
	if err != nil {
		return nil, err
	}
	reply := &gt.ReplyGameInfo{Game: game}
	if registry := GetOrgRegistry(); registry != nil {
		uri, err := registry.ResolveMetadataURI(game.Beneficiary)
		if err == nil {
			reply.BeneficiaryURI = uri
		}
	}
	return reply, nil
}

// deposits reports an address entry; unknown addresses read as zeros.
func (g *SocialGame) deposits(req *gt.ReqAddrGame) (types.Message, error) {
	game, err := readGame(g.GetStateDB(), req.GetGameId())
	if err != nil {
		return nil, err
	}
	reply := &gt.ReplyDeposit{}
	for _, p := range game.Participants {
		if p.Addr == req.GetAddr() {
			reply.Amount = p.Amount
			reply.Blocktime = p.Blocktime
			reply.TokenId = p.TokenId
			reply.Refunded = p.Refunded
			reply.WinnersEscrow = p.Amount * gt.WinnersSharePercent / 100
			reply.DaoEscrow = p.Amount - reply.WinnersEscrow
			break
		}
	}
	return reply, nil
}

func (g *SocialGame) didWin(req *gt.ReqAddrGame) (types.Message, error) {
	game, err := readGame(g.GetStateDB(), req.GetGameId())
	if err != nil {
		return nil, err
	}
	reply := &gt.ReplyWinner{}
	for _, w := range game.Winners {
		if w.Addr == req.GetAddr() {
			reply.Won = true
			reply.Rank = w.Rank
			reply.Prize = w.Prize
			reply.Claimed = w.Claimed
			break
		}
	}
	return reply, nil
}

func (g *SocialGame) listGames(prefix, marker []byte, req *gt.ReqGameList) (types.Message, error) {
	count := req.Count
	if count <= 0 || count > 100 {
		count = 20
	}
	values, err := g.GetLocalDB().List(prefix, marker, count, req.Direction)
	if err != nil {
		return nil, err
	}
	reply := &gt.ReplyGameList{}
	for _, value := range values {
		var record gt.GameRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		game, err := readGame(g.GetStateDB(), record.GameId)
		if err != nil {
			return nil, err
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}
