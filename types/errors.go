package types

import "errors"

// Core errors shared by the executors. Dapps define their own errors in
// their types package.
var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow      = errors.New("ErrSymbolNameNotAllow")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrExecNotFound            = errors.New("ErrExecNotFound")
	ErrKeyNotAllow             = errors.New("ErrKeyNotAllow")
	ErrSign                    = errors.New("ErrSign")
	ErrReRunGenesis            = errors.New("ErrReRunGenesis")
)
