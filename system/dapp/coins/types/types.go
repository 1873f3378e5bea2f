package types

import (
	"github.com/golang/protobuf/proto"
)

// CoinsX is the driver name.
const CoinsX = "coins"

// Coins action types.
const (
	CoinsActionTransfer       = 1
	CoinsActionGenesis        = 2
	CoinsActionWithdraw       = 3
	CoinsActionTransferToExec = 10
)

// CoinsAction is the coins payload. Ty selects which field is set.
type CoinsAction struct {
	Ty             int32              `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer       *CoinsTransfer     `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Genesis        *CoinsGenesis      `protobuf:"bytes,3,opt,name=genesis,proto3" json:"genesis,omitempty"`
	Withdraw       *CoinsWithdraw     `protobuf:"bytes,4,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
	TransferToExec *CoinsTransferExec `protobuf:"bytes,5,opt,name=transferToExec,proto3" json:"transferToExec,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

func (m *CoinsAction) GetGenesis() *CoinsGenesis {
	if m != nil {
		return m.Genesis
	}
	return nil
}

func (m *CoinsAction) GetWithdraw() *CoinsWithdraw {
	if m != nil {
		return m.Withdraw
	}
	return nil
}

func (m *CoinsAction) GetTransferToExec() *CoinsTransferExec {
	if m != nil {
		return m.TransferToExec
	}
	return nil
}

// CoinsTransfer moves coins between top level accounts.
type CoinsTransfer struct {
	Amount int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,2,opt,name=note,proto3" json:"note,omitempty"`
	To     string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}

func (m *CoinsTransfer) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinsTransfer) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

// CoinsGenesis seeds a balance in block zero.
type CoinsGenesis struct {
	Amount        int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	ReturnAddress string `protobuf:"bytes,2,opt,name=returnAddress,proto3" json:"returnAddress,omitempty"`
}

func (m *CoinsGenesis) Reset()         { *m = CoinsGenesis{} }
func (m *CoinsGenesis) String() string { return proto.CompactTextString(m) }
func (*CoinsGenesis) ProtoMessage()    {}

func (m *CoinsGenesis) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinsGenesis) GetReturnAddress() string {
	if m != nil {
		return m.ReturnAddress
	}
	return ""
}

// CoinsWithdraw pulls coins back out of a contract sub account.
type CoinsWithdraw struct {
	Amount   int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Note     string `protobuf:"bytes,2,opt,name=note,proto3" json:"note,omitempty"`
	ExecName string `protobuf:"bytes,3,opt,name=execName,proto3" json:"execName,omitempty"`
}

func (m *CoinsWithdraw) Reset()         { *m = CoinsWithdraw{} }
func (m *CoinsWithdraw) String() string { return proto.CompactTextString(m) }
func (*CoinsWithdraw) ProtoMessage()    {}

func (m *CoinsWithdraw) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinsWithdraw) GetExecName() string {
	if m != nil {
		return m.ExecName
	}
	return ""
}

// CoinsTransferExec moves coins into a contract sub account.
type CoinsTransferExec struct {
	Amount   int64  `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Note     string `protobuf:"bytes,2,opt,name=note,proto3" json:"note,omitempty"`
	ExecName string `protobuf:"bytes,3,opt,name=execName,proto3" json:"execName,omitempty"`
}

func (m *CoinsTransferExec) Reset()         { *m = CoinsTransferExec{} }
func (m *CoinsTransferExec) String() string { return proto.CompactTextString(m) }
func (*CoinsTransferExec) ProtoMessage()    {}

func (m *CoinsTransferExec) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *CoinsTransferExec) GetExecName() string {
	if m != nil {
		return m.ExecName
	}
	return ""
}
