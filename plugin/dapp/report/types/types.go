package types

import (
	"github.com/golang/protobuf/proto"
)

// Bucket is the aggregate of one weekly period. Keys lists every report
// key that appeared during the period.
type Bucket struct {
	Sum   int64    `protobuf:"varint,1,opt,name=sum,proto3" json:"sum,omitempty"`
	Count int64    `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Keys  []string `protobuf:"bytes,3,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *Bucket) Reset()         { *m = Bucket{} }
func (m *Bucket) String() string { return proto.CompactTextString(m) }
func (*Bucket) ProtoMessage()    {}

func (m *Bucket) GetSum() int64 {
	if m != nil {
		return m.Sum
	}
	return 0
}

func (m *Bucket) GetCount() int64 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *Bucket) GetKeys() []string {
	if m != nil {
		return m.Keys
	}
	return nil
}

// Entry is one running aggregate, per key or per key and category.
// Categories lists second level categories in first seen order and is
// empty on category leaves.
type Entry struct {
	Sum        int64    `protobuf:"varint,1,opt,name=sum,proto3" json:"sum,omitempty"`
	Count      int64    `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Categories []string `protobuf:"bytes,3,rep,name=categories,proto3" json:"categories,omitempty"`
}

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString(m) }
func (*Entry) ProtoMessage()    {}

func (m *Entry) GetSum() int64 {
	if m != nil {
		return m.Sum
	}
	return 0
}

func (m *Entry) GetCount() int64 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *Entry) GetCategories() []string {
	if m != nil {
		return m.Categories
	}
	return nil
}

// ReportAction is the report payload. Ty selects the field.
type ReportAction struct {
	Ty        int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Update    *ReportUpdate `protobuf:"bytes,2,opt,name=update,proto3" json:"update,omitempty"`
	UpdateKey *ReportUpdate `protobuf:"bytes,3,opt,name=updateKey,proto3" json:"updateKey,omitempty"`
	Grant     *ReportGrant  `protobuf:"bytes,4,opt,name=grant,proto3" json:"grant,omitempty"`
	Revoke    *ReportGrant  `protobuf:"bytes,5,opt,name=revoke,proto3" json:"revoke,omitempty"`
}

func (m *ReportAction) Reset()         { *m = ReportAction{} }
func (m *ReportAction) String() string { return proto.CompactTextString(m) }
func (*ReportAction) ProtoMessage()    {}

func (m *ReportAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *ReportAction) GetUpdate() *ReportUpdate {
	if m != nil {
		return m.Update
	}
	return nil
}

func (m *ReportAction) GetUpdateKey() *ReportUpdate {
	if m != nil {
		return m.UpdateKey
	}
	return nil
}

func (m *ReportAction) GetGrant() *ReportGrant {
	if m != nil {
		return m.Grant
	}
	return nil
}

func (m *ReportAction) GetRevoke() *ReportGrant {
	if m != nil {
		return m.Revoke
	}
	return nil
}

// ReportUpdate adds Amount under Key, optionally tagged with a
// Category. The period is derived from the block time.
type ReportUpdate struct {
	Key      string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Category string `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Amount   int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReportUpdate) Reset()         { *m = ReportUpdate{} }
func (m *ReportUpdate) String() string { return proto.CompactTextString(m) }
func (*ReportUpdate) ProtoMessage()    {}

func (m *ReportUpdate) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *ReportUpdate) GetCategory() string {
	if m != nil {
		return m.Category
	}
	return ""
}

func (m *ReportUpdate) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// ReportGrant names the address gaining or losing write access.
type ReportGrant struct {
	Addr string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReportGrant) Reset()         { *m = ReportGrant{} }
func (m *ReportGrant) String() string { return proto.CompactTextString(m) }
func (*ReportGrant) ProtoMessage()    {}

func (m *ReportGrant) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReceiptReport is the typed log of every report mutation.
type ReceiptReport struct {
	Period   int64  `protobuf:"varint,1,opt,name=period,proto3" json:"period,omitempty"`
	Key      string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Category string `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Amount   int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Addr     string `protobuf:"bytes,5,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReceiptReport) Reset()         { *m = ReceiptReport{} }
func (m *ReceiptReport) String() string { return proto.CompactTextString(m) }
func (*ReceiptReport) ProtoMessage()    {}

// ReqReport addresses one aggregate by timestamp, key and category.
type ReqReport struct {
	Ts       int64  `protobuf:"varint,1,opt,name=ts,proto3" json:"ts,omitempty"`
	Key      string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Category string `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Addr     string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqReport) Reset()         { *m = ReqReport{} }
func (m *ReqReport) String() string { return proto.CompactTextString(m) }
func (*ReqReport) ProtoMessage()    {}

func (m *ReqReport) GetTs() int64 {
	if m != nil {
		return m.Ts
	}
	return 0
}

func (m *ReqReport) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *ReqReport) GetCategory() string {
	if m != nil {
		return m.Category
	}
	return ""
}

func (m *ReqReport) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReplyWriteAccess reports whether an address may write.
type ReplyWriteAccess struct {
	Granted bool `protobuf:"varint,1,opt,name=granted,proto3" json:"granted,omitempty"`
}

func (m *ReplyWriteAccess) Reset()         { *m = ReplyWriteAccess{} }
func (m *ReplyWriteAccess) String() string { return proto.CompactTextString(m) }
func (*ReplyWriteAccess) ProtoMessage()    {}
