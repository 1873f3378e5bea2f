package types

import "fmt"

// ReportX is the driver name.
const ReportX = "report"

// Action types.
const (
	ReportActionUpdate    = 1
	ReportActionUpdateKey = 2
	ReportActionGrant     = 3
	ReportActionRevoke    = 4
)

// Receipt log types.
const (
	TyLogReportUpdate    = 740
	TyLogReportKeyUpdate = 741
	TyLogReportGrant     = 742
	TyLogReportRevoke    = 743
)

// Query function names.
const (
	FuncNameBucket         = "GetBucket"
	FuncNameKeyReport      = "GetKeyReport"
	FuncNameCategoryReport = "GetCategoryReport"
	FuncNameWriteAccess    = "GetWriteAccess"
)

// AclKey marks an address as a granted writer.
func AclKey(addr string) []byte {
	return []byte("mavl-" + ReportX + "-acl-" + addr)
}

// BucketKey is the weekly aggregate of a period.
func BucketKey(period int64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-b-%018d", ReportX, period))
}

// EntryKey is the per key aggregate inside a period. Components are
// length prefixed so report keys containing the separator cannot
// collide with another key and category pair.
func EntryKey(period int64, key string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-k-%018d-%d:%s", ReportX, period, len(key), key))
}

// CategoryKey is the per key, per category aggregate inside a period.
func CategoryKey(period int64, key, category string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-c-%018d-%d:%s-%d:%s", ReportX, period, len(key), key, len(category), category))
}
