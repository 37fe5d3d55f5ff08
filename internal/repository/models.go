package repository

import "time"

// Approval states shared by manpower and equipment.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Attendance states for manpower. AttendanceNotMarked is derived, never stored:
// it means no attendance row exists for today.
const (
	AttendancePresent   = "present"
	AttendanceAbsent    = "absent"
	AttendanceNotMarked = "not_marked"
)

// Deployment states for equipment. Unlike attendance, "non_deployed" is both a
// storable value and the derived default when no row exists for today.
const (
	DeploymentDeployed    = "deployed"
	DeploymentNonDeployed = "non_deployed"
	DeploymentUnderRepair = "under_repair"
)

// EquipmentDefaultType is the category assigned when a unit is registered
// without an explicit type.
const EquipmentDefaultType = "General Equipment"

// User is a login identity.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Subcontractor is the business profile backing a subcontractor identity.
type Subcontractor struct {
	ID             string
	UserID         string
	Username       string
	CompanyName    string
	ContactPerson  *string
	Phone          *string
	TotalManpower  int
	TotalEquipment int
	CreatedAt      time.Time
}

// ManpowerItem is a workforce member annotated with today's attendance.
// OwnerUserID is the identity id of the owning subcontractor account; listing
// payloads expose it as the member's subcontractor reference.
type ManpowerItem struct {
	ID               string
	OwnerUserID      string
	Name             string
	ApprovalStatus   string
	AttendanceStatus string
	CreatedAt        time.Time
}

// EquipmentItem is an equipment unit annotated with today's deployment status.
type EquipmentItem struct {
	ID               string
	OwnerUserID      string
	Name             string
	Type             string
	ApprovalStatus   string
	DeploymentStatus string
	CreatedAt        time.Time
}

// DashboardMetrics holds the scoped dashboard counters. The four today-counters
// count only stored facts for today's date: subjects with no fact today are
// excluded rather than defaulted.
type DashboardMetrics struct {
	TotalManpower        int
	PresentManpower      int
	AbsentManpower       int
	TotalEquipment       int
	DeployedEquipment    int
	UnderRepairEquipment int
}
