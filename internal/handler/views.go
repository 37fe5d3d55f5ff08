package handler

import (
	"time"

	"github.com/buildzy/be-workforce/internal/repository"
)

// Payload shapes consumed by the mobile client. All identifiers travel as
// strings.

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginView struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type manpowerView struct {
	ID               string    `json:"id"`
	SubcontractorID  string    `json:"subcontractorId"`
	Name             string    `json:"name"`
	ApprovalStatus   string    `json:"approvalStatus"`
	AttendanceStatus string    `json:"attendanceStatus"`
	Date             time.Time `json:"date"`
}

func manpowerToView(item *repository.ManpowerItem) manpowerView {
	return manpowerView{
		ID:               item.ID,
		SubcontractorID:  item.OwnerUserID,
		Name:             item.Name,
		ApprovalStatus:   item.ApprovalStatus,
		AttendanceStatus: item.AttendanceStatus,
		Date:             item.CreatedAt,
	}
}

type equipmentView struct {
	ID               string    `json:"id"`
	SubcontractorID  string    `json:"subcontractorId"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	ApprovalStatus   string    `json:"approvalStatus"`
	DeploymentStatus string    `json:"deploymentStatus"`
	Date             time.Time `json:"date"`
}

func equipmentToView(item *repository.EquipmentItem) equipmentView {
	return equipmentView{
		ID:               item.ID,
		SubcontractorID:  item.OwnerUserID,
		Name:             item.Name,
		Type:             item.Type,
		ApprovalStatus:   item.ApprovalStatus,
		DeploymentStatus: item.DeploymentStatus,
		Date:             item.CreatedAt,
	}
}

type subcontractorView struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Username       string  `json:"username"`
	CompanyName    string  `json:"companyName"`
	ContactPerson  *string `json:"contactPerson"`
	PhoneNumber    *string `json:"phoneNumber"`
	TotalManpower  int     `json:"totalManpower"`
	TotalEquipment int     `json:"totalEquipment"`
}

func subcontractorToView(sub *repository.Subcontractor) subcontractorView {
	return subcontractorView{
		ID:             sub.ID,
		UserID:         sub.UserID,
		Username:       sub.Username,
		CompanyName:    sub.CompanyName,
		ContactPerson:  sub.ContactPerson,
		PhoneNumber:    sub.Phone,
		TotalManpower:  sub.TotalManpower,
		TotalEquipment: sub.TotalEquipment,
	}
}

type metricsView struct {
	TotalManpower        int `json:"totalManpower"`
	PresentManpower      int `json:"presentManpower"`
	AbsentManpower       int `json:"absentManpower"`
	TotalEquipment       int `json:"totalEquipment"`
	DeployedEquipment    int `json:"deployedEquipment"`
	UnderRepairEquipment int `json:"underRepairEquipment"`
}

func metricsToView(m *repository.DashboardMetrics) metricsView {
	return metricsView{
		TotalManpower:        m.TotalManpower,
		PresentManpower:      m.PresentManpower,
		AbsentManpower:       m.AbsentManpower,
		TotalEquipment:       m.TotalEquipment,
		DeployedEquipment:    m.DeployedEquipment,
		UnderRepairEquipment: m.UnderRepairEquipment,
	}
}
