package handlers

import (
	"churchtrack.com/churchtrack/backend/models"
	"churchtrack.com/churchtrack/web/common"
)

type AttendanceResponse struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"userId"`
	UserName    string               `json:"userName"`
	ServiceID   int64                `json:"serviceId"`
	ServiceName string               `json:"serviceName"`
	Status      string               `json:"status"`
	Latitude    *float64             `json:"latitude,omitempty"`
	Longitude   *float64             `json:"longitude,omitempty"`
	Distance    *float64             `json:"distance,omitempty"`
	CheckedAt   common.LocalDateTime `json:"checkedAt"`
	Notes       *string              `json:"notes,omitempty"`
}

func attendanceResponseFrom(a models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		UserName:    a.User.Name,
		ServiceID:   a.ServiceID,
		ServiceName: a.Service.Name,
		Status:      a.Status,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		Distance:    a.Distance,
		CheckedAt:   common.LocalDateTime{Time: a.CheckedAt},
		Notes:       a.Notes,
	}
}

type ServiceResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	ServiceTime common.LocalDateTime `json:"serviceTime"`
	Type        string               `json:"type"`
	Active      bool                 `json:"active"`
}

func serviceResponseFrom(s models.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		ServiceTime: common.LocalDateTime{Time: s.ServiceTime},
		Type:        s.Type,
		Active:      s.Active,
	}
}

type PendingUserResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Phone     *string              `json:"phone,omitempty"`
	Email     *string              `json:"email,omitempty"`
	Notes     *string              `json:"notes,omitempty"`
	Active    bool                 `json:"active"`
	CreatedAt common.LocalDateTime `json:"createdAt"`
	UpdatedAt common.LocalDateTime `json:"updatedAt"`
}

func pendingUserResponseFrom(p models.PendingUser) PendingUserResponse {
	return PendingUserResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Notes:     p.Notes,
		Active:    p.Active,
		CreatedAt: common.LocalDateTime{Time: p.CreatedAt},
		UpdatedAt: common.LocalDateTime{Time: p.UpdatedAt},
	}
}
