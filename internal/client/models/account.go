package models

import "strconv"

// User is a backend account. Its identifier is numeric.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

func (u User) Key() string {
	if u.ID == 0 {
		return ""
	}
	return strconv.FormatInt(u.ID, 10)
}

// Notification categories raised for expiring documents.
const (
	CategoryVehicleSTNKExpiry = "VEHICLE_STNK_EXPIRY"
	CategoryVehicleKIRExpiry  = "VEHICLE_KIR_EXPIRY"
	CategoryChassisKIRExpiry  = "CHASSIS_KIR_EXPIRY"
	CategoryDriverSIMExpiry   = "DRIVER_SIM_EXPIRY"
)

// ReferenceCategories are the categories tied to a fleet document.
var ReferenceCategories = []string{
	CategoryVehicleSTNKExpiry,
	CategoryVehicleKIRExpiry,
	CategoryChassisKIRExpiry,
	CategoryDriverSIMExpiry,
}

type Notification struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	Category         string `json:"category"`
	ReferenceID      string `json:"referenceId"`
	ReferenceType    string `json:"referenceType"`
	ExpiryDate       string `json:"expiryDate"`
	IsRead           bool   `json:"isRead"`
	IsActive         bool   `json:"isActive"`
	DaysRemaining    int    `json:"daysRemaining"`
	RedirectEndpoint string `json:"redirectEndpoint"`
	CreatedDate      string `json:"createdDate"`
}

func (n Notification) Key() string {
	return strconv.FormatInt(n.ID, 10)
}
