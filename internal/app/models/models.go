package models

// ProfileKind selects which role profile a registration creates
type ProfileKind string

const (
	ProfileStudent ProfileKind = "student"
	ProfileStaff   ProfileKind = "staff"
)

// StaffStatus represents a staff member's employment status
type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
)
