package dto

// AdminDashboardResponse carries the counters shown on the admin dashboard
type AdminDashboardResponse struct {
	StudentCount       int64 `json:"studentCount"`
	StaffCount         int64 `json:"staffCount"`
	AlumniCount        int64 `json:"alumniCount"`
	EventCount         int64 `json:"eventCount"`
	PendingMemoryCount int64 `json:"pendingMemoryCount"`
	PendingAlumniCount int64 `json:"pendingAlumniCount"`
}
