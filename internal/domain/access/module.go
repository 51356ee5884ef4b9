package access

// Module is one functional area of the back-office gated by the permission table.
type Module string

const (
	ModuleDashboard Module = "dashboard"

	// Academics
	ModuleClasses         Module = "classes"
	ModuleSchedule        Module = "schedule"
	ModuleClassAttendance Module = "class_attendance"
	ModuleCourses         Module = "courses"
	ModuleRooms           Module = "rooms"
	ModuleHomework        Module = "homework"
	ModuleTestScores      Module = "test_scores"
	ModuleFeedback        Module = "feedback"

	// Students & families
	ModuleStudents    Module = "students"
	ModuleParents     Module = "parents"
	ModuleEnrollments Module = "enrollments"

	// People
	ModuleTeachers         Module = "teachers"
	ModuleStaff            Module = "staff"
	ModuleStaffAttendance  Module = "staff_attendance"
	ModuleWorkConfirmation Module = "work_confirmation"
	ModuleLeaveRequests    Module = "leave_requests"
	ModuleSalary           Module = "salary"

	// Finance
	ModuleInvoices      Module = "invoices"
	ModuleReceipts      Module = "receipts"
	ModuleExpenses      Module = "expenses"
	ModuleRevenueReport Module = "revenue_report"

	// CRM
	ModuleLeads        Module = "leads"
	ModuleTrialClasses Module = "trial_classes"
	ModuleCampaigns    Module = "campaigns"
	ModuleCustomerCare Module = "customer_care"

	// Administration
	ModuleDocuments     Module = "documents"
	ModuleNotifications Module = "notifications"
	ModuleHolidays      Module = "holidays"
	ModuleSettings      Module = "settings"
)

// AllModules lists every module in menu order.
var AllModules = []Module{
	ModuleDashboard,
	ModuleClasses,
	ModuleSchedule,
	ModuleClassAttendance,
	ModuleCourses,
	ModuleRooms,
	ModuleHomework,
	ModuleTestScores,
	ModuleFeedback,
	ModuleStudents,
	ModuleParents,
	ModuleEnrollments,
	ModuleTeachers,
	ModuleStaff,
	ModuleStaffAttendance,
	ModuleWorkConfirmation,
	ModuleLeaveRequests,
	ModuleSalary,
	ModuleInvoices,
	ModuleReceipts,
	ModuleExpenses,
	ModuleRevenueReport,
	ModuleLeads,
	ModuleTrialClasses,
	ModuleCampaigns,
	ModuleCustomerCare,
	ModuleDocuments,
	ModuleNotifications,
	ModuleHolidays,
	ModuleSettings,
}

// Valid reports whether m belongs to the closed enumeration.
func (m Module) Valid() bool {
	for _, known := range AllModules {
		if m == known {
			return true
		}
	}
	return false
}

func (m Module) String() string {
	return string(m)
}
