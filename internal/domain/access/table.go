package access

// workflowModules carry an approval step; Approve is only granted on these.
var workflowModules = map[Module]bool{
	ModuleWorkConfirmation: true,
	ModuleLeaveRequests:    true,
	ModuleInvoices:         true,
}

// IsWorkflow reports whether the module has an approval workflow.
func IsWorkflow(m Module) bool {
	return workflowModules[m]
}

// permissionTable maps roles to their capabilities per module.
// A module missing from a role's map grants nothing.
var permissionTable = buildPermissionTable()

func (c Capability) with(r Restriction) Capability {
	c.Restrictions |= r
	return c
}

func (c Capability) approving() Capability {
	c.Approve = true
	return c
}

func buildPermissionTable() map[Role]map[Module]Capability {
	var (
		view       = Capability{View: true}
		viewCreate = Capability{View: true, Create: true}
		viewEdit   = Capability{View: true, Edit: true}
		write      = Capability{View: true, Create: true, Edit: true}
		full       = Capability{View: true, Create: true, Edit: true, Delete: true}
	)

	// Every staff member manages their own leave, sees their own payslip
	// and their own attendance.
	self := map[Module]Capability{
		ModuleDashboard:       view,
		ModuleLeaveRequests:   full.with(OnlyOwnData),
		ModuleSalary:          view.with(OnlyOwnData),
		ModuleStaffAttendance: view.with(OnlyOwnData),
		ModuleNotifications:   view,
		ModuleHolidays:        view,
	}
	withSelf := func(entries map[Module]Capability) map[Module]Capability {
		merged := make(map[Module]Capability, len(self)+len(entries))
		for m, c := range self {
			merged[m] = c
		}
		for m, c := range entries {
			merged[m] = c
		}
		return merged
	}

	admin := make(map[Module]Capability, len(AllModules))
	for _, m := range AllModules {
		c := full
		if IsWorkflow(m) {
			c = c.approving()
		}
		admin[m] = c
	}

	return map[Role]map[Module]Capability{
		RoleAdmin: admin,

		// Teaching
		RoleLeadTeacher: withSelf(map[Module]Capability{
			ModuleClasses:          write,
			ModuleSchedule:         write,
			ModuleClassAttendance:  write,
			ModuleCourses:          viewEdit,
			ModuleRooms:            view,
			ModuleHomework:         full,
			ModuleTestScores:       full,
			ModuleFeedback:         write,
			ModuleStudents:         view.with(HideParentPhone),
			ModuleParents:          view.with(HideParentPhone),
			ModuleEnrollments:      view,
			ModuleTeachers:         view,
			ModuleWorkConfirmation: write.approving(),
			ModuleDocuments:        viewCreate,
		}),
		RoleTeacher: withSelf(map[Module]Capability{
			ModuleClasses:          view.with(OnlyOwnClasses),
			ModuleSchedule:         view.with(OnlyOwnClasses),
			ModuleClassAttendance:  write.with(OnlyOwnClasses),
			ModuleCourses:          view,
			ModuleHomework:         full.with(OnlyOwnClasses),
			ModuleTestScores:       write.with(OnlyOwnClasses),
			ModuleFeedback:         write.with(OnlyOwnClasses),
			ModuleStudents:         view.with(OnlyOwnClasses | HideParentPhone),
			ModuleParents:          view.with(OnlyOwnClasses | HideParentPhone),
			ModuleWorkConfirmation: write.with(OnlyOwnData | RequireApproval),
			ModuleDocuments:        view,
		}),
		RoleTeachingAssistant: withSelf(map[Module]Capability{
			ModuleClasses:          view.with(OnlyOwnClasses),
			ModuleSchedule:         view.with(OnlyOwnClasses),
			ModuleClassAttendance:  viewEdit.with(OnlyOwnClasses | OnlyUpdateStatus),
			ModuleHomework:         view.with(OnlyOwnClasses),
			ModuleStudents:         view.with(OnlyOwnClasses | HideParentPhone),
			ModuleWorkConfirmation: viewCreate.with(OnlyOwnData | RequireApproval),
		}),

		// Sales
		RoleSalesLead: withSelf(map[Module]Capability{
			ModuleClasses:       view,
			ModuleSchedule:      view,
			ModuleCourses:       view,
			ModuleStudents:      write,
			ModuleParents:       write,
			ModuleEnrollments:   write,
			ModuleInvoices:      viewCreate.with(RequireApproval),
			ModuleRevenueReport: view,
			ModuleLeads:         full,
			ModuleTrialClasses:  full,
			ModuleCampaigns:     full,
			ModuleCustomerCare:  view,
		}),
		RoleSalesStaff: withSelf(map[Module]Capability{
			ModuleClasses:      view,
			ModuleSchedule:     view,
			ModuleCourses:      view,
			ModuleStudents:     viewCreate,
			ModuleParents:      viewCreate,
			ModuleEnrollments:  viewCreate.with(RequireApproval),
			ModuleInvoices:     viewCreate.with(OnlyOwnData | RequireApproval),
			ModuleLeads:        write.with(OnlyOwnData),
			ModuleTrialClasses: write,
			ModuleCampaigns:    view,
		}),

		// Customer care
		RoleCustomerCareLead: withSelf(map[Module]Capability{
			ModuleClasses:         view,
			ModuleSchedule:        view,
			ModuleClassAttendance: view,
			ModuleHomework:        view,
			ModuleTestScores:      view,
			ModuleFeedback:        viewEdit,
			ModuleStudents:        viewEdit,
			ModuleParents:         viewEdit,
			ModuleEnrollments:     viewEdit,
			ModuleLeads:           view,
			ModuleCustomerCare:    full,
			ModuleNotifications:   full,
		}),
		RoleCustomerCareStaff: withSelf(map[Module]Capability{
			ModuleClasses:         view,
			ModuleSchedule:        view,
			ModuleClassAttendance: view,
			ModuleTestScores:      view,
			ModuleFeedback:        view,
			ModuleStudents:        view,
			ModuleParents:         view,
			ModuleEnrollments:     view,
			ModuleLeads:           view,
			ModuleCustomerCare:    write.with(OnlyUpdateStatus),
			ModuleNotifications:   viewCreate,
		}),

		// Accounting
		RoleAccountingLead: withSelf(map[Module]Capability{
			ModuleStudents:         view.with(HideParentPhone),
			ModuleParents:          view.with(HideParentPhone),
			ModuleEnrollments:      view,
			ModuleStaff:            view,
			ModuleStaffAttendance:  view,
			ModuleWorkConfirmation: view,
			ModuleSalary:           full,
			ModuleInvoices:         full.approving(),
			ModuleReceipts:         full,
			ModuleExpenses:         full,
			ModuleRevenueReport:    view,
		}),
		RoleAccountingStaff: withSelf(map[Module]Capability{
			ModuleStudents:      view.with(HideParentPhone),
			ModuleEnrollments:   view,
			ModuleSalary:        write.with(RequireApproval),
			ModuleInvoices:      write.with(RequireApproval),
			ModuleReceipts:      write,
			ModuleExpenses:      viewCreate.with(RequireApproval),
			ModuleRevenueReport: view,
		}),

		// Operations
		RoleOperationsLead: withSelf(map[Module]Capability{
			ModuleClasses:          write,
			ModuleSchedule:         full,
			ModuleClassAttendance:  view,
			ModuleCourses:          write,
			ModuleRooms:            full,
			ModuleStudents:         view,
			ModuleParents:          view.with(HideParentPhone),
			ModuleTeachers:         write,
			ModuleStaff:            write,
			ModuleStaffAttendance:  write,
			ModuleWorkConfirmation: viewEdit.approving(),
			ModuleLeaveRequests:    full.approving(),
			ModuleSalary:           view,
			ModuleDocuments:        full,
			ModuleNotifications:    full,
			ModuleHolidays:         full,
			ModuleSettings:         view,
		}),
		RoleOperationsStaff: withSelf(map[Module]Capability{
			ModuleClasses:          view,
			ModuleSchedule:         write,
			ModuleClassAttendance:  view,
			ModuleCourses:          view,
			ModuleRooms:            write,
			ModuleStudents:         view.with(HideParentPhone),
			ModuleTeachers:         view,
			ModuleStaff:            view,
			ModuleStaffAttendance:  write.with(RequireApproval),
			ModuleWorkConfirmation: view,
			ModuleDocuments:        write,
			ModuleNotifications:    viewCreate,
		}),
	}
}
