package access

import "github.com/learnhub-center/backoffice/internal/domain/staff"

// titleRoles maps the job titles used on staff profiles to roles.
// Matching is exact and case-sensitive.
var titleRoles = map[string]Role{
	"Director":       RoleAdmin,
	"Center Manager": RoleAdmin,
	"Administrator":  RoleAdmin,

	"Head Teacher":       RoleLeadTeacher,
	"Academic Lead":      RoleLeadTeacher,
	"Teacher":            RoleTeacher,
	"Native Teacher":     RoleTeacher,
	"Local Teacher":      RoleTeacher,
	"Teaching Assistant": RoleTeachingAssistant,
	"Tutor":              RoleTeachingAssistant,

	"Sales Manager":    RoleSalesLead,
	"Sales Consultant": RoleSalesStaff,
	"Sales Executive":  RoleSalesStaff,

	"Customer Care Manager": RoleCustomerCareLead,
	"Customer Care Officer": RoleCustomerCareStaff,

	"Chief Accountant": RoleAccountingLead,
	"Accountant":       RoleAccountingStaff,

	"Operations Manager": RoleOperationsLead,
	"Operations Officer": RoleOperationsStaff,
	"Receptionist":       RoleOperationsStaff,
}

// KnownTitles returns a copy of the title lookup table.
func KnownTitles() map[string]Role {
	titles := make(map[string]Role, len(titleRoles))
	for title, role := range titleRoles {
		titles[title] = role
	}
	return titles
}

// ResolveRole picks the role for a staff member. A recognised role code wins
// over the job title; anything unrecognised falls back to DefaultRole.
func ResolveRole(roleCode, title string) Role {
	if code := Role(roleCode); code.Valid() {
		return code
	}
	if role, ok := titleRoles[title]; ok {
		return role
	}
	return DefaultRole
}

// ResolveStaffRole resolves the role of a staff record; nil resolves to DefaultRole.
func ResolveStaffRole(s *staff.Staff) Role {
	if s == nil {
		return DefaultRole
	}
	var code string
	if s.Role != nil {
		code = *s.Role
	}
	return ResolveRole(code, s.Position)
}
