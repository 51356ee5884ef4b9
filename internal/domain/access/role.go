package access

type Role string

const (
	RoleAdmin Role = "admin" // Center director - full access

	// Teaching roles
	RoleLeadTeacher       Role = "lead_teacher"       // Owns a program, reviews teachers
	RoleTeacher           Role = "teacher"            // Teaches assigned classes
	RoleTeachingAssistant Role = "teaching_assistant" // Supports assigned classes, most restricted

	// Office roles, lead and staff tier per department
	RoleSalesLead         Role = "sales_lead"
	RoleSalesStaff        Role = "sales_staff"
	RoleCustomerCareLead  Role = "customer_care_lead"
	RoleCustomerCareStaff Role = "customer_care_staff"
	RoleAccountingLead    Role = "accounting_lead"
	RoleAccountingStaff   Role = "accounting_staff"
	RoleOperationsLead    Role = "operations_lead"
	RoleOperationsStaff   Role = "operations_staff"
)

// AllRoles lists every role in the closed enumeration.
var AllRoles = []Role{
	RoleAdmin,
	RoleLeadTeacher,
	RoleTeacher,
	RoleTeachingAssistant,
	RoleSalesLead,
	RoleSalesStaff,
	RoleCustomerCareLead,
	RoleCustomerCareStaff,
	RoleAccountingLead,
	RoleAccountingStaff,
	RoleOperationsLead,
	RoleOperationsStaff,
}

// DefaultRole is the fail-closed role for identities that cannot be resolved.
const DefaultRole = RoleTeachingAssistant

// Valid reports whether r belongs to the closed enumeration.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// IsTeaching checks if the role is one of the teaching roles
func (r Role) IsTeaching() bool {
	return r == RoleLeadTeacher || r == RoleTeacher || r == RoleTeachingAssistant
}

// IsOfficeLead checks if the role is a department lead
func (r Role) IsOfficeLead() bool {
	switch r {
	case RoleSalesLead, RoleCustomerCareLead, RoleAccountingLead, RoleOperationsLead:
		return true
	default:
		return false
	}
}

// IsOffice checks if the role belongs to any office department, either tier
func (r Role) IsOffice() bool {
	switch r {
	case RoleSalesLead, RoleSalesStaff,
		RoleCustomerCareLead, RoleCustomerCareStaff,
		RoleAccountingLead, RoleAccountingStaff,
		RoleOperationsLead, RoleOperationsStaff:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
