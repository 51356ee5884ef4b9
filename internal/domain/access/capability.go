package access

import "strings"

type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
)

var AllActions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionApprove}

func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionCreate, ActionEdit, ActionDelete, ActionApprove:
		return true
	default:
		return false
	}
}

// Restriction is a set of qualifiers that narrow the base verbs of a Capability.
type Restriction uint8

const (
	// OnlyOwnClasses limits visibility and actions to classes the staff member is assigned to.
	OnlyOwnClasses Restriction = 1 << iota
	// HideParentPhone redacts parent phone numbers.
	HideParentPhone
	// RequireApproval means writes need a second-party sign-off before taking effect.
	RequireApproval
	// OnlyOwnData limits the module to the acting staff member's own records.
	OnlyOwnData
	// OnlyUpdateStatus narrows the edit right to the status field.
	OnlyUpdateStatus
)

var restrictionNames = []struct {
	flag Restriction
	name string
}{
	{OnlyOwnClasses, "only_own_classes"},
	{HideParentPhone, "hide_parent_phone"},
	{RequireApproval, "require_approval"},
	{OnlyOwnData, "only_own_data"},
	{OnlyUpdateStatus, "only_update_status"},
}

// Has reports whether every flag in flag is set.
func (r Restriction) Has(flag Restriction) bool {
	return flag != 0 && r&flag == flag
}

// Names returns the snake_case names of the set flags.
func (r Restriction) Names() []string {
	names := make([]string, 0, len(restrictionNames))
	for _, rn := range restrictionNames {
		if r.Has(rn.flag) {
			names = append(names, rn.name)
		}
	}
	return names
}

func (r Restriction) String() string {
	return strings.Join(r.Names(), "|")
}

// Capability is what one role may do inside one module.
type Capability struct {
	View    bool
	Create  bool
	Edit    bool
	Delete  bool
	Approve bool

	Restrictions Restriction
}

// NoCapability is returned for every (Role, Module) pair absent from the table.
var NoCapability = Capability{}

// Allows reports the exact boolean for action; unknown actions are denied.
func (c Capability) Allows(action Action) bool {
	switch action {
	case ActionView:
		return c.View
	case ActionCreate:
		return c.Create
	case ActionEdit:
		return c.Edit
	case ActionDelete:
		return c.Delete
	case ActionApprove:
		return c.Approve
	default:
		return false
	}
}

// IsZero reports whether the capability grants nothing.
func (c Capability) IsZero() bool {
	return c == NoCapability
}

// CapabilityResponse is the JSON view of a Capability.
type CapabilityResponse struct {
	Module           Module   `json:"module"`
	View             bool     `json:"view"`
	Create           bool     `json:"create"`
	Edit             bool     `json:"edit"`
	Delete           bool     `json:"delete"`
	Approve          bool     `json:"approve"`
	OnlyOwnClasses   bool     `json:"only_own_classes"`
	HideParentPhone  bool     `json:"hide_parent_phone"`
	RequireApproval  bool     `json:"require_approval"`
	OnlyOwnData      bool     `json:"only_own_data"`
	OnlyUpdateStatus bool     `json:"only_update_status"`
	Restrictions     []string `json:"restrictions,omitempty"`
}

func (c Capability) Response(module Module) CapabilityResponse {
	return CapabilityResponse{
		Module:           module,
		View:             c.View,
		Create:           c.Create,
		Edit:             c.Edit,
		Delete:           c.Delete,
		Approve:          c.Approve,
		OnlyOwnClasses:   c.Restrictions.Has(OnlyOwnClasses),
		HideParentPhone:  c.Restrictions.Has(HideParentPhone),
		RequireApproval:  c.Restrictions.Has(RequireApproval),
		OnlyOwnData:      c.Restrictions.Has(OnlyOwnData),
		OnlyUpdateStatus: c.Restrictions.Has(OnlyUpdateStatus),
		Restrictions:     c.Restrictions.Names(),
	}
}
