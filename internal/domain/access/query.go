package access

// Lookup returns the capability of role in module. Pairs missing from the
// table, and values outside the enumerations, get NoCapability.
func Lookup(role Role, module Module) Capability {
	modules, ok := permissionTable[role]
	if !ok {
		return NoCapability
	}
	c, ok := modules[module]
	if !ok {
		return NoCapability
	}
	return c
}

func HasPermission(role Role, module Module, action Action) bool {
	return Lookup(role, module).Allows(action)
}

func CanView(role Role, module Module) bool {
	return HasPermission(role, module, ActionView)
}

func CanCreate(role Role, module Module) bool {
	return HasPermission(role, module, ActionCreate)
}

func CanEdit(role Role, module Module) bool {
	return HasPermission(role, module, ActionEdit)
}

func CanDelete(role Role, module Module) bool {
	return HasPermission(role, module, ActionDelete)
}

func CanApprove(role Role, module Module) bool {
	return HasPermission(role, module, ActionApprove)
}

func ShouldShowOnlyOwnClasses(role Role, module Module) bool {
	return Lookup(role, module).Restrictions.Has(OnlyOwnClasses)
}

func ShouldHideParentPhone(role Role, module Module) bool {
	return Lookup(role, module).Restrictions.Has(HideParentPhone)
}

func RequiresApproval(role Role, module Module) bool {
	return Lookup(role, module).Restrictions.Has(RequireApproval)
}

func ShouldShowOnlyOwnData(role Role, module Module) bool {
	return Lookup(role, module).Restrictions.Has(OnlyOwnData)
}

func ShouldOnlyUpdateStatus(role Role, module Module) bool {
	return Lookup(role, module).Restrictions.Has(OnlyUpdateStatus)
}

// VisibleMenuItems returns the modules role can view, in menu order.
func VisibleMenuItems(role Role) []Module {
	items := make([]Module, 0, len(AllModules))
	for _, m := range AllModules {
		if CanView(role, m) {
			items = append(items, m)
		}
	}
	return items
}

// Capabilities returns the capability of role for every module, in menu order.
func Capabilities(role Role) []CapabilityResponse {
	caps := make([]CapabilityResponse, 0, len(AllModules))
	for _, m := range AllModules {
		caps = append(caps, Lookup(role, m).Response(m))
	}
	return caps
}
