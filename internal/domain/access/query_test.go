package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_MissingPairIsNoCapability(t *testing.T) {
	c := Lookup(RoleTeachingAssistant, ModuleExpenses)

	assert.Equal(t, NoCapability, c)
	assert.True(t, c.IsZero())
	for _, action := range AllActions {
		assert.False(t, c.Allows(action))
	}
}

func TestLookup_OutOfEnumerationValues(t *testing.T) {
	assert.Equal(t, NoCapability, Lookup(Role("janitor"), ModuleClasses))
	assert.Equal(t, NoCapability, Lookup(RoleAdmin, Module("casino")))
	assert.False(t, HasPermission(RoleAdmin, ModuleClasses, Action("launch")))
	assert.False(t, HasPermission(Role(""), ModuleDashboard, ActionView))
}

func TestHasPermission_MatchesVerbHelpers(t *testing.T) {
	for _, role := range AllRoles {
		for _, m := range AllModules {
			assert.Equal(t, CanView(role, m), HasPermission(role, m, ActionView))
			assert.Equal(t, CanCreate(role, m), HasPermission(role, m, ActionCreate))
			assert.Equal(t, CanEdit(role, m), HasPermission(role, m, ActionEdit))
			assert.Equal(t, CanDelete(role, m), HasPermission(role, m, ActionDelete))
			assert.Equal(t, CanApprove(role, m), HasPermission(role, m, ActionApprove))
		}
	}
}

func TestVisibleMenuItems(t *testing.T) {
	t.Run("admin sees every module in order", func(t *testing.T) {
		assert.Equal(t, AllModules, VisibleMenuItems(RoleAdmin))
	})

	t.Run("only viewable modules in declaration order", func(t *testing.T) {
		for _, role := range AllRoles {
			items := VisibleMenuItems(role)
			last := -1
			for _, m := range items {
				assert.True(t, CanView(role, m))
				idx := indexOf(AllModules, m)
				assert.Greater(t, idx, last, "menu of %s out of order at %s", role, m)
				last = idx
			}
		}
	})

	t.Run("unknown role sees nothing", func(t *testing.T) {
		assert.Empty(t, VisibleMenuItems(Role("guest")))
	})
}

func TestCapabilities_OnePerModule(t *testing.T) {
	caps := Capabilities(RoleTeacher)

	assert.Len(t, caps, len(AllModules))
	for i, c := range caps {
		assert.Equal(t, AllModules[i], c.Module)
	}
}

func TestActor_Can(t *testing.T) {
	a := Actor{StaffID: "s-1", Role: RoleOperationsLead}

	assert.True(t, a.Can(ModuleLeaveRequests, ActionApprove))
	assert.False(t, a.Can(ModuleInvoices, ActionApprove))
	assert.Equal(t, Lookup(RoleOperationsLead, ModuleRooms), a.Capability(ModuleRooms))
}

func indexOf(modules []Module, m Module) int {
	for i, candidate := range modules {
		if candidate == m {
			return i
		}
	}
	return -1
}
