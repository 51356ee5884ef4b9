package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID      string
	OwnerID string
	ClassID string
}

func TestFilterOwnData(t *testing.T) {
	items := []record{
		{ID: "1", OwnerID: "alice"},
		{ID: "2", OwnerID: "bob"},
		{ID: "3", OwnerID: "alice"},
	}
	owner := func(r record) string { return r.OwnerID }

	restricted := Capability{View: true, Restrictions: OnlyOwnData}
	got := FilterOwnData(restricted, "alice", items, owner)
	assert.Equal(t, []record{items[0], items[2]}, got)

	unrestricted := Capability{View: true}
	assert.Equal(t, items, FilterOwnData(unrestricted, "alice", items, owner))
}

func TestFilterOwnClasses(t *testing.T) {
	items := []record{
		{ID: "1", ClassID: "ielts-a"},
		{ID: "2", ClassID: "toeic-b"},
		{ID: "3", ClassID: "kids-c"},
	}
	class := func(r record) string { return r.ClassID }

	restricted := Capability{View: true, Restrictions: OnlyOwnClasses}
	got := FilterOwnClasses(restricted, []string{"kids-c", "ielts-a"}, items, class)
	assert.Equal(t, []record{items[0], items[2]}, got)

	assert.Empty(t, FilterOwnClasses(restricted, nil, items, class))
	assert.Equal(t, items, FilterOwnClasses(Capability{View: true}, nil, items, class))
}

func TestRedactParentPhone(t *testing.T) {
	hidden := Capability{View: true, Restrictions: HideParentPhone}

	assert.Equal(t, "*******678", RedactParentPhone(hidden, "0912345678"))
	assert.Equal(t, "**", RedactParentPhone(hidden, "12"))
	assert.Equal(t, "", RedactParentPhone(hidden, ""))
	assert.Equal(t, "0912345678", RedactParentPhone(Capability{View: true}, "0912345678"))
}

func TestCheckStatusOnlyEdit(t *testing.T) {
	c := Capability{View: true, Edit: true, Restrictions: OnlyUpdateStatus}

	assert.NoError(t, CheckStatusOnlyEdit(c, []string{"status"}))
	assert.NoError(t, CheckStatusOnlyEdit(c, nil))
	assert.ErrorIs(t, CheckStatusOnlyEdit(c, []string{"status", "note"}), ErrStatusOnlyEdit)
	assert.NoError(t, CheckStatusOnlyEdit(Capability{View: true, Edit: true}, []string{"note"}))
}

func TestNeedsSignOff(t *testing.T) {
	assert.True(t, NeedsSignOff(Lookup(RoleTeachingAssistant, ModuleWorkConfirmation)))
	assert.False(t, NeedsSignOff(Lookup(RoleAdmin, ModuleWorkConfirmation)))
}

func TestCanActOn(t *testing.T) {
	own := Capability{View: true, Edit: true, Restrictions: OnlyOwnData}
	all := Capability{View: true, Edit: true}

	assert.True(t, CanActOn(own, ActionEdit, "alice", "alice"))
	assert.False(t, CanActOn(own, ActionEdit, "alice", "bob"))
	assert.False(t, CanActOn(own, ActionDelete, "alice", "alice"))
	assert.True(t, CanActOn(all, ActionView, "alice", "bob"))
}

func TestRestriction_Names(t *testing.T) {
	r := OnlyOwnClasses | OnlyUpdateStatus

	assert.Equal(t, []string{"only_own_classes", "only_update_status"}, r.Names())
	assert.Equal(t, "only_own_classes|only_update_status", r.String())
	assert.False(t, r.Has(0))
	assert.Empty(t, Restriction(0).Names())
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFrom(context.Background())
	assert.False(t, ok)

	want := Actor{StaffID: "s-9", Name: "Mai", Role: RoleTeacher}
	got, ok := ActorFrom(WithActor(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
