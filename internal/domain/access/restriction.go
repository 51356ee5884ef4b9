package access

import "strings"

// StatusField is the only field an OnlyUpdateStatus capability may change.
const StatusField = "status"

// FilterOwnData keeps the items owned by actorID when c carries OnlyOwnData.
func FilterOwnData[T any](c Capability, actorID string, items []T, ownerOf func(T) string) []T {
	if !c.Restrictions.Has(OnlyOwnData) {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if ownerOf(item) == actorID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterOwnClasses keeps the items whose class is in assigned when c carries OnlyOwnClasses.
func FilterOwnClasses[T any](c Capability, assigned []string, items []T, classOf func(T) string) []T {
	if !c.Restrictions.Has(OnlyOwnClasses) {
		return items
	}
	set := make(map[string]struct{}, len(assigned))
	for _, id := range assigned {
		set[id] = struct{}{}
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := set[classOf(item)]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// RedactParentPhone masks all but the last three digits when c carries HideParentPhone.
func RedactParentPhone(c Capability, phone string) string {
	if !c.Restrictions.Has(HideParentPhone) || phone == "" {
		return phone
	}
	const visible = 3
	runes := []rune(phone)
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}

// CheckStatusOnlyEdit rejects an edit touching anything but the status field
// when c carries OnlyUpdateStatus. It does not check the edit verb itself.
func CheckStatusOnlyEdit(c Capability, changedFields []string) error {
	if !c.Restrictions.Has(OnlyUpdateStatus) {
		return nil
	}
	for _, f := range changedFields {
		if f != StatusField {
			return ErrStatusOnlyEdit
		}
	}
	return nil
}

// NeedsSignOff reports whether writes under c take effect only after a second-party approval.
func NeedsSignOff(c Capability) bool {
	return c.Restrictions.Has(RequireApproval)
}

// CanActOn reports whether c allows action on a record owned by ownerID.
func CanActOn(c Capability, action Action, actorID, ownerID string) bool {
	if !c.Allows(action) {
		return false
	}
	if c.Restrictions.Has(OnlyOwnData) && actorID != ownerID {
		return false
	}
	return true
}
