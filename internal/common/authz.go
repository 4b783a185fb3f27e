package common

// CanMutate reports whether the acting user may mutate an entity owned by
// ownerID. A nil or non-positive owner means ownership cannot be
// established, so the answer is always no.
func CanMutate(actorID int, ownerID *int) bool {
	if actorID < 1 {
		return false
	}

	if ownerID == nil || *ownerID < 1 {
		return false
	}

	return actorID == *ownerID
}
