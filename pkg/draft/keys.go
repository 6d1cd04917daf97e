package draft

import "github.com/goliatone/go-wizard/pkg/model"

const (
	keyPrefix   = "listing-wizard:add:"
	substepMark = ":ui"
)

// Key derives the storage key for a wizard draft. The actor id keeps drafts
// apart when several users share a device; an empty actor falls back to the
// two-part key so single-user storage stays compatible.
func Key(listingType model.ListingType, actorID string) string {
	key := keyPrefix + string(listingType)
	if actorID != "" {
		key += ":" + actorID
	}
	return key
}

// SubStepKey derives the key for sub-step navigation progress. It is the
// draft key suffixed :ui so data and navigation bookkeeping can be cleared
// independently.
func SubStepKey(listingType model.ListingType, actorID string) string {
	return Key(listingType, actorID) + substepMark
}
