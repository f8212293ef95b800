package fixture

import (
	"strings"

	"dental-fixtures/constants"
)

// Slot is one of the three canonical fixture outputs downstream test code
// expects under the target directory.
type Slot string

const (
	SlotXray      = Slot(constants.SlotXray)
	SlotPanoramic = Slot(constants.SlotPanoramic)
	SlotIntraoral = Slot(constants.SlotIntraoral)
)

// TargetName is the fixed file name the slot is installed under, always with
// a .jpg extension regardless of the source file's actual format.
func (slot Slot) TargetName() string {
	return string(slot) + constants.FixtureExt
}

// MatchSlot classifies a file name into a fixture slot. Matching is
// case-insensitive and deliberately loose: both the extension markers
// (".jpg", ".jpeg", ".png") and the keywords are substring checks against
// the lowercased base name, so "myjpg.png.txt" qualifies on extension while
// "pano_01.jpg" does not qualify on keyword. When several keywords appear in
// one name, xray wins over panoramic, which wins over intraoral.
func MatchSlot(name string) (Slot, bool) {
	nameLower := strings.ToLower(name)

	if !containsAny(nameLower, constants.ExtMarkers) {
		return "", false
	}
	if !containsAny(nameLower, constants.Keywords) {
		return "", false
	}

	if strings.Contains(nameLower, constants.SlotXray) {
		return SlotXray, true
	}
	if strings.Contains(nameLower, constants.SlotPanoramic) {
		return SlotPanoramic, true
	}
	return SlotIntraoral, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
