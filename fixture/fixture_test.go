package fixture

import (
	"testing"

	"gopkg.in/go-playground/assert.v1"
)

func TestTargetName(t *testing.T) {
	{
		assert.Equal(t, "xray.jpg", SlotXray.TargetName())
		assert.Equal(t, "panoramic.jpg", SlotPanoramic.TargetName())
		assert.Equal(t, "intraoral.jpg", SlotIntraoral.TargetName())
	}
}

func TestMatchSlot(t *testing.T) {
	{
		// plain matches, any case
		slot, ok := MatchSlot("xray_001.jpg")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotXray, slot)

		slot, ok = MatchSlot("PANORAMIC_scan.PNG")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotPanoramic, slot)

		slot, ok = MatchSlot("scan.intraoral.jpeg")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotIntraoral, slot)
	}
	{
		// xray always beats panoramic when both keywords are present
		slot, ok := MatchSlot("panoramic_xray.jpg")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotXray, slot)

		slot, ok = MatchSlot("xray_panoramic_intraoral.png")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotXray, slot)

		slot, ok = MatchSlot("intraoral_panoramic.jpeg")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotPanoramic, slot)
	}
	{
		// extension markers are substring checks, not suffix checks
		slot, ok := MatchSlot("xray.png.txt")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotXray, slot)

		_, ok = MatchSlot("intraoral.bmp")
		assert.Equal(t, false, ok)
	}
	{
		// "pano" alone is not "panoramic"
		_, ok := MatchSlot("pano_01.jpg")
		assert.Equal(t, false, ok)

		slot, ok := MatchSlot("PANO_Xray_001.JPG")
		assert.Equal(t, true, ok)
		assert.Equal(t, SlotXray, slot)
	}
	{
		// keyword without extension marker
		_, ok := MatchSlot("xray")
		assert.Equal(t, false, ok)

		// extension marker without keyword
		_, ok = MatchSlot("molar_17.jpg")
		assert.Equal(t, false, ok)
	}
}
