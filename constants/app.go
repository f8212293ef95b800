package constants

const (
	ENV = "FIXTURES_ENV"

	SourceKaggle = "kaggle"
	SourceMinIO  = "minio"

	SlotXray      = "xray"
	SlotPanoramic = "panoramic"
	SlotIntraoral = "intraoral"

	DefaultDatasetRef = "weiweicui/ctooth-dataset"
	DefaultTargetDir  = "test/images"

	FixtureExt = ".jpg"

	CacheMarkerFile = ".complete"
)

// ExtMarkers and Keywords are matched as substrings of the lowercased
// file name, in this order.
var (
	ExtMarkers = []string{".jpg", ".jpeg", ".png"}
	Keywords   = []string{SlotXray, SlotPanoramic, SlotIntraoral}
)
