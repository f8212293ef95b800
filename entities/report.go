package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CopiedFixture records one fixture slot populated during a run. When the
// walk matches a slot more than once, Source reflects the last match.
type CopiedFixture struct {
	Slot      string `json:"slot"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Size      int64  `json:"size"`
	Overwrote bool   `json:"overwrote"`
}

type InstallReport struct {
	RunID      string          `json:"run_id"`
	DatasetRef string          `json:"dataset_ref"`
	Root       string          `json:"root,omitempty"`
	TargetDir  string          `json:"target_dir"`
	Fixtures   []CopiedFixture `json:"fixtures,omitempty"`
	Scanned    int             `json:"scanned"`
	Started    int64           `json:"started"`
	Finished   int64           `json:"finished"`
}

func NewInstallReport(datasetRef, targetDir string) *InstallReport {
	return &InstallReport{
		RunID:      uuid.New().String(),
		DatasetRef: datasetRef,
		TargetDir:  targetDir,
		Started:    time.Now().Unix(),
	}
}

// Record upserts the slot's entry so the report holds one line per slot.
func (report *InstallReport) Record(fixture CopiedFixture) {
	for i := range report.Fixtures {
		if report.Fixtures[i].Slot == fixture.Slot {
			fixture.Overwrote = true
			report.Fixtures[i] = fixture
			return
		}
	}
	report.Fixtures = append(report.Fixtures, fixture)
}

func (report *InstallReport) Close() {
	report.Finished = time.Now().Unix()
}

func (report *InstallReport) String() string {
	b, err := json.Marshal(report)
	if err != nil {
		return "{}"
	}
	return string(b)
}
