package fixture

import (
	"os"
	"path/filepath"

	"dental-fixtures/dataset"
	"dental-fixtures/entities"
	"dental-fixtures/utils"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Installer populates the target directory with renamed image fixtures
// picked out of a fetched dataset tree.
type Installer struct {
	fetcher    dataset.Fetcher
	datasetRef string
	targetDir  string
	logger     *zap.Logger
}

func NewInstaller(fetcher dataset.Fetcher, datasetRef, targetDir string, logger *zap.Logger) *Installer {
	return &Installer{
		fetcher:    fetcher,
		datasetRef: datasetRef,
		targetDir:  targetDir,
		logger:     logger,
	}
}

// Install runs one fetch-walk-copy pass. Matching files are copied to their
// slot's fixed name, so a slot matched more than once keeps the last match.
// A run with zero matches is still a success.
func (installer *Installer) Install() (*entities.InstallReport, error) {
	report := entities.NewInstallReport(installer.datasetRef, installer.targetDir)

	root, err := installer.fetcher.Fetch(installer.datasetRef)
	if err != nil {
		return nil, err
	}
	report.Root = root

	if err := utils.EnsureDir(installer.targetDir); err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		report.Scanned++

		slot, ok := MatchSlot(info.Name())
		if !ok {
			return nil
		}

		target := filepath.Join(installer.targetDir, slot.TargetName())
		written, err := utils.CopyFile(path, target)
		if err != nil {
			return err
		}

		installer.logger.Info("copied fixture",
			zap.String("slot", string(slot)),
			zap.String("source", info.Name()),
			zap.String("target", slot.TargetName()),
			zap.String("size", humanize.Bytes(uint64(written))))

		report.Record(entities.CopiedFixture{
			Slot:   string(slot),
			Source: path,
			Target: target,
			Size:   written,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Close()
	return report, nil
}
