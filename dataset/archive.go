package dataset

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dental-fixtures/utils"
)

// Unzip extracts archivePath into destDir, creating it if needed. Entries
// whose paths would escape destDir are rejected.
func Unzip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	if err := utils.EnsureDir(destDir); err != nil {
		return err
	}

	for _, file := range reader.File {
		if err := extractOne(file, destDir); err != nil {
			return err
		}
	}

	return nil
}

func extractOne(file *zip.File, destDir string) error {
	target := filepath.Join(destDir, file.Name)
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal archive path: %s", file.Name)
	}

	if file.FileInfo().IsDir() {
		return utils.EnsureDir(target)
	}

	if err := utils.EnsureDir(filepath.Dir(target)); err != nil {
		return err
	}

	in, err := file.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
