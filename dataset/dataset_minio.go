package dataset

import (
	"context"
	"path/filepath"
	"strings"

	"dental-fixtures/constants"
	"dental-fixtures/utils"

	"github.com/minio/minio-go/v7"
)

// MinIOMirror fetches datasets from an internal MinIO mirror instead of the
// public Kaggle API. Datasets are laid out as already-extracted object trees
// under "<owner>/<name>/" in a single bucket.
type MinIOMirror struct {
	minioClient *minio.Client
	bucketName  string
	cacheDir    string
}

func NewMinIOMirror(minioClient *minio.Client, bucketName, cacheDir string) *MinIOMirror {
	return &MinIOMirror{
		minioClient: minioClient,
		bucketName:  bucketName,
		cacheDir:    cacheDir,
	}
}

// Fetch implements Fetcher. Every object under the ref's prefix is copied to
// the cache directory, preserving its relative key.
func (mirror *MinIOMirror) Fetch(ref string) (string, error) {
	parsed, err := ParseRef(ref)
	if err != nil {
		return "", downloadError(err)
	}

	ctx := context.Background()
	extractDir := filepath.Join(mirror.cacheDir, "datasets", parsed.Owner, parsed.Name)
	marker := filepath.Join(extractDir, constants.CacheMarkerFile)
	if utils.FileExists(marker) {
		utils.LogInfo("dataset %s already mirrored at %s", ref, extractDir)
		return extractDir, nil
	}

	prefix := parsed.Owner + "/" + parsed.Name + "/"
	count := 0
	for object := range mirror.minioClient.ListObjects(ctx, mirror.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return "", downloadError(object.Err)
		}
		relKey := strings.TrimPrefix(object.Key, prefix)
		if relKey == "" || strings.HasSuffix(object.Key, "/") {
			continue
		}
		target := filepath.Join(extractDir, filepath.FromSlash(relKey))
		if err := utils.EnsureDir(filepath.Dir(target)); err != nil {
			return "", downloadError(err)
		}
		if err := mirror.minioClient.FGetObject(ctx, mirror.bucketName, object.Key, target, minio.GetObjectOptions{}); err != nil {
			return "", downloadError(err)
		}
		count++
	}

	utils.LogInfo("mirrored %d objects for dataset %s", count, ref)
	if err := utils.WriteAppend(marker, ref); err != nil {
		return "", downloadError(err)
	}

	return extractDir, nil
}
