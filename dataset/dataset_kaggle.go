package dataset

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dental-fixtures/constants"
	"dental-fixtures/utils"

	"github.com/dustin/go-humanize"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// KaggleClient fetches public dataset archives from the Kaggle API and
// extracts them into a local cache directory. A dataset already present in
// the cache is reused without touching the network.
type KaggleClient struct {
	baseURI    string
	username   string
	key        string
	cacheDir   string
	httpClient *httpclient.Client
}

func NewKaggleClient(baseURI, username, key, cacheDir string) *KaggleClient {
	timeout := 10 * time.Minute

	httpClient := httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetryCount(3),
	)

	return &KaggleClient{
		baseURI:    baseURI,
		username:   username,
		key:        key,
		cacheDir:   cacheDir,
		httpClient: httpClient,
	}
}

// Fetch implements Fetcher. The returned path is
// <cacheDir>/datasets/<owner>/<name>.
func (kaggle *KaggleClient) Fetch(ref string) (string, error) {
	parsed, err := ParseRef(ref)
	if err != nil {
		return "", downloadError(err)
	}

	extractDir := filepath.Join(kaggle.cacheDir, "datasets", parsed.Owner, parsed.Name)
	marker := filepath.Join(extractDir, constants.CacheMarkerFile)
	if utils.FileExists(marker) {
		utils.LogInfo("dataset %s already cached at %s", ref, extractDir)
		return extractDir, nil
	}

	archivePath, err := kaggle.downloadArchive(parsed)
	if err != nil {
		return "", err
	}
	defer os.Remove(archivePath)

	if err := os.RemoveAll(extractDir); err != nil {
		return "", downloadError(err)
	}
	if err := Unzip(archivePath, extractDir); err != nil {
		return "", downloadError(err)
	}
	if err := utils.WriteAppend(marker, ref); err != nil {
		return "", downloadError(err)
	}

	return extractDir, nil
}

func (kaggle *KaggleClient) downloadArchive(ref Ref) (string, error) {
	uri := fmt.Sprintf("%s/datasets/download/%s/%s", kaggle.baseURI, ref.Owner, ref.Name)
	utils.LogInfo("downloading dataset %s", ref.String())

	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return "", downloadError(err)
	}
	if kaggle.username != "" {
		req.SetBasicAuth(kaggle.username, kaggle.key)
	}

	res, err := kaggle.httpClient.Do(req)
	if err != nil {
		return "", downloadError(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", downloadError(errors.New(res.Status))
	}

	downloadDir := filepath.Join(kaggle.cacheDir, "downloads")
	if err := utils.EnsureDir(downloadDir); err != nil {
		return "", downloadError(err)
	}

	archivePath := filepath.Join(downloadDir, fmt.Sprintf("%s-%s.zip", ref.Owner, ref.Name))
	out, err := os.Create(archivePath)
	if err != nil {
		return "", downloadError(err)
	}
	defer out.Close()

	written, err := io.Copy(out, res.Body)
	if err != nil {
		return "", downloadError(err)
	}

	utils.LogInfo("downloaded %s (%s)", ref.String(), humanize.Bytes(uint64(written)))
	return archivePath, nil
}
