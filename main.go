package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"dental-fixtures/constants"
	"dental-fixtures/dataset"
	"dental-fixtures/fixture"
	"dental-fixtures/utils"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newLogger() *zap.Logger {
	env := viper.GetString("workspace.env")
	var logger *zap.Logger
	switch env {
	case "DEVELOPMENT":
		logger, _ = zap.NewDevelopment()
	default:
		logger, _ = zap.NewProduction()
	}
	return logger
}

func initConfigs(env string) {
	viper.AddConfigPath("conf")
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "__")
	viper.SetEnvKeyReplacer(replacer)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}
}

func getMapEnvVars() *map[string]string {
	ret := make(map[string]string)
	envsOS := os.Environ()
	for _, envOS := range envsOS {
		items := strings.Split(envOS, "=")
		if len(items) > 1 {
			ret[items[0]] = items[1]
		}
	}
	return &ret
}

func newFetcher() dataset.Fetcher {
	cacheDir := viper.GetString("dataset.cache_dir")

	switch viper.GetString("dataset.source") {
	case constants.SourceMinIO:
		utils.LogInfo(viper.GetString("minio.uri"))
		minioClient, err := minio.New(
			viper.GetString("minio.uri"),
			&minio.Options{
				Creds: credentials.NewStaticV4(viper.GetString("minio.access_key_id"), viper.GetString("minio.secret_access_key"), ""),
			})
		if err != nil {
			panic("Cannot connect to MinIO")
		}
		return dataset.NewMinIOMirror(minioClient, viper.GetString("minio.bucket_name"), cacheDir)
	default:
		return dataset.NewKaggleClient(
			viper.GetString("kaggle.base_uri"),
			viper.GetString("kaggle.username"),
			viper.GetString("kaggle.key"),
			cacheDir)
	}
}

func main() {

	envVars := getMapEnvVars()
	env := "development"
	if value, found := (*envVars)[constants.ENV]; found {
		env = value
	}
	utils.LogInfo(fmt.Sprintf("Fixture installer is running in [%s] mode", env))
	initConfigs(env)

	logger := newLogger()
	defer logger.Sync()

	datasetRef := viper.GetString("dataset.ref")
	if datasetRef == "" {
		datasetRef = constants.DefaultDatasetRef
	}
	targetDir := viper.GetString("fixtures.target_dir")
	if targetDir == "" {
		targetDir = constants.DefaultTargetDir
	}

	installer := fixture.NewInstaller(newFetcher(), datasetRef, targetDir, logger)

	report, err := installer.Install()
	if err != nil {
		utils.LogFatal(err)
	}

	utils.LogInfo("install complete: %s", report.String())
}
