package utils

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// LogInfo example:
//
// LogInfo("dataset ref %s", ref)
//
func LogInfo(msg string, vars ...interface{}) {
	_, file, line, _ := runtime.Caller(1)
	fileAsPaths := strings.Split(file, "/")
	log.Printf(strings.Join([]string{"[INFO]", fmt.Sprintf("[%s:%d]", fileAsPaths[len(fileAsPaths)-1], line), msg}, " "), vars...)
}

// LogError example:
//
// LogError(errors.New("dataset ref must be owner/name"))
//
func LogError(err error) {
	pc, fn, line, _ := runtime.Caller(1)
	if debug {
		log.Printf("[ERROR] [%s:%s:%d] %s", runtime.FuncForPC(pc).Name(), fn, line, err)
	} else {
		log.Printf("[ERROR] [%s:%d] %s", fn, line, err)
	}
}

// LogFatal example:
//
// LogFatal(errors.New("cannot reach kaggle"))
//
func LogFatal(err error) {
	pc, fn, line, _ := runtime.Caller(1)
	if debug {
		log.Fatalf("[FATAL] %s [%s:%s:%d]", err, runtime.FuncForPC(pc).Name(), fn, line)
	} else {
		log.Fatalf("[FATAL] %s [%s:%d]", err, fn, line)
	}
}
