package web

import (
	"os"
	"testing"

	"catalog/logger"

	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.INFO)
	os.Exit(m.Run())
}
