package drill_test

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

//go:generate mockgen -destination mock_recorder_test.go -package drill_test github.com/drillab/kata/drill Recorder

func TestDrill(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Drill")
}
