package pgwire

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPgwire(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pgwire Suite")
}
