package ecert

import (
	"fmt"
	"sync"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type FailurePolicy string

const (
	// Any failed render aborts the batch and no archive is produced.
	FailFast FailurePolicy = "fail_fast"
	// Failed renders are left out of the archive and listed in Archive.Failures.
	SkipFailed FailurePolicy = "skip_failed"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", FailFast:
		return FailFast, nil
	case SkipFailed:
		return SkipFailed, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q", s)
	}
}

type Config struct {
	// Upper bound on concurrent renders, 0 means twice GOMAXPROCS
	MaxWorkers    int
	FailurePolicy FailurePolicy
	// Called after every render with its duration and outcome, may be nil
	OnRender func(d time.Duration, err error)

	pdfOnce sync.Once
	pdfConf *model.Configuration
}

var disableConfigDir sync.Once

// pdfcpu would otherwise create and read a config directory in the user's home on first use.
func newPDFConfiguration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	// Plain xref tables and no object streams keep the document info dictionary
	// readable, which NormalizeMetadata relies on.
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return conf
}

func NewDefaultConfig() *Config {
	return &Config{
		FailurePolicy: FailFast,
	}
}

// PDFConfiguration returns a private copy of the pdfcpu configuration. pdfcpu records the
// running command on the configuration it is handed, so concurrent renders must not share one.
func (c *Config) PDFConfiguration() *model.Configuration {
	c.pdfOnce.Do(func() {
		c.pdfConf = newPDFConfiguration()
	})
	conf := *c.pdfConf
	return &conf
}
