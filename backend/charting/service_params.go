package charting

import (
	"fmt"
	url2 "github.com/fernandosanchezjr/sungod/backend/url"
	"net/url"
)

const MaxSamples = 1 << 26

type ServiceParams struct {
	Samples int
	Refresh bool
}

func ParseServiceParams(values url.Values, defaultSamples int) (params *ServiceParams, err error) {
	params = &ServiceParams{
		Samples: defaultSamples,
		Refresh: false,
	}
	if err = url2.ParseInt("samples", values, &params.Samples); err != nil {
		return
	}
	if err = url2.ParseBool("refresh", values, &params.Refresh); err != nil {
		return
	}
	if params.Samples <= 0 || params.Samples > MaxSamples {
		err = fmt.Errorf("samples out of range: %d", params.Samples)
	}
	return
}
