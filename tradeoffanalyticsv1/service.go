// Package tradeoffanalyticsv1 is a client for the Watson Tradeoff
// Analytics API, which finds the Pareto optimal options of a decision
// problem.
package tradeoffanalyticsv1

import (
	"net/url"

	"github.com/watson-developer-cloud/watson-go/internal/apiquery"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

const (
	// DefaultServiceName is the name credentials are looked up under, e.g.
	// TRADEOFF_ANALYTICS_USERNAME.
	DefaultServiceName = "tradeoff_analytics"
	DefaultServiceURL  = "https://gateway.watsonplatform.net/tradeoff-analytics/api"
)

// Service is the Tradeoff Analytics client. Create it with [NewService].
// The API is not versioned by date, so no version parameter is sent.
type Service struct {
	Options  []option.RequestOption
	Dilemmas *DilemmaService
}

// NewService generates a new client with the default option read from the
// environment (TRADEOFF_ANALYTICS_URL, TRADEOFF_ANALYTICS_USERNAME, ...).
// The option passed in as arguments are applied after these default
// arguments.
func NewService(opts ...option.RequestOption) (r *Service) {
	defaults := []option.RequestOption{
		option.WithBaseURL(DefaultServiceURL),
		option.WithServiceCredentials(DefaultServiceName),
	}
	opts = append(defaults, opts...)

	r = &Service{Options: opts}
	r.Dilemmas = NewDilemmaService(opts...)
	return
}

func analytics(operationID string) option.RequestOption {
	return requestconfig.WithAnalytics(DefaultServiceName, "V1", operationID)
}

func urlQuery(params any) url.Values {
	return apiquery.MarshalWithSettings(params, apiquery.QuerySettings{
		ArrayFormat: apiquery.ArrayQueryFormatComma,
	})
}
