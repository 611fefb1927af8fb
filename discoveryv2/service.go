// Package discoveryv2 is a client for version 2 of the Watson Discovery
// API: projects, the collections that hold their documents, and queries
// across a project's collections.
package discoveryv2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/watson-developer-cloud/watson-go/internal/param"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

const (
	// DefaultServiceName is the name credentials are looked up under, e.g.
	// DISCOVERY_APIKEY.
	DefaultServiceName = "discovery"
	DefaultServiceURL  = "https://api.us-south.discovery.watson.cloud.ibm.com"
	DefaultVersion     = "2019-11-22"
)

// Service is the Watson Discovery v2 client. Create it with [NewService].
type Service struct {
	Options     []option.RequestOption
	Projects    *ProjectService
	Collections *CollectionService
}

// NewService generates a new client with the default option read from the
// environment (DISCOVERY_URL, DISCOVERY_APIKEY, ...). The option passed in
// as arguments are applied after these default arguments.
func NewService(opts ...option.RequestOption) (r *Service) {
	defaults := []option.RequestOption{
		option.WithBaseURL(DefaultServiceURL),
		option.WithVersion(DefaultVersion),
		option.WithServiceCredentials(DefaultServiceName),
	}
	opts = append(defaults, opts...)

	r = &Service{Options: opts}
	r.Projects = NewProjectService(opts...)
	r.Collections = NewCollectionService(opts...)
	return
}

func analytics(operationID string) option.RequestOption {
	return requestconfig.WithAnalytics(DefaultServiceName, "V2", operationID)
}

// Query searches the collections of a project. Without CollectionIDs every
// collection of the project is searched.
func (r *Service) Query(ctx context.Context, projectID string, body QueryParams, opts ...option.RequestOption) (res *QueryResponse, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("query")}, opts)
	if err = param.RequirePath("project_id", projectID); err != nil {
		return
	}
	path := fmt.Sprintf("v2/projects/%s/query", url.PathEscape(projectID))
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}
