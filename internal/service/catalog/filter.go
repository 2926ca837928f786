package catalog

import (
	"strings"

	"github.com/jwalitptl/salon-api/internal/model"
)

// Filter returns the subsequence of services whose name contains query
// under case-insensitive comparison, preserving input order. An empty
// query returns the input unchanged.
func Filter(services []*model.Service, query string) []*model.Service {
	if query == "" {
		return services
	}

	needle := strings.ToLower(query)
	matches := make([]*model.Service, 0, len(services))
	for _, service := range services {
		if strings.Contains(strings.ToLower(service.Name), needle) {
			matches = append(matches, service)
		}
	}
	return matches
}
