package scriptdex

import "github.com/kailas-cloud/scriptdex/internal/domain/resource"

// ResourceKind is the artifact type of a resource.
type ResourceKind string

// Resource kind constants.
const (
	ResourceScript        ResourceKind = "script"
	ResourceDocumentation ResourceKind = "documentation"
	ResourceMetadata      ResourceKind = "metadata"
)

// Resource is one raw file of an example, addressable by URI.
type Resource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Example     string
	Kind        ResourceKind
}

func resourceFromDomain(r resource.Resource) Resource {
	return Resource{
		URI:         r.URI,
		Name:        r.Name,
		Description: r.Description,
		MIMEType:    r.MIMEType,
		Example:     r.Example,
		Kind:        ResourceKind(r.Kind),
	}
}
