package analysis

import "strings"

// Concept is a domain signal detected in a script.
type Concept string

// Concept catalog, in reporting order.
const (
	MessageManipulation  Concept = "Message manipulation"
	BodyProcessing       Concept = "Body processing"
	HeaderManipulation   Concept = "Header manipulation"
	PropertyManipulation Concept = "Property manipulation"
	MessageLogging       Concept = "Message logging"
	CredentialManagement Concept = "Credential management"
	XMLProcessing        Concept = "XML processing"
	CSVProcessing        Concept = "CSV processing"
)

// SecureStoreIdentifier names the credential service whose presence signals CredentialManagement.
const SecureStoreIdentifier = "SecureStoreService"

// Predicate reports whether a concept is present in raw script content.
type Predicate func(content string) bool

type rule struct {
	concept Concept
	match   Predicate
}

var catalog = []rule{
	{MessageManipulation, containsAny("Message")},
	{BodyProcessing, containsAny("getBody", "setBody")},
	{HeaderManipulation, containsAny("getHeader", "setHeader")},
	{PropertyManipulation, containsAny("getProperty", "setProperty")},
	{MessageLogging, containsAny("messageLog")},
	{CredentialManagement, containsAny(SecureStoreIdentifier)},
	{XMLProcessing, containsFold("xml")},
	{CSVProcessing, containsFold("csv")},
}

// Catalog returns every known concept in reporting order.
func Catalog() []Concept {
	out := make([]Concept, len(catalog))
	for i, r := range catalog {
		out[i] = r.concept
	}
	return out
}

// PredicateFor returns the detection predicate of c.
func PredicateFor(c Concept) (Predicate, bool) {
	for _, r := range catalog {
		if r.concept == c {
			return r.match, true
		}
	}
	return nil, false
}

// DetectConcepts returns the concepts present in content, in catalog order.
func DetectConcepts(content string) []Concept {
	var out []Concept
	for _, r := range catalog {
		if r.match(content) {
			out = append(out, r.concept)
		}
	}
	return out
}

func containsAny(needles ...string) Predicate {
	return func(content string) bool {
		for _, n := range needles {
			if strings.Contains(content, n) {
				return true
			}
		}
		return false
	}
}

func containsFold(needle string) Predicate {
	return func(content string) bool {
		return strings.Contains(strings.ToLower(content), needle)
	}
}
