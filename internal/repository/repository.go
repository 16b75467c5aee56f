// Package repository defines the storage interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite).
package repository

import (
	"context"
	"encoding/json"
	"time"
)

// Domain identifies one content document. Each domain maps to exactly
// one stored document, loaded and saved as a whole.
type Domain string

const (
	DomainProfile     Domain = "profile"
	DomainClassroom   Domain = "classroom"
	DomainBrainPop    Domain = "brainpop"
	DomainTechieBites Domain = "techiebites"
	DomainTimePass    Domain = "timepass"
	DomainGeneral     Domain = "general"
)

// Domains lists every known domain, in site order.
var Domains = []Domain{
	DomainProfile,
	DomainClassroom,
	DomainBrainPop,
	DomainTechieBites,
	DomainTimePass,
	DomainGeneral,
}

// ParseDomain maps a URL path segment onto a known domain.
func ParseDomain(s string) (Domain, bool) {
	for _, d := range Domains {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Revision is one saved version of a document, kept for auditing.
type Revision struct {
	ID      string
	Domain  Domain
	Data    json.RawMessage
	SavedAt time.Time
}

// ContentRepository stores one JSON document per domain.
//
// Load returns found=false (and no error) when the domain has never been
// saved; an absent document is an expected state, not a failure. Save
// replaces the stored document wholesale and records a revision.
type ContentRepository interface {
	Load(ctx context.Context, domain Domain) (data json.RawMessage, found bool, err error)
	Save(ctx context.Context, domain Domain, data json.RawMessage) error
	Revisions(ctx context.Context, domain Domain, limit int) ([]Revision, error)
}
