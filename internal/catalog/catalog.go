// Package catalog is the process-start route table. Services are declared
// once, endpoints are registered through Register, and the resulting table
// can be read back as a Snapshot.
package catalog

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

// Access describes who may call an endpoint.
type Access string

const (
	// Public endpoints are reachable by anyone.
	Public Access = "public"
	// Auth endpoints are reachable with a verified bearer token.
	Auth Access = "auth"
	// Private endpoints are only callable from inside the process.
	Private Access = "private"
)

// Endpoint declares a single API of a service.
type Endpoint struct {
	Name        string
	Method      string
	Path        string
	Summary     string
	Description string

	// Expose makes the endpoint reachable from outside the process.
	Expose bool
	// Auth requires a bearer token. It implies Expose.
	Auth bool
}

// Access derives the access level. Auth takes precedence over Expose.
func (e Endpoint) Access() Access {
	switch {
	case e.Auth:
		return Auth
	case e.Expose:
		return Public
	default:
		return Private
	}
}

// Service is a named group of endpoints.
type Service struct {
	cat       *Catalog
	name      string
	doc       string
	endpoints []registered
}

type registered struct {
	Endpoint
	operationID string
}

// Name returns the service name.
func (s *Service) Name() string { return s.name }

// Catalog holds every declared service in declaration order. Private
// endpoints are mounted on an in-process router that is never attached to
// the server, so external callers cannot tell them apart from unknown paths.
type Catalog struct {
	mu       sync.RWMutex
	services []*Service
	byName   map[string]*Service

	internalMux *chi.Mux
	internalAPI huma.API
}

// New returns an empty catalog.
func New() *Catalog {
	mux := chi.NewMux()
	cfg := huma.DefaultConfig("Internal", "internal")
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	return &Catalog{
		byName:      make(map[string]*Service),
		internalMux: mux,
		internalAPI: humachi.New(mux, cfg),
	}
}

// Internal serves the private endpoints for in-process callers.
func (c *Catalog) Internal() http.Handler {
	return c.internalMux
}

// Service declares a service, or returns the one already declared under
// name. A non-empty doc replaces an empty description.
func (c *Catalog) Service(name, doc string) *Service {
	if name == "" {
		panic("catalog: service name is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if svc, ok := c.byName[name]; ok {
		if svc.doc == "" {
			svc.doc = doc
		}
		return svc
	}
	svc := &Service{cat: c, name: name, doc: doc}
	c.services = append(c.services, svc)
	c.byName[name] = svc
	return svc
}

// add records an endpoint and returns its operation ID.
func (c *Catalog) add(svc *Service, ep Endpoint) string {
	switch {
	case ep.Name == "":
		panic(fmt.Sprintf("catalog: endpoint name is required in service %q", svc.name))
	case ep.Method == "":
		panic(fmt.Sprintf("catalog: method is required for %s.%s", svc.name, ep.Name))
	case ep.Path == "":
		panic(fmt.Sprintf("catalog: path is required for %s.%s", svc.name, ep.Name))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range svc.endpoints {
		if existing.Name == ep.Name {
			panic(fmt.Sprintf("catalog: duplicate endpoint %s.%s", svc.name, ep.Name))
		}
	}
	opID := svc.name + "-" + ep.Name
	svc.endpoints = append(svc.endpoints, registered{Endpoint: ep, operationID: opID})
	return opID
}
