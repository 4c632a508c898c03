package catalog

// Snapshot is a read-only view of the catalog.
type Snapshot struct {
	Services []ServiceInfo `json:"services" doc:"Declared services in declaration order"`
}

// ServiceInfo describes one service.
type ServiceInfo struct {
	Name        string    `json:"name"                  doc:"Service name"                 example:"greeting"`
	Description string    `json:"description,omitempty" doc:"Service description"`
	APIs        []APIInfo `json:"apis"                  doc:"Endpoints in registration order"`
}

// APIInfo describes one endpoint.
type APIInfo struct {
	Name   string `json:"name"   doc:"Endpoint name"  example:"get"`
	Path   string `json:"path"   doc:"Path pattern"   example:"/greeting/{name}"`
	Method string `json:"method" doc:"HTTP method"    example:"GET"`
	Access Access `json:"access" doc:"Access level"   enum:"public,auth,private"`
}

// Snapshot copies the current table.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := Snapshot{Services: make([]ServiceInfo, 0, len(c.services))}
	for _, svc := range c.services {
		info := ServiceInfo{
			Name:        svc.name,
			Description: svc.doc,
			APIs:        make([]APIInfo, 0, len(svc.endpoints)),
		}
		for _, ep := range svc.endpoints {
			info.APIs = append(info.APIs, APIInfo{
				Name:   ep.Name,
				Path:   ep.Path,
				Method: ep.Method,
				Access: ep.Access(),
			})
		}
		out.Services = append(out.Services, info)
	}
	return out
}
