// Package catalog holds the site's static reference data: the regions and
// cities served, the treatment services, and the FAQ sets shown on each
// kind of page.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vimldn/invis/content"
	"github.com/vimldn/invis/models"
	"github.com/vimldn/invis/slug"
)

// FAQ contexts
const (
	FAQHome     = "home"
	FAQServices = "services"
	FAQLocation = "location"
)

// ErrNotFound is returned by lookups that match nothing
var ErrNotFound = errors.New("not found")

//go:embed data.yaml
var embedded []byte

// Catalog is the parsed reference data. It is read-only after Parse.
type Catalog struct {
	Regions  []models.Region         `yaml:"regions"`
	Services []models.Service        `yaml:"services"`
	FAQSets  map[string][]models.FAQ `yaml:"faqs"`
}

// Load parses the embedded data set
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes a catalog document
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Regions) == 0 {
		return nil, fmt.Errorf("catalog has no regions")
	}
	for _, s := range c.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog service %q has no id", s.Title)
		}
	}
	return &c, nil
}

// Cities returns every city in region order. Names listed in more than one
// region appear once per listing.
func (c *Catalog) Cities() []string {
	var all []string
	for _, r := range c.Regions {
		all = append(all, r.Cities...)
	}
	return all
}

// City resolves a routing slug to a city name. The first city whose slug
// matches wins.
func (c *Catalog) City(citySlug string) (string, error) {
	for _, name := range c.Cities() {
		if slug.ForName(name) == citySlug {
			return name, nil
		}
	}
	return "", fmt.Errorf("city %q: %w", citySlug, ErrNotFound)
}

// SearchCities filters each region to the cities whose name contains query,
// ignoring case, and drops regions left empty. An empty query returns
// every region.
func (c *Catalog) SearchCities(query string) []models.Region {
	if query == "" {
		return c.Regions
	}

	result := []models.Region{}
	for _, r := range c.Regions {
		var matched []string
		for _, city := range r.Cities {
			if content.ContainsFold(city, query) {
				matched = append(matched, city)
			}
		}
		if len(matched) > 0 {
			result = append(result, models.Region{Name: r.Name, Cities: matched})
		}
	}
	return result
}

// NearbyCities returns up to limit cities other than name, in catalog order
func (c *Catalog) NearbyCities(name string, limit int) []string {
	nearby := []string{}
	for _, city := range c.Cities() {
		if len(nearby) >= limit {
			break
		}
		if city != name {
			nearby = append(nearby, city)
		}
	}
	return nearby
}

// Service looks a service up by id
func (c *Catalog) Service(id string) (models.Service, error) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, fmt.Errorf("service %q: %w", id, ErrNotFound)
}

// OtherServices returns up to limit services excluding id
func (c *Catalog) OtherServices(id string, limit int) []models.Service {
	others := []models.Service{}
	for _, s := range c.Services {
		if len(others) >= limit {
			break
		}
		if s.ID != id {
			others = append(others, s)
		}
	}
	return others
}

// Treatments returns the service titles offered in the lead form
func (c *Catalog) Treatments() []string {
	titles := make([]string, len(c.Services))
	for i, s := range c.Services {
		titles[i] = s.Title
	}
	return titles
}

// FAQs returns the question set for a page context
func (c *Catalog) FAQs(context string) ([]models.FAQ, error) {
	faqs, ok := c.FAQSets[context]
	if !ok {
		return nil, fmt.Errorf("faq context %q: %w", context, ErrNotFound)
	}
	return faqs, nil
}
