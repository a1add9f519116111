package selection

import (
	"hash/fnv"

	"github.com/vimldn/invis/models"
)

// DefaultFurtherReadingCount is how many links an article page shows
const DefaultFurtherReadingCount = 3

// Pool is a fixed, ordered wheel of external links
type Pool []models.ReadingLink

// DefaultPool returns the site's further-reading links
func DefaultPool() Pool {
	return Pool{
		{URL: "https://www.invisalign.com", Label: "Invisalign (official site)"},
		{URL: "https://pubmed.ncbi.nlm.nih.gov/?term=invisalign", Label: "PubMed: Invisalign research"},
		{URL: "https://pubmed.ncbi.nlm.nih.gov/?term=clear+aligners", Label: "PubMed: Clear aligners research"},
		{URL: "https://www.mouthhealthy.org/all-topics-a-z/orthodontics", Label: "MouthHealthy (ADA): Orthodontics"},
		{URL: "https://www.nhs.uk/conditions/orthodontics/", Label: "NHS: Orthodontics"},
		{URL: "https://www.mayoclinic.org/tests-procedures/braces/about/pac-20384670", Label: "Mayo Clinic: Braces overview"},
		{URL: "https://www.cdc.gov/oralhealth", Label: "CDC: Oral health"},
		{URL: "https://www.ajodo.org", Label: "AJODO (orthodontic journal)"},
	}
}

// Hash is 32-bit FNV-1a over the bytes of key
func Hash(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// Pick returns up to count consecutive links starting at Hash(key) mod
// len(p), wrapping around the pool. The same key always yields the same
// links; an empty key is treated as "post".
func (p Pool) Pick(key string, count int) []models.ReadingLink {
	if len(p) == 0 || count <= 0 {
		return []models.ReadingLink{}
	}
	if key == "" {
		key = "post"
	}
	if count > len(p) {
		count = len(p)
	}

	start := int(Hash(key) % uint32(len(p)))
	picked := make([]models.ReadingLink, 0, count)
	for i := 0; i < count; i++ {
		picked = append(picked, p[(start+i)%len(p)])
	}
	return picked
}
