package refdata

// Regulation is one entry of the static regulation database. Entries are
// immutable reference data; the engine never mutates them at runtime.
type Regulation struct {
	ID                  string `yaml:"id" json:"id"`
	Name                string `yaml:"name" json:"name"`
	RegulationNumber    string `yaml:"regulation_number" json:"regulation_number"`
	Scope               string `yaml:"scope" json:"scope"`
	RequirementsSummary string `yaml:"requirements_summary" json:"requirements_summary"`
	// Status is one of Active, Upcoming, Under Review.
	Status string `yaml:"status" json:"status"`
	// Region is one of European Union, Asia-Pacific, Other Regions.
	Region             string `yaml:"region" json:"region"`
	Country            string `yaml:"country" json:"country"`
	Authority          string `yaml:"authority" json:"authority"`
	OfficialURL        string `yaml:"official_url" json:"official_url"`
	LegalReference     string `yaml:"legal_reference" json:"legal_reference"`
	VerificationStatus string `yaml:"verification_status" json:"verification_status"`
	EURLexLink         string `yaml:"eur_lex_link,omitempty" json:"eur_lex_link,omitempty"`
}

// Verified reports whether the regulation entry has been verified against
// its official source.
func (r Regulation) Verified() bool {
	return r.VerificationStatus == "Verified"
}

// RegionStats summarizes the regulation database for one region.
type RegionStats struct {
	Count    int `json:"count"`
	Active   int `json:"active"`
	Verified int `json:"verified"`
}

// VerifiedRegulations returns the verified subset of the database in
// database order.
func (ds *Dataset) VerifiedRegulations() []Regulation {
	var out []Regulation
	for _, reg := range ds.Regulations {
		if reg.Verified() {
			out = append(out, reg)
		}
	}
	return out
}

// RegulationsByRegion returns the regulations for one region in database
// order. An empty region returns the whole database.
func (ds *Dataset) RegulationsByRegion(region string) []Regulation {
	if region == "" {
		out := make([]Regulation, len(ds.Regulations))
		copy(out, ds.Regulations)
		return out
	}
	var out []Regulation
	for _, reg := range ds.Regulations {
		if reg.Region == region {
			out = append(out, reg)
		}
	}
	return out
}

// RegulationByName returns the regulation with the given name, if any.
func (ds *Dataset) RegulationByName(name string) (Regulation, bool) {
	for _, reg := range ds.Regulations {
		if reg.Name == name {
			return reg, true
		}
	}
	return Regulation{}, false
}

// RegionalStats aggregates count/active/verified tallies per region.
func (ds *Dataset) RegionalStats() map[string]RegionStats {
	stats := make(map[string]RegionStats)
	for _, reg := range ds.Regulations {
		s := stats[reg.Region]
		s.Count++
		if reg.Status == "Active" {
			s.Active++
		}
		if reg.Verified() {
			s.Verified++
		}
		stats[reg.Region] = s
	}
	return stats
}

// VerifiedSourceURLs returns the official URLs of all verified regulations,
// skipping placeholder values.
func (ds *Dataset) VerifiedSourceURLs() []string {
	var urls []string
	for _, reg := range ds.VerifiedRegulations() {
		if reg.OfficialURL != "" && reg.OfficialURL != "TBD" {
			urls = append(urls, reg.OfficialURL)
		}
	}
	return urls
}
