package customizer

import (
	"clipworks-service/internal/catalog"
	"clipworks-service/internal/domain"
)

// Draft is one in-progress order configuration. Length and features are
// stored as catalog display names since that is what submitted orders
// carry; mutations on Customizer take catalog IDs.
type Draft struct {
	VideoType   string
	VideoLength string
	Features    []string
	FileLink    string
	Notes       string
	Name        string
	Email       string
	Phone       string
	Company     string
	TotalPrice  int64
}

// ContactInfo carries the fields collected at checkout.
type ContactInfo struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// Customizer holds the draft for a single configuration session. It is a
// plain state holder: every operation is total and none of them do IO.
// It is not safe for concurrent use; one session owns one Customizer.
type Customizer struct {
	draft Draft
}

func New() *Customizer {
	c := &Customizer{}
	c.Reset()
	return c
}

// SetVideoType replaces the video type. Type has no price effect, and an
// id with no catalog match is kept verbatim as the label.
func (c *Customizer) SetVideoType(id string) {
	if e, ok := catalog.VideoTypeByID(id); ok {
		c.draft.VideoType = e.Name
		return
	}
	c.draft.VideoType = id
}

// SetVideoLength replaces the length tier and recomputes the total. An id
// with no catalog match is kept verbatim and prices at 0.
func (c *Customizer) SetVideoLength(id string) {
	if e, ok := catalog.LengthByID(id); ok {
		c.draft.VideoLength = e.Name
	} else {
		c.draft.VideoLength = id
	}
	c.recompute()
}

// ToggleFeature adds the feature if absent and removes it if present, then
// recomputes the total from scratch. Insertion order is preserved for the
// remaining features.
func (c *Customizer) ToggleFeature(id string) {
	name := id
	if e, ok := catalog.FeatureByID(id); ok {
		name = e.Name
	}

	removed := false
	for i, f := range c.draft.Features {
		if f == name {
			c.draft.Features = append(c.draft.Features[:i], c.draft.Features[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		c.draft.Features = append(c.draft.Features, name)
	}
	c.recompute()
}

func (c *Customizer) SetFileLink(link string) {
	c.draft.FileLink = link
}

func (c *Customizer) SetNotes(notes string) {
	c.draft.Notes = notes
}

// SetContactInfo merges the checkout fields into the draft. No format
// validation happens here; the submission gateway is the validation
// boundary.
func (c *Customizer) SetContactInfo(info ContactInfo) {
	c.draft.Name = info.Name
	c.draft.Email = info.Email
	c.draft.Phone = info.Phone
	c.draft.Company = info.Company
}

// Reset restores the draft to the state of a freshly constructed session.
func (c *Customizer) Reset() {
	c.draft = Draft{
		VideoType:   catalog.DefaultVideoType,
		VideoLength: catalog.DefaultVideoLength,
		Features:    []string{},
	}
	c.recompute()
}

// Snapshot returns a copy of the current draft. Mutating the returned
// value does not affect the session.
func (c *Customizer) Snapshot() Draft {
	d := c.draft
	d.Features = append([]string(nil), c.draft.Features...)
	if d.Features == nil {
		d.Features = []string{}
	}
	return d
}

// recompute derives the total from the current length and feature set.
// Always from scratch, never incrementally.
func (c *Customizer) recompute() {
	total := catalog.LengthPrice(c.draft.VideoLength)
	for _, f := range c.draft.Features {
		total += catalog.FeaturePrice(f)
	}
	c.draft.TotalPrice = total
}

// InsertOrder converts the draft into the persistence payload, mapping
// empty optional fields to nil so stored records are uniformly shaped.
func (d Draft) InsertOrder() domain.InsertOrder {
	return domain.InsertOrder{
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Company:     optional(d.Company),
		VideoType:   d.VideoType,
		VideoLength: d.VideoLength,
		Features:    append([]string(nil), d.Features...),
		FileLink:    optional(d.FileLink),
		Notes:       optional(d.Notes),
		TotalPrice:  d.TotalPrice,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
