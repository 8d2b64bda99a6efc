// Package draft manages the editable working copy of a blog before it is
// submitted. A Draft tracks the scalar fields, the raw tags input, and the
// selected local files alongside whatever the server already holds, and
// serializes itself into a transmittable payload.
package draft

import (
	"blogdesk/internal/client"
	"blogdesk/internal/domain/entity"
)

// Draft is the form state for creating or editing one blog. It is a plain
// mutable struct intended for single-owner use; it is not safe for
// concurrent mutation.
type Draft struct {
	AuthorName  string `validate:"required,min=3"`
	Title       string `validate:"required,min=5"`
	Category    string `validate:"required,min=3"`
	SubCategory string
	Summary     string `validate:"required,min=10"`
	Content     string `validate:"required,min=20"`

	// TagsInput is the raw comma-separated text the user typed. TravelTags
	// is its parsed form; SetTagsInput keeps the two in sync.
	TagsInput  string
	TravelTags []string

	// PublishingDate is a date-only ISO string.
	PublishingDate string

	persistedID          string
	persistedAuthorImage string
	persistedMedia       []string

	localAuthorImage entity.Attachment
	localMedia       []entity.Attachment
}

// New returns an empty draft dated today.
func New() *Draft {
	return &Draft{PublishingDate: entity.Today()}
}

// PopulateFrom loads the persisted blog into the draft for editing and
// clears any previously selected local files.
func (d *Draft) PopulateFrom(blog entity.Blog) {
	*d = Draft{
		AuthorName:           blog.AuthorName,
		Title:                blog.Title,
		Category:             blog.Category,
		SubCategory:          blog.SubCategory,
		Summary:              blog.Summary,
		Content:              blog.Content,
		TagsInput:            entity.JoinTags(blog.TravelTags),
		TravelTags:           append([]string(nil), blog.TravelTags...),
		PublishingDate:       blog.PublishingDate,
		persistedID:          blog.ID,
		persistedAuthorImage: blog.AuthorImage,
		persistedMedia:       append([]string(nil), blog.Media...),
	}
	if d.PublishingDate == "" {
		d.PublishingDate = entity.Today()
	}
}

// Reset returns the draft to the empty defaults of New.
func (d *Draft) Reset() {
	*d = Draft{PublishingDate: entity.Today()}
}

// ID returns the persisted blog id, empty for a new blog.
func (d *Draft) ID() string {
	return d.persistedID
}

// IsPersisted reports whether the draft edits an existing blog.
func (d *Draft) IsPersisted() bool {
	return d.persistedID != ""
}

// SetTagsInput stores the raw tags text and reparses TravelTags from it.
func (d *Draft) SetTagsInput(raw string) {
	d.TagsInput = raw
	d.TravelTags = entity.ParseTags(raw)
}

// SetAuthorImage selects a new local author image, superseding the persisted
// one for submission.
func (d *Draft) SetAuthorImage(filename string, content []byte) {
	d.localAuthorImage = entity.LocalFile(filename, content)
}

// HasAuthorImage reports whether the draft has any author image at all,
// local or persisted.
func (d *Draft) HasAuthorImage() bool {
	return d.localAuthorImage.IsLocal() || d.persistedAuthorImage != ""
}

// AddMedia selects a new local media file. Any local selection replaces the
// persisted media set on submission.
func (d *Draft) AddMedia(filename string, content []byte) {
	d.localMedia = append(d.localMedia, entity.LocalFile(filename, content))
}

// ClearMedia drops the local media selection, falling back to the persisted
// set on submission.
func (d *Draft) ClearMedia() {
	d.localMedia = nil
}

// Payload serializes the draft into the transmittable form. Local files win
// over persisted URLs; local media replaces the persisted set wholesale.
func (d *Draft) Payload() *client.Payload {
	p := &client.Payload{
		AuthorName:     d.AuthorName,
		Title:          d.Title,
		Category:       d.Category,
		SubCategory:    d.SubCategory,
		Summary:        d.Summary,
		Content:        d.Content,
		TravelTags:     append([]string(nil), d.TravelTags...),
		PublishingDate: d.PublishingDate,
	}

	if d.localAuthorImage.IsLocal() {
		p.AuthorImage = d.localAuthorImage
	} else if d.persistedAuthorImage != "" {
		p.AuthorImage = entity.RemoteURL(d.persistedAuthorImage)
	}

	if len(d.localMedia) > 0 {
		p.Media = append([]entity.Attachment(nil), d.localMedia...)
	} else {
		for _, url := range d.persistedMedia {
			p.Media = append(p.Media, entity.RemoteURL(url))
		}
	}
	return p
}
