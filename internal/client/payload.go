package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"blogdesk/internal/domain/entity"
)

// Multipart field names expected by the blog API.
const (
	fieldAuthorName          = "authorName"
	fieldTitle               = "title"
	fieldCategory            = "category"
	fieldSubCategory         = "subCategory"
	fieldSummary             = "summary"
	fieldContent             = "content"
	fieldTravelTags          = "travelTags"
	fieldPublishingDate      = "publishingDate"
	fieldAuthorImage         = "authorImage"
	fieldExistingAuthorImage = "existingAuthorImage"
	fieldMedia               = "media"
	fieldExistingMedia       = "existingMedia"
)

// Payload is the transmittable form of a blog draft, shared by create and
// update. Scalar fields travel as plain multipart values; the author image
// and media entries are tagged attachments that encode either as binary
// parts (new local files) or as "existing" URL reference fields (persisted
// files the server should keep).
type Payload struct {
	AuthorName     string
	Title          string
	Category       string
	SubCategory    string
	Summary        string
	Content        string
	TravelTags     []string
	PublishingDate string

	// AuthorImage is the active representation of the author image.
	// Zero value means no image at all.
	AuthorImage entity.Attachment

	// Media is the active media set. Any local files present replace the
	// persisted set entirely; otherwise remote URLs are sent as references.
	Media []entity.Attachment
}

// Encode writes the payload as a multipart/form-data body and returns the
// body and its content type (which carries the boundary).
//
// Encoding rules:
//   - scalar fields are written verbatim; subCategory is always present,
//     empty when unset
//   - travelTags is a JSON-encoded array
//   - a local author image becomes a binary "authorImage" part; a remote one
//     becomes the "existingAuthorImage" value so the server can distinguish
//     "keep current" from "no image"
//   - local media files become repeated binary "media" parts and replace the
//     persisted set; with no local files, remote URLs are JSON-encoded under
//     "existingMedia" only when non-empty
func (p *Payload) Encode() (body *bytes.Buffer, contentType string, err error) {
	body = &bytes.Buffer{}
	w := multipart.NewWriter(body)

	tags := p.TravelTags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, "", fmt.Errorf("encode travel tags: %w", err)
	}

	fields := map[string]string{
		fieldAuthorName:     p.AuthorName,
		fieldTitle:          p.Title,
		fieldCategory:       p.Category,
		fieldSubCategory:    p.SubCategory,
		fieldSummary:        p.Summary,
		fieldContent:        p.Content,
		fieldTravelTags:     string(tagsJSON),
		fieldPublishingDate: p.PublishingDate,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if err := encodeAuthorImage(w, p.AuthorImage); err != nil {
		return nil, "", err
	}
	if err := encodeMedia(w, p.Media); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

func encodeAuthorImage(w *multipart.Writer, img entity.Attachment) error {
	if img.IsLocal() {
		if len(img.Content()) == 0 {
			return nil
		}
		return writeFilePart(w, fieldAuthorImage, img)
	}
	if img.URL() != "" {
		if err := w.WriteField(fieldExistingAuthorImage, img.URL()); err != nil {
			return fmt.Errorf("write field %s: %w", fieldExistingAuthorImage, err)
		}
	}
	return nil
}

func encodeMedia(w *multipart.Writer, media []entity.Attachment) error {
	var locals []entity.Attachment
	var remotes []string
	for _, m := range media {
		if m.IsLocal() {
			locals = append(locals, m)
		} else if m.URL() != "" {
			remotes = append(remotes, m.URL())
		}
	}

	// New local files replace the persisted set entirely; the remote URLs
	// are only sent when there is nothing new to upload.
	if len(locals) > 0 {
		for _, m := range locals {
			if err := writeFilePart(w, fieldMedia, m); err != nil {
				return err
			}
		}
		return nil
	}
	if len(remotes) > 0 {
		urlsJSON, err := json.Marshal(remotes)
		if err != nil {
			return fmt.Errorf("encode existing media: %w", err)
		}
		if err := w.WriteField(fieldExistingMedia, string(urlsJSON)); err != nil {
			return fmt.Errorf("write field %s: %w", fieldExistingMedia, err)
		}
	}
	return nil
}

func writeFilePart(w *multipart.Writer, field string, att entity.Attachment) error {
	part, err := w.CreateFormFile(field, att.Filename())
	if err != nil {
		return fmt.Errorf("create file part %s: %w", field, err)
	}
	if _, err := io.Copy(part, bytes.NewReader(att.Content())); err != nil {
		return fmt.Errorf("write file part %s: %w", field, err)
	}
	return nil
}
