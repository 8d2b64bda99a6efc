package entity

// AttachmentKind distinguishes the two representations an attachment can take.
type AttachmentKind int

const (
	// AttachmentNone is the zero value: no file selected or persisted.
	AttachmentNone AttachmentKind = iota
	// AttachmentLocal is a newly selected local file, not yet persisted.
	AttachmentLocal
	// AttachmentRemote is a URL reference to an already-persisted file.
	AttachmentRemote
)

// Attachment is a tagged union over the two states a file field can be in:
// a local file selected for upload, or a remote URL of a persisted file.
// Exactly one representation is active at submission time.
type Attachment struct {
	kind     AttachmentKind
	filename string
	content  []byte
	url      string
}

// LocalFile returns an attachment backed by a newly selected local file.
func LocalFile(filename string, content []byte) Attachment {
	return Attachment{kind: AttachmentLocal, filename: filename, content: content}
}

// RemoteURL returns an attachment referencing an already-persisted file by URL.
func RemoteURL(url string) Attachment {
	return Attachment{kind: AttachmentRemote, url: url}
}

// Kind returns which representation is active.
func (a Attachment) Kind() AttachmentKind { return a.kind }

// IsLocal reports whether the attachment is a local file pending upload.
func (a Attachment) IsLocal() bool { return a.kind == AttachmentLocal }

// IsZero reports whether no file is present in either representation.
func (a Attachment) IsZero() bool { return a.kind == AttachmentNone }

// Filename returns the local file name. Empty for remote attachments.
func (a Attachment) Filename() string { return a.filename }

// Content returns the local file bytes. Nil for remote attachments.
func (a Attachment) Content() []byte { return a.content }

// URL returns the persisted file URL. Empty for local attachments.
func (a Attachment) URL() string { return a.url }
