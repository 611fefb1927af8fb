package apijson

type status uint8

const (
	missing status = iota
	null
	invalid
	valid
)

// Field records how a single response field appeared in the payload.
type Field struct {
	raw    string
	status status
}

// IsMissing reports whether the key was absent from the payload.
func (j Field) IsMissing() bool { return j.status == missing }

// IsNull reports whether the key was present with a JSON null.
func (j Field) IsNull() bool { return j.status == null }

// IsInvalid reports whether the key was present but could not be decoded.
func (j Field) IsInvalid() bool { return j.status == invalid }

// Raw returns the raw JSON text of the value, or "" when missing.
func (j Field) Raw() string { return j.raw }
