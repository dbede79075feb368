package office

import "fmt"

// Format is the file format a scan is produced in.
// The zero value is not a valid format.
type Format int

// Supported scan formats.
const (
	FormatImage Format = iota + 1
	FormatPDF
	FormatText
)

// formatNames maps each format to its name, file-name prefix and extension.
var formatNames = map[Format]struct {
	name   string
	prefix string
	ext    string
}{
	FormatImage: {name: "image", prefix: "ImageScan", ext: "jpg"},
	FormatPDF:   {name: "pdf", prefix: "PDFScan", ext: "pdf"},
	FormatText:  {name: "text", prefix: "TextScan", ext: "txt"},
}

// String returns the lower-case format name, or "format(N)" for unknown values.
func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n.name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// ParseFormat converts a format name (image, pdf, text) into a Format.
func ParseFormat(s string) (Format, error) {
	for f, n := range formatNames {
		if n.name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FileNameFor derives the file name of the n-th scan in format f,
// e.g. FileNameFor(FormatPDF, 2) == "PDFScan2.pdf".
func FileNameFor(f Format, n int) (string, error) {
	names, ok := formatNames[f]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	return fmt.Sprintf("%s%d.%s", names.prefix, n, names.ext), nil
}

// Document is a scanned artifact. It is immutable once created and has no
// reference back to the device that produced it.
type Document struct {
	format   Format
	fileName string
}

// newDocument builds the document for the n-th scan in format f.
func newDocument(f Format, n int) (*Document, error) {
	name, err := FileNameFor(f, n)
	if err != nil {
		return nil, err
	}
	return &Document{format: f, fileName: name}, nil
}

// Format returns the document format.
func (d *Document) Format() Format {
	return d.format
}

// FileName returns the generated file name.
func (d *Document) FileName() string {
	return d.fileName
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return d.fileName
}
