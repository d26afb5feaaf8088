package rdfio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// xmlSchemaNamespace is the XML-Schema element namespace.
const xmlSchemaNamespace = "http://www.w3.org/2001/XMLSchema"

// Schema holds the namespace structure of one XML-Schema file.
type Schema struct {
	// Path is the file the schema was read from.
	Path string

	// TargetNamespace is the schema's targetNamespace attribute, or ""
	// when the schema declares none.
	TargetNamespace string

	// Imports lists the namespace attributes of all xs:import elements.
	Imports []string
}

// ScanSchema extracts the target namespace and import declarations from an
// XML-Schema file using token scanning; the schema body is not validated.
func ScanSchema(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	schema := &Schema{Path: path}
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XSD %s: %w", path, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Space != xmlSchemaNamespace {
			continue
		}
		switch start.Name.Local {
		case "schema":
			for _, attr := range start.Attr {
				if attr.Name.Local == "targetNamespace" && attr.Name.Space == "" {
					schema.TargetNamespace = attr.Value
				}
			}
		case "import":
			for _, attr := range start.Attr {
				if attr.Name.Local == "namespace" && attr.Name.Space == "" {
					schema.Imports = append(schema.Imports, attr.Value)
				}
			}
		}
	}

	return schema, nil
}

// FallbackNamespace names a schema that declares no target namespace,
// keeping it visible in the output instead of dropping it.
func (s *Schema) FallbackNamespace() string {
	return "file://" + filepath.Base(s.Path)
}

var xsdSniffRe = regexp.MustCompile(`(?i)<\s*[^>]*schema\b[^>]*"http://www\.w3\.org/2001/XMLSchema"`)

// LooksLikeSchema reports whether the file should be treated as an
// XML-Schema document: either by its .xsd extension or, for extensionless
// files, by sniffing the first kilobyte for the schema namespace.
func LooksLikeSchema(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xsd" {
		return true
	}
	if ext != "" {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 1024)
	n, _ := io.ReadFull(f, head)
	return xsdSniffRe.Match(head[:n])
}
