// Package importer turns a raw bulk-upload payload into directory rows.
// The format is intentionally primitive: one profile per line, fields
// separated by literal commas, no quoting. Parsing stays separate from
// persistence so it can be tested without a database.
package importer

import (
	"strings"

	"github.com/MbarkyLyna/Alumni-Portal/internal/inference"
)

// Row is one parsed and inference-completed upload line.  Empty strings
// mean the field is absent; persistence maps those to NULL.
type Row struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	FamilyName string `json:"familyName"`
	Linkedin   string `json:"linkedin"`
	Facebook   string `json:"facebook"`
}

// ParseLines splits raw text into rows.  Blank lines and lines with an
// empty email field are dropped silently; there is no per-line error
// reporting.  Lines with fewer than five comma-separated values simply
// leave the trailing fields empty.  After splitting, missing names are
// filled from InferIdentity and missing links from GuessSocialLinks; only
// the fields that were actually missing are filled in.
func ParseLines(raw string) []Row {
	var out []Row
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := parseLine(line)
		if row.Email == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

// parseLine splits one line into up to five trimmed fields and completes
// the missing ones from the email shape.
func parseLine(line string) Row {
	parts := strings.Split(line, ",")
	field := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	row := Row{
		Email:      strings.ToLower(field(0)),
		Name:       field(1),
		FamilyName: field(2),
		Linkedin:   field(3),
		Facebook:   field(4),
	}
	if row.Email == "" {
		return row
	}

	if row.Name == "" || row.FamilyName == "" {
		if id, ok := inference.InferIdentity(row.Email); ok {
			if row.Name == "" {
				row.Name = id.Name
			}
			if row.FamilyName == "" {
				row.FamilyName = id.FamilyName
			}
		}
	}
	if row.Linkedin == "" || row.Facebook == "" {
		links := inference.GuessSocialLinks(row.Email)
		if row.Linkedin == "" {
			row.Linkedin = links.Linkedin
		}
		if row.Facebook == "" {
			row.Facebook = links.Facebook
		}
	}
	return row
}
