// Package schemas holds the JSON Schema files shipped with the binary.
package schemas

import "embed"

// Files contains every *.schema.json in this directory
//
//go:embed *.schema.json
var Files embed.FS

// ResumeDocumentFile is the file name of the resume document schema
const ResumeDocumentFile = "resume_document.schema.json"

// ResumeDocument returns the resume document schema.
func ResumeDocument() []byte {
	data, err := Files.ReadFile(ResumeDocumentFile)
	if err != nil {
		panic("embedded schema missing: " + err.Error())
	}
	return data
}
