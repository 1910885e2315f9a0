package samplesheet

import (
	"fmt"

	"github.com/beevik/etree"
)

// read length element paths, relative to the document root, in output order
var readLengthPaths = []string{
	"Setup/Read1",
	"Setup/Read2",
}

// ReadRunParameters reads the read lengths from a RunParameters.xml file.
func ReadRunParameters(path string) (ReadLengths, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("read run parameters %q: %w", path, err)
	}
	return parseRunParameters(doc, path)
}

func parseRunParameters(doc *etree.Document, path string) (ReadLengths, error) {
	var reads = ReadLengths{ReadsSection}
	root := doc.Root()
	if root != nil {
		for _, p := range readLengthPaths {
			if elem := root.FindElement(p); elem != nil {
				reads = append(reads, elem.Text())
			}
		}
	}
	if len(reads) == 1 {
		return nil, fmt.Errorf("%w: %s or %s in %q", ErrMissingReadLength, readLengthPaths[0], readLengthPaths[1], path)
	}
	return reads, nil
}
