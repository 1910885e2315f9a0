package samplesheet

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	simple_util "github.com/liserjrqlxue/simple-util"
)

// ReadLibrarySheet reads a library sheet, either comma separated text or an .xlsx workbook.
func ReadLibrarySheet(path string) (*LibrarySheet, error) {
	var (
		lines []string
		err   error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		lines, err = readXlsxLines(path)
	} else {
		lines, err = readTextLines(path)
	}
	if err != nil {
		return nil, err
	}
	library, err := ParseLibrarySheet(lines)
	if err != nil {
		return nil, fmt.Errorf("library sheet %q: %w", path, err)
	}
	return library, nil
}

func readTextLines(path string) (lines []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read library sheet: %w", err)
	}
	defer simple_util.DeferClose(file)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read library sheet %q: %w", path, err)
	}
	return lines, nil
}

// readXlsxLines joins the cells of the first sheet into comma separated lines.
func readXlsxLines(path string) ([]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library sheet: %w", err)
	}
	sheets := xlsx.GetSheetMap()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("read library sheet %q: no sheet", path)
	}
	var index []int
	for i := range sheets {
		index = append(index, i)
	}
	sort.Ints(index)
	rows, err := xlsx.GetRows(sheets[index[0]])
	if err != nil {
		return nil, fmt.Errorf("read library sheet %q: %w", path, err)
	}
	var lines = make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return lines, nil
}

// ParseLibrarySheet splits lines into segments.
// [Header] lines become key,value pairs, every other segment keeps its raw lines.
func ParseLibrarySheet(lines []string) (*LibrarySheet, error) {
	library := &LibrarySheet{
		Segments: make(map[string]Segment),
	}
	var current Segment
	for i, line := range lines {
		line = strings.TrimRight(strings.TrimRightFunc(line, unicode.IsSpace), ",")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			current = library.open(line)
			continue
		}
		switch segment := current.(type) {
		case *HeaderSegment:
			key, value, _ := strings.Cut(line, ",")
			segment.set(key, value)
		case *RowSegment:
			segment.Lines = append(segment.Lines, line)
		default:
			return nil, fmt.Errorf("%w: line %d %q", ErrMalformedSegment, i+1, line)
		}
	}
	return library, nil
}

// open starts a segment, a repeated name starts it over
func (l *LibrarySheet) open(name string) Segment {
	var segment Segment
	if name == HeaderSection {
		segment = newHeaderSegment(name)
	} else {
		segment = &RowSegment{name: name}
	}
	if _, ok := l.Segments[name]; !ok {
		l.Order = append(l.Order, name)
	}
	l.Segments[name] = segment
	return segment
}

// Header returns the [Header] segment.
func (l *LibrarySheet) Header() (*HeaderSegment, bool) {
	header, ok := l.Segments[HeaderSection].(*HeaderSegment)
	return header, ok
}

// Rows returns a raw line segment by name.
func (l *LibrarySheet) Rows(name string) (*RowSegment, bool) {
	rows, ok := l.Segments[name].(*RowSegment)
	return rows, ok
}

// LibraryPrepKit returns the LibraryPrepKit parameter of [Header].
func (l *LibrarySheet) LibraryPrepKit() (string, error) {
	header, ok := l.Header()
	if !ok {
		return "", fmt.Errorf("%w: no %s segment", ErrMissingLibraryPrepKit, HeaderSection)
	}
	kit, ok := header.Get("LibraryPrepKit")
	if !ok {
		return "", ErrMissingLibraryPrepKit
	}
	return kit, nil
}

// Data returns the column header and data rows of [Data].
func (l *LibrarySheet) Data() (header string, rows []string, err error) {
	data, ok := l.Rows(DataSection)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrMissingSegment, DataSection)
	}
	if len(data.Lines) == 0 {
		return "", nil, fmt.Errorf("%w: %s has no column header", ErrMissingSegment, DataSection)
	}
	return data.Lines[0], data.Lines[1:], nil
}
