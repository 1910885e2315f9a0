package samplesheet

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// AdjustDataHeader renames the [Data] columns for schema, keeping their order.
// index2 is the position of Index2Sequence in the untransformed header.
func AdjustDataHeader(header []string, schema KitSchema, index2 int) []string {
	if schema.DropIndex2 {
		header = header[:schema.cut(index2)]
	}
	var adjusted = make([]string, len(header))
	for i, col := range header {
		if name, ok := schema.Renames[col]; ok {
			adjusted[i] = name
		} else {
			adjusted[i] = col
		}
	}
	return adjusted
}

// AdjustSample reverse complements the index2 value of a data row,
// or truncates the row like the header when schema drops index2.
func AdjustSample(sample []string, schema KitSchema, index2 int) ([]string, error) {
	if schema.DropIndex2 {
		cut := schema.cut(index2)
		if len(sample) < cut {
			return nil, fmt.Errorf("%w: %d columns, want at least %d", ErrMalformedRow, len(sample), cut)
		}
		return sample[:cut], nil
	}
	if len(sample) <= index2 {
		return nil, fmt.Errorf("%w: %d columns, no %s at column %d", ErrMalformedRow, len(sample), Index2Column, index2+1)
	}
	var adjusted = append([]string(nil), sample...)
	adjusted[index2] = ReverseComplement(sample[index2])
	return adjusted, nil
}

// BuildSampleSheet renders the [Reads], [Settings] and [Data] blocks.
func BuildSampleSheet(reads ReadLengths, library *LibrarySheet, adapters *AdapterTable) ([]byte, error) {
	kit, err := library.LibraryPrepKit()
	if err != nil {
		return nil, err
	}
	settings, err := adapters.Settings(kit)
	if err != nil {
		return nil, err
	}
	header, samples, err := library.Data()
	if err != nil {
		return nil, err
	}
	columns := strings.Split(header, ",")
	index2 := indexOf(columns, Index2Column)
	if index2 < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingIndexColumn, header)
	}
	schema := SchemaFor(kit)

	var buf bytes.Buffer
	for _, line := range reads {
		writeLine(&buf, line)
	}
	writeLine(&buf, SettingsSection)
	for _, setting := range settings {
		writeLine(&buf, setting.Key+","+setting.Value)
	}
	writeLine(&buf, DataSection)
	writeLine(&buf, strings.Join(AdjustDataHeader(columns, schema, index2), ","))
	for i, line := range samples {
		sample, err := AdjustSample(strings.Split(line, ","), schema, index2)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", DataSection, i+1, err)
		}
		writeLine(&buf, strings.Join(sample, ","))
	}
	return buf.Bytes(), nil
}

// WriteSampleSheet renders the sample sheet and writes it to a new file at path.
// An existing path is never overwritten and no partial file is left behind.
func WriteSampleSheet(path string, reads ReadLengths, library *LibrarySheet, adapters *AdapterTable) error {
	content, err := BuildSampleSheet(reads, library, adapters)
	if err != nil {
		return err
	}
	return writeNewFile(path, content)
}

func writeNewFile(path string, content []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %q", ErrOutputAlreadyExists, path)
		}
		return fmt.Errorf("write sample sheet: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("write sample sheet: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if _, err = file.Write(content); err != nil {
		return fmt.Errorf("write sample sheet: %w", err)
	}
	return nil
}

func writeLine(buf *bytes.Buffer, line string) {
	buf.WriteString(line)
	buf.WriteByte('\n')
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
