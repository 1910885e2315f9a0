package samplesheet

import (
	"go.uber.org/zap"
)

// Converter turns a RunParameters.xml and a library sheet into a sample sheet.
type Converter struct {
	Adapters *AdapterTable
	Logger   *zap.Logger
}

func NewConverter(adapters *AdapterTable, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		Adapters: adapters,
		Logger:   logger,
	}
}

// Convert reads runParameters and librarySheet and writes the sample sheet to output.
func (c *Converter) Convert(runParameters, librarySheet, output string) error {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reads, err := ReadRunParameters(runParameters)
	if err != nil {
		return err
	}
	logger.Debug("parsed run parameters",
		zap.String("path", runParameters),
		zap.Strings("reads", reads.Lengths()))

	library, err := ReadLibrarySheet(librarySheet)
	if err != nil {
		return err
	}
	logger.Debug("parsed library sheet",
		zap.String("path", librarySheet),
		zap.Strings("segments", library.Order))

	if err = WriteSampleSheet(output, reads, library, c.Adapters); err != nil {
		return err
	}
	kit, _ := library.LibraryPrepKit()
	logger.Info("wrote sample sheet",
		zap.String("output", output),
		zap.String("libraryPrepKit", kit))
	return nil
}
