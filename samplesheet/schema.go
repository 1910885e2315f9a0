package samplesheet

// Index2Column is the library sheet column holding the i5 index sequence.
const Index2Column = "Index2Sequence"

// library sheet column -> sample sheet column
var standardRenames = map[string]string{
	"SampleID":       "Sample_ID",
	"Name":           "Sample_Name",
	"Well":           "Sample_Well",
	"Index1Name":     "I7_Index_ID",
	"Index1Sequence": "index",
	"Index2Name":     "I5_Index_ID",
	"Index2Sequence": "index2",
	"Project":        "Sample_Project",
}

// KitSchema is the [Data] layout a library prep kit needs.
type KitSchema struct {
	Renames map[string]string
	// DropIndex2 cuts the header and every row before the column preceding Index2Sequence.
	DropIndex2 bool
}

var (
	standardSchema = KitSchema{Renames: standardRenames}
	i7OnlySchema   = KitSchema{Renames: standardRenames, DropIndex2: true}
)

var kitSchemas = map[string]KitSchema{
	"plexWell_i7_only": i7OnlySchema,
}

// SchemaFor returns the schema of kit, kits without a special layout share the standard one.
func SchemaFor(kit string) KitSchema {
	if schema, ok := kitSchemas[kit]; ok {
		return schema
	}
	return standardSchema
}

// cut returns the number of leading columns kept when DropIndex2 is set.
func (s KitSchema) cut(index2 int) int {
	if index2 < 1 {
		return 0
	}
	return index2 - 1
}
