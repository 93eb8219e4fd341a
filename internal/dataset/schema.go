package dataset

import "fmt"

// DefaultPath is where the water potability CSV is expected when neither the
// --data flag, the config file, nor WATERQ_DATA_PATH overrides it.
const DefaultPath = "data/water_potability.csv"

// NumericColumns is the fixed set of measurement columns every water
// potability CSV must carry. Column types are not inferred from the data;
// a header that does not match this schema fails the load.
var NumericColumns = []string{
	"ph",
	"Hardness",
	"Solids",
	"Chloramines",
	"Sulfate",
	"Conductivity",
	"Organic_carbon",
	"Trihalomethanes",
	"Turbidity",
}

// LabelColumn is the binary potability label. It is optional at load time:
// without it the dataset still loads and only the potability page degrades.
const LabelColumn = "Potability"

// validateHeader checks the CSV header against the expected schema and maps
// each expected column to its position. Order of columns in the file is
// preserved; extra unknown columns are rejected rather than silently typed.
func validateHeader(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := pos[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		pos[name] = i
	}
	for _, name := range NumericColumns {
		if _, ok := pos[name]; !ok {
			return nil, fmt.Errorf("missing expected column %q", name)
		}
	}
	expected := len(NumericColumns)
	if _, ok := pos[LabelColumn]; ok {
		expected++
	}
	if len(header) != expected {
		for _, name := range header {
			if !isSchemaColumn(name) {
				return nil, fmt.Errorf("unexpected column %q", name)
			}
		}
	}
	return pos, nil
}

func isSchemaColumn(name string) bool {
	if name == LabelColumn {
		return true
	}
	for _, c := range NumericColumns {
		if name == c {
			return true
		}
	}
	return false
}
