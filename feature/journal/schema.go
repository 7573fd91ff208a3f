package journal

import (
	"fmt"
	"reflect"
	"strings"

	"gamedata-manager/core/database"
)

// SchemaReport is the result of comparing the save_records table with Record.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
}

// CheckSchema verifies the database table using the Record model as the source of truth.
func (j *Journal) CheckSchema() (*SchemaReport, error) {
	table := Record{}.TableName()
	actual, err := database.GetTableColumns(j.db, table)
	if err != nil {
		return nil, err
	}

	report := &SchemaReport{
		Table:          table,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
	}

	actualMap := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col
	}

	t := reflect.TypeOf(Record{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		col := gormSetting(tag, "column")
		if col == "" {
			continue
		}

		act, ok := actualMap[col]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, col)
			report.Matched = false
			continue
		}

		// Soft check, the server may report a display width or charset
		if exp := strings.ToLower(gormSetting(tag, "type")); exp != "" && !strings.Contains(act.Type, exp) {
			report.TypeMismatches = append(report.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", col, exp, act.Type))
			report.Matched = false
		}
	}

	return report, nil
}

func gormSetting(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key+":") {
			return strings.TrimPrefix(p, key+":")
		}
	}
	return ""
}
