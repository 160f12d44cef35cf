package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableArrayColumns(t *testing.T) {
	v := mustParse(t, `[{"a":1,"b":2},{"a":3,"c":4}]`)
	grid := BuildTable(v)

	require.NotNil(t, grid)
	assert.Equal(t, []string{"a", "b", "c"}, grid.Columns)
	require.Len(t, grid.Rows, 2)
	assert.Equal(t, []string{"1", "2", ""}, grid.Rows[0])
	assert.Equal(t, []string{"3", "", "4"}, grid.Rows[1], "missing cells render empty")
}

func TestBuildTableColumnSampling(t *testing.T) {
	rows := make([]any, 0, 45)
	for i := 0; i < 45; i++ {
		row := map[string]any{"id": float64(i)}
		if i >= 40 {
			// keys first appearing after the sample window never
			// become columns
			row["late"] = float64(i)
		}
		rows = append(rows, row)
	}
	grid := BuildTable(rows)

	require.NotNil(t, grid)
	assert.Equal(t, []string{"id"}, grid.Columns)
	assert.Len(t, grid.Rows, 45, "all rows render, only columns are sampled")
}

func TestBuildTableCellFormatting(t *testing.T) {
	v := mustParse(t, `[{"n":1500,"s":"plain","o":{"k":1},"arr":[1,2],"nil":null,"b":true}]`)
	grid := BuildTable(v)

	require.NotNil(t, grid)
	cell := func(col string) string {
		for i, c := range grid.Columns {
			if c == col {
				return grid.Rows[0][i]
			}
		}
		t.Fatalf("column %s not found", col)
		return ""
	}
	assert.Equal(t, "1.50k", cell("n"))
	assert.Equal(t, "plain", cell("s"))
	assert.Equal(t, `{"k":1}`, cell("o"))
	assert.Equal(t, "[1,2]", cell("arr"))
	assert.Equal(t, "", cell("nil"))
	assert.Equal(t, "true", cell("b"))
}

func TestBuildTableObject(t *testing.T) {
	v := mustParse(t, `{"suburb":"testville","stats":{"deep":{"deeper":{"x":1}},"n":2}}`)
	grid := BuildTable(v)

	require.NotNil(t, grid)
	assert.Equal(t, []string{"Field", "Value"}, grid.Columns)

	byField := make(map[string]string, len(grid.Rows))
	for _, row := range grid.Rows {
		require.Len(t, row, 2)
		byField[row[0]] = row[1]
	}
	assert.Equal(t, "testville", byField["suburb"])
	assert.Equal(t, "2", byField["stats.n"])
	// depth limit 2 summarizes anything deeper
	assert.Equal(t, "Object(1 keys)", byField["stats.deep.deeper"])
}

func TestBuildTableNonContainer(t *testing.T) {
	assert.Nil(t, BuildTable("scalar"))
	assert.Nil(t, BuildTable(nil))
	assert.Nil(t, BuildTable(float64(5)))
}

func TestBuildTableScalarArray(t *testing.T) {
	v := mustParse(t, `[1,2,3]`)
	assert.Nil(t, BuildTable(v), "rows without keys produce no grid")
}

func TestBuildTableManyRows(t *testing.T) {
	rows := make([]any, 0, 100)
	for i := 0; i < 100; i++ {
		rows = append(rows, map[string]any{"v": fmt.Sprintf("r%d", i)})
	}
	grid := BuildTable(rows)
	require.NotNil(t, grid)
	assert.Equal(t, "r99", grid.Rows[99][0])
}
