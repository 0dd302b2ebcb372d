package exports

import (
	"bytes"
	"encoding/csv"
	"testing"

	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteCheckInLogsCSV(t *testing.T) {
	d := 12.0
	comment := "ดี, มาก"
	l1 := testutil.LogAt("u1", "a1", "อาคาร 1", "2024-01-01T08:00:00")
	l1.Distance = &d
	l1.Comment = &comment
	l2 := testutil.Log("u2", "a2", "2024-01-01T13:00:00")

	var buf bytes.Buffer
	require.NoError(t, WriteCheckInLogsCSV(&buf, []models.CheckInLog{l1, l2}))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte("\xEF\xBB\xBF")))

	rows, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "u1", rows[1][2])
	assert.Equal(t, "อาคาร 1", rows[1][6])
	assert.Equal(t, "12", rows[1][9])
	assert.Equal(t, "ดี, มาก", rows[1][10])
	assert.Equal(t, "", rows[2][9])
	assert.Equal(t, "", rows[2][10])
}

func TestWriteCheckInLogsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCheckInLogsCSV(&buf, nil))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteCheckInLogsXLSX(t *testing.T) {
	d := 12.5
	l1 := testutil.LogAt("u1", "a1", "อาคาร 1", "2024-01-01T08:00:00")
	l1.Distance = &d
	l2 := testutil.Log("u2", "a2", "2024-01-01T13:00:00")

	var buf bytes.Buffer
	require.NoError(t, WriteCheckInLogsXLSX(&buf, []models.CheckInLog{l1, l2}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, LogSheetName, f.GetSheetName(0))
	rows, err := f.GetRows(LogSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "u1", rows[1][2])
	assert.Equal(t, "อาคาร 1", rows[1][6])
	assert.Equal(t, "12.5", rows[1][9])
	assert.Equal(t, "u2", rows[2][2])

	// ระยะทางเก็บเป็นตัวเลขให้ Excel คำนวณต่อได้
	typ, err := f.GetCellType(LogSheetName, "J2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)
}

func TestCheckInURL(t *testing.T) {
	assert.Equal(t, "https://event.example/checkin?activity=ACT-01", CheckInURL("https://event.example/", "ACT-01"))
	assert.Equal(t, "http://x/checkin?activity=a+b%26c", CheckInURL("http://x", "a b&c"))
}

func TestActivityQRCode(t *testing.T) {
	png, err := ActivityQRCode("https://event.example", "ACT-01")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}
