package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatThaiNumber(t *testing.T) {
	assert.Equal(t, "0", FormatThaiNumber(0))
	assert.Equal(t, "999", FormatThaiNumber(999))
	assert.Equal(t, "1,234,567", FormatThaiNumber(1234567))
}

func TestFormatThaiPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatThaiPercent(12.5))
	assert.Equal(t, "0.0%", FormatThaiPercent(0))
}

func TestFormatThaiDate(t *testing.T) {
	d := time.Date(2024, time.January, 1, 9, 5, 0, 0, BangkokLocation())
	assert.Equal(t, "1 มกราคม 2567", FormatThaiDate(d))
	assert.Equal(t, "1 มกราคม 2567 เวลา 09:05 น.", FormatThaiDateTime(d))

	// 31 ธ.ค. 20:00 UTC เป็นวันที่ 1 ม.ค. ตามเวลาไทย
	utc := time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 มกราคม 2567", FormatThaiDate(utc))

	assert.Equal(t, "15 ธันวาคม 2566", FormatThaiDate(time.Date(2023, time.December, 15, 12, 0, 0, 0, BangkokLocation())))
}
