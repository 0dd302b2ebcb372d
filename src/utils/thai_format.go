package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var thaiPrinter = message.NewPrinter(language.Thai)

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// FormatThaiNumber จำนวนเต็มพร้อมตัวคั่นหลักพัน เช่น 1,234
func FormatThaiNumber(n int) string {
	return thaiPrinter.Sprintf("%d", n)
}

// FormatThaiPercent ทศนิยม 1 ตำแหน่ง เช่น 12.5%
func FormatThaiPercent(v float64) string {
	return thaiPrinter.Sprintf("%.1f%%", v)
}

// FormatThaiDate วันที่แบบไทย ปี พ.ศ. เช่น 1 มกราคม 2567
func FormatThaiDate(t time.Time) string {
	t = t.In(bangkok)
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+543)
}

// FormatThaiDateTime วันที่และเวลาแบบไทย เช่น 1 มกราคม 2567 เวลา 08:00 น.
func FormatThaiDateTime(t time.Time) string {
	t = t.In(bangkok)
	return fmt.Sprintf("%s เวลา %s น.", FormatThaiDate(t), t.Format("15:04"))
}
