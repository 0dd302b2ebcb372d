package exports

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QRSize ขนาดภาพ QR (px) สำหรับโปสเตอร์
const QRSize = 512

// CheckInURL ลิงก์หน้าเช็คอินของกิจกรรม
func CheckInURL(baseURL, activityID string) string {
	return strings.TrimRight(baseURL, "/") + "/checkin?activity=" + url.QueryEscape(activityID)
}

// ActivityQRCode ภาพ PNG ของ QR ที่ชี้ไปหน้าเช็คอิน
func ActivityQRCode(baseURL, activityID string) ([]byte, error) {
	png, err := qrcode.Encode(CheckInURL(baseURL, activityID), qrcode.Medium, QRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
