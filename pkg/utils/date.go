package utils

import (
	"strings"
	"time"
)

// BRDateLayout aceita dia e mês com um ou dois dígitos e ano com quatro dígitos (dd/mm/aaaa)
const BRDateLayout = "2/1/2006"

func ParseBRDate(dateStr string) (time.Time, error) {
	return time.Parse(BRDateLayout, strings.TrimSpace(dateStr))
}
