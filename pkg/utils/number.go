package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBillNo generates a unique human-facing bill number, e.g. BILL-3FA85F64.
func GenerateBillNo() string {
	return "BILL-" + strings.ToUpper(uuid.New().String()[:8])
}
