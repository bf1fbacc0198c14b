package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func ToUUID(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

func ToNumberWithDefault(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
