package render

import (
	"errors"
	"fmt"
)

// ErrChannelRange is returned when a color channel is outside 0-255.
var ErrChannelRange = errors.New("color channel out of range")

// RGBToHex converts 8-bit channel values to a six-digit lowercase hex
// string, e.g. (255, 255, 255) -> "ffffff".
func RGBToHex(r, g, b int) (string, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return "", fmt.Errorf("channel value %d: %w", c, ErrChannelRange)
		}
	}
	return fmt.Sprintf("%02x%02x%02x", r, g, b), nil
}
