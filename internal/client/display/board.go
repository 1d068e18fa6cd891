package display

import (
	"fmt"
	"strings"
)

// RenderBoard renders the server's ASCII board with colored marks
func RenderBoard(asciiBoard string) {
	for _, line := range strings.Split(asciiBoard, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		for _, char := range line {
			switch char {
			case 'X':
				fmt.Printf("%s%c%s", Blue, char, Reset)
			case 'O':
				fmt.Printf("%s%c%s", Red, char, Reset)
			default:
				fmt.Printf("%c", char)
			}
		}
		fmt.Println()
	}
}

// ColorForTurn returns colored turn indicator
func ColorForTurn(turn string) string {
	if turn == "X" {
		return Blue + "X" + Reset
	}
	return Red + "O" + Reset
}
