package array

import "fmt"

func indexOutOfRange(i, size int) string {
	return fmt.Sprintf("array: index %d out of range [0:%d)", i, size)
}
