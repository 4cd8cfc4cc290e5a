package html

import (
	"testing"

	"maragu.dev/is"
)

func TestGeneratePageNumbers(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		expected    []int
	}{
		{name: "should show all pages when there are few", currentPage: 2, totalPages: 3, expected: []int{1, 2, 3}},
		{name: "should show the first pages and the last", currentPage: 2, totalPages: 10, expected: []int{1, 2, 3, 4, 5, -1, 10}},
		{name: "should show the first and the last pages", currentPage: 9, totalPages: 10, expected: []int{1, -1, 6, 7, 8, 9, 10}},
		{name: "should show neighbours in the middle", currentPage: 5, totalPages: 10, expected: []int{1, -1, 4, 5, 6, -1, 10}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is.EqualSlice(t, test.expected, generatePageNumbers(test.currentPage, test.totalPages))
		})
	}
}
